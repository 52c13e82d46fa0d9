package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StatusError is a non-2xx backend response. Message holds the backend's own
// {message} field when the body carried one.
type StatusError struct {
	Code    int
	Message string
	Body    string
}

func newStatusError(code int, body []byte) *StatusError {
	se := &StatusError{Code: code, Body: strings.TrimSpace(string(body))}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		se.Message = strings.TrimSpace(payload.Message)
	}
	return se
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.Code, e.Body)
}

// Generic user-facing fallbacks.
const (
	MsgGeneric      = "Ocurrió un error al procesar la solicitud. Intentá nuevamente."
	MsgConnectivity = "No se pudo conectar con el servidor. Verificá tu conexión a internet."
)

// connectivity substrings recognized from transport-level failures.
var connectivityHints = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"timeout",
	"deadline exceeded",
	"EOF",
}

// UserMessage translates any error from a backend call into Spanish
// user-facing text: the backend's own message when it sent one, a
// connectivity message for transport failures, a generic fallback otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return MsgGeneric
	}
	text := err.Error()
	for _, hint := range connectivityHints {
		if strings.Contains(text, hint) {
			return MsgConnectivity
		}
	}
	return MsgGeneric
}
