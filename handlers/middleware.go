package handlers

import (
	"net/http"
	"strings"
	"time"

	"expresocargas/models"
	"expresocargas/repository"
)

// AuthedHandler receives the resolved employee alongside the request.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, employee *models.Employee)

// AuthMiddleware resolves bearer session tokens into employees.
type AuthMiddleware struct {
	Sessions  repository.SessionRepository
	Employees repository.EmployeeRepository
}

// Require rejects the request unless it carries a valid, unexpired session.
func (m *AuthMiddleware) Require(next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Iniciá sesión para continuar",
			})
			return
		}

		session, err := m.Sessions.GetSession(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "No se pudo validar la sesión",
			})
			return
		}
		if session == nil || time.Now().After(session.ExpiresAt) {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "La sesión expiró, iniciá sesión nuevamente",
			})
			return
		}

		employee, err := m.Employees.GetEmployeeByID(r.Context(), session.EmployeeID)
		if err != nil || employee == nil {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "La sesión no corresponde a un empleado activo",
			})
			return
		}

		next(w, r, employee)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
