package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"expresocargas/backend"
	"expresocargas/models"
)

type TransportHandler struct {
	API *backend.Client
}

type transportRequest struct {
	Plate      string  `json:"patente" validate:"required"`
	Brand      string  `json:"marca" validate:"required"`
	Model      string  `json:"modelo" validate:"required"`
	CapacityKG float64 `json:"capacidad_kg" validate:"required,gt=0"`
	Driver     string  `json:"conductor"`
}

func (r transportRequest) toBackend() backend.TransportRequest {
	return backend.TransportRequest{
		Plate:      r.Plate,
		Brand:      r.Brand,
		Model:      r.Model,
		CapacityKG: r.CapacityKG,
		Driver:     r.Driver,
	}
}

// CreateTransport handler
func (h *TransportHandler) CreateTransport(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req transportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Patente, marca, modelo y capacidad son obligatorios"})
		return
	}

	transport, err := h.API.CreateTransport(r.Context(), req.toBackend())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: transport})
}

// ListTransports handler
func (h *TransportHandler) ListTransports(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	transports, err := h.API.ListTransports(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: transports})
}

// UpdateTransport handler
func (h *TransportHandler) UpdateTransport(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	transportID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid transport ID"})
		return
	}

	var req transportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Patente, marca, modelo y capacidad son obligatorios"})
		return
	}

	transport, err := h.API.UpdateTransport(r.Context(), transportID, req.toBackend())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: transport})
}

// DeleteTransport handler
func (h *TransportHandler) DeleteTransport(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	transportID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid transport ID"})
		return
	}

	if err := h.API.DeleteTransport(r.Context(), transportID); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Transporte eliminado"})
}
