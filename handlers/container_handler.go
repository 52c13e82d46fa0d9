package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"expresocargas/backend"
	"expresocargas/models"
)

type ContainerHandler struct {
	API *backend.Client
}

// CreateContainer handler
func (h *ContainerHandler) CreateContainer(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var body backend.ContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	container, err := h.API.CreateContainer(r.Context(), body)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: container})
}

// ListContainers handler
func (h *ContainerHandler) ListContainers(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	containers, err := h.API.ListContainers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: containers})
}

// UpdateContainer handler
func (h *ContainerHandler) UpdateContainer(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	containerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid container ID"})
		return
	}

	var body backend.ContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	container, err := h.API.UpdateContainer(r.Context(), containerID, body)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: container})
}

// DeleteContainer handler
func (h *ContainerHandler) DeleteContainer(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	containerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid container ID"})
		return
	}

	if err := h.API.DeleteContainer(r.Context(), containerID); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Reparto eliminado"})
}

// AssignPreorders handler: adds preorders to a run's manifest.
func (h *ContainerHandler) AssignPreorders(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	containerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid container ID"})
		return
	}

	var req struct {
		PreorderIDs []int64 `json:"preorder_ids" validate:"required,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Indicá al menos una preorden"})
		return
	}

	if err := h.API.AssignPreorders(r.Context(), containerID, req.PreorderIDs); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Preordenes asignadas al reparto"})
}

// ContainerPreorders handler: the run's manifest.
func (h *ContainerHandler) ContainerPreorders(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	containerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid container ID"})
		return
	}

	preorders, err := h.API.ContainerPreorders(r.Context(), containerID)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: preorders})
}

// UpdateContainerStatus handler
func (h *ContainerHandler) UpdateContainerStatus(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	containerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid container ID"})
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=PREPARING IN_TRANSIT ARRIVED"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "El estado del reparto no es válido"})
		return
	}

	if err := h.API.UpdateContainerStatus(r.Context(), containerID, req.Status); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Estado del reparto actualizado"})
}
