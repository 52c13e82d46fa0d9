package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"expresocargas/backend"
	"expresocargas/dispatch"
	"expresocargas/models"
)

// listingCap bounds the single fetch the tab views derive from.
const listingCap = 500

type PreorderHandler struct {
	API *backend.Client
}

// ListPreorders handler. The full (capped) dataset is fetched once, the tab
// filter runs over it and only then is the page sliced out.
func (h *PreorderHandler) ListPreorders(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	q := r.URL.Query()

	tab := dispatch.Tab(q.Get("tab"))
	if tab == "" {
		tab = dispatch.TabAvailable
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 20
	}

	preorders, err := h.API.ListPreorders(r.Context(), q.Get("status"), 1, listingCap)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	containers, err := h.API.ListContainers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}

	tabs := dispatch.Partition(preorders, containers)
	filtered, ok := tabs[tab]
	if !ok {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "La pestaña pedida no existe"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]any{
		"preordenes": dispatch.Paginate(filtered, page, limit),
		"total":      len(filtered),
		"pagina":     page,
	}})
}

// GetPreorder handler
func (h *PreorderHandler) GetPreorder(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	preorderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid preorder ID"})
		return
	}

	preorder, err := h.API.GetPreorder(r.Context(), preorderID)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: preorder})
}

// UpdatePreorder handler
func (h *PreorderHandler) UpdatePreorder(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	preorderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid preorder ID"})
		return
	}

	var body backend.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	preorder, err := h.API.UpdatePreorder(r.Context(), preorderID, body)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: preorder})
}

// DeletePreorder handler
func (h *PreorderHandler) DeletePreorder(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	preorderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid preorder ID"})
		return
	}

	if err := h.API.DeletePreorder(r.Context(), preorderID); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Preorden eliminada"})
}

// PreorderPDF handler: streams the carrier's voucher blob through.
func (h *PreorderHandler) PreorderPDF(w http.ResponseWriter, r *http.Request, _ *models.Employee, id string) {
	preorderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid preorder ID"})
		return
	}

	blob, err := h.API.PreorderPDF(r.Context(), preorderID)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="preorden_`+id+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

// BulkUpdateStatus handler
func (h *PreorderHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req struct {
		IDs    []int64 `json:"ids" validate:"required,min=1"`
		Status string  `json:"status" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Faltan los ids o el estado"})
		return
	}

	if err := h.API.BulkUpdatePreorderStatus(r.Context(), req.IDs, req.Status); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Estados actualizados"})
}
