package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"expresocargas/backend"
	"expresocargas/models"
	"expresocargas/utils"
)

type ReceiptHandler struct {
	API      *backend.Client
	BranchID int64
}

// Receipt renders the local duplicate receipt for a preorder and either
// uploads it to R2 (returning the public URL) or streams it inline when
// no bucket is configured.
func (h *ReceiptHandler) Receipt(w http.ResponseWriter, r *http.Request, employee *models.Employee) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "falta el id del envío"})
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "id de envío inválido"})
		return
	}

	preorder, err := h.API.GetPreorder(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}

	branch := models.FindBranch(h.BranchID)
	if branch == nil {
		branch = &models.Branches()[0]
	}

	pdfBytes, err := utils.GenerateReceiptPDF(preorder, branch)
	if err != nil {
		slog.Error("receipt generation failed", "preorder_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "no se pudo generar el comprobante"})
		return
	}

	if !utils.R2Configured() {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="comprobante_%d.pdf"`, id))
		w.WriteHeader(http.StatusOK)
		w.Write(pdfBytes)
		return
	}

	filename := fmt.Sprintf("comprobante_%d_%d.pdf", id, time.Now().Unix())
	fileURL, err := utils.UploadToR2(pdfBytes, filename)
	if err != nil {
		slog.Error("receipt upload failed", "preorder_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "no se pudo guardar el comprobante"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{"url": fileURL}})
}
