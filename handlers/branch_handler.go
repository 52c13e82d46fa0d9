package handlers

import (
	"net/http"
	"strconv"

	"expresocargas/models"
)

// BranchHandler serves the fixed branch directory the wizard's
// branch-pickup option references.
type BranchHandler struct{}

func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: models.Branches()})
}

func (h *BranchHandler) GetBranch(w http.ResponseWriter, r *http.Request, id string) {
	branchID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid branch ID"})
		return
	}

	branch := models.FindBranch(branchID)
	if branch == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Sucursal no encontrada"})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: branch})
}
