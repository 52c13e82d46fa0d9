package handlers

import (
	"encoding/json"
	"net/http"

	"expresocargas/backend"
	"expresocargas/models"
)

// CalculatorHandler serves the public shipping-cost calculator. No session
// is required; requests are proxied straight to the carrier.
type CalculatorHandler struct {
	API *backend.Client
}

func (h *CalculatorHandler) SearchLocalities(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if len([]rune(term)) < 2 {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: []models.Locality{}})
		return
	}

	localities, err := h.API.SearchLocalities(r.Context(), term)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: localities})
}

type calculatorQuoteRequest struct {
	OriginPostal      string           `json:"opostal" validate:"required"`
	DestinationPostal string           `json:"dpostal" validate:"required"`
	PackageType       string           `json:"tipo_paquete"`
	Quantity          int              `json:"cantidad" validate:"min=1"`
	Bulto             models.BultoLine `json:"bulto"`
}

func (h *CalculatorHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var body calculatorQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "cuerpo de la solicitud inválido"})
		return
	}
	if err := validate.Struct(body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "complete origen, destino y cantidad"})
		return
	}

	bultos := make([]models.BultoLine, 0, body.Quantity)
	for i := 0; i < body.Quantity; i++ {
		bultos = append(bultos, body.Bulto)
	}

	options, err := h.API.RequestQuote(r.Context(), backend.QuoteRequest{
		OriginPostal:      body.OriginPostal,
		DestinationPostal: body.DestinationPostal,
		AgreementID:       1,
		ArticulosID:       models.CatalogID(body.PackageType),
		Bultos:            bultos,
	})
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: options})
}
