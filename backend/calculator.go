package backend

import (
	"context"
	"fmt"
	"net/http"

	"expresocargas/models"
)

type localitiesResponse struct {
	Data struct {
		Localities []models.Locality `json:"localidades"`
	} `json:"data"`
}

// SearchLocalities queries the carrier's locality search, scoped to serviced
// localities only.
func (c *Client) SearchLocalities(ctx context.Context, term string) ([]models.Locality, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/calculator/localidades", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("q", term)
	q.Set("atendida", "1")
	req.URL.RawQuery = q.Encode()

	var decoded localitiesResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("buscar localidades: %w", err)
	}
	return decoded.Data.Localities, nil
}

// QuoteRequest is the carrier's pricing request body. ArticulosID carries the
// catalog identifier for predefined bags, 0 for custom bultos.
type QuoteRequest struct {
	OriginPostal      string             `json:"opostal"`
	DestinationPostal string             `json:"dpostal"`
	AgreementID       int64              `json:"acuerdos_id"`
	ArticulosID       int64              `json:"articulos_id"`
	Bultos            []models.BultoLine `json:"bultos"`
}

type quoteResponse struct {
	Data struct {
		Options []models.Quote `json:"cotizacion_web"`
	} `json:"data"`
}

// RequestQuote asks the carrier for priced options.
func (c *Client) RequestQuote(ctx context.Context, body QuoteRequest) ([]models.Quote, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/calculator/cotizar", body)
	if err != nil {
		return nil, err
	}

	var decoded quoteResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("cotizar: %w", err)
	}
	return decoded.Data.Options, nil
}
