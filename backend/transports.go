package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"expresocargas/models"
)

// TransportRequest creates or replaces a vehicle record.
type TransportRequest struct {
	Plate      string  `json:"patente"`
	Brand      string  `json:"marca"`
	Model      string  `json:"modelo"`
	CapacityKG float64 `json:"capacidad_kg"`
	Driver     string  `json:"conductor,omitempty"`
}

type transportResponse struct {
	Data models.Transport `json:"data"`
}

type transportListResponse struct {
	Data []models.Transport `json:"data"`
}

func (c *Client) CreateTransport(ctx context.Context, body TransportRequest) (*models.Transport, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/transports", body)
	if err != nil {
		return nil, err
	}
	var decoded transportResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("crear transporte: %w", err)
	}
	return &decoded.Data, nil
}

func (c *Client) ListTransports(ctx context.Context) ([]models.Transport, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/transports", nil)
	if err != nil {
		return nil, err
	}
	var decoded transportListResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("listar transportes: %w", err)
	}
	return decoded.Data, nil
}

func (c *Client) UpdateTransport(ctx context.Context, id int64, body TransportRequest) (*models.Transport, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/transports/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return nil, err
	}
	var decoded transportResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("actualizar transporte %d: %w", id, err)
	}
	return &decoded.Data, nil
}

func (c *Client) DeleteTransport(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/transports/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("eliminar transporte %d: %w", id, err)
	}
	return nil
}
