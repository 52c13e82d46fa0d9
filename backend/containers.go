package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"expresocargas/models"
)

// ContainerRequest creates or patches a delivery run.
type ContainerRequest struct {
	Name        string `json:"nombre,omitempty"`
	TransportID int64  `json:"transporte_id,omitempty"`
	Departure   string `json:"salida,omitempty"`
}

type containerResponse struct {
	Data models.Container `json:"data"`
}

type containerListResponse struct {
	Data []models.Container `json:"data"`
}

func (c *Client) CreateContainer(ctx context.Context, body ContainerRequest) (*models.Container, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/containers", body)
	if err != nil {
		return nil, err
	}
	var decoded containerResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("crear reparto: %w", err)
	}
	return &decoded.Data, nil
}

func (c *Client) ListContainers(ctx context.Context) ([]models.Container, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/containers", nil)
	if err != nil {
		return nil, err
	}
	var decoded containerListResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("listar repartos: %w", err)
	}
	return decoded.Data, nil
}

func (c *Client) UpdateContainer(ctx context.Context, id int64, body ContainerRequest) (*models.Container, error) {
	req, err := c.newRequest(ctx, http.MethodPatch, "/containers/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return nil, err
	}
	var decoded containerResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("actualizar reparto %d: %w", id, err)
	}
	return &decoded.Data, nil
}

func (c *Client) DeleteContainer(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/containers/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("eliminar reparto %d: %w", id, err)
	}
	return nil
}

// AssignPreorders adds preorders to a delivery run's manifest.
func (c *Client) AssignPreorders(ctx context.Context, containerID int64, preorderIDs []int64) error {
	body := struct {
		PreorderIDs []int64 `json:"preorder_ids"`
	}{PreorderIDs: preorderIDs}

	req, err := c.newRequest(ctx, http.MethodPost, "/containers/"+strconv.FormatInt(containerID, 10)+"/preorders", body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("asignar preordenes al reparto %d: %w", containerID, err)
	}
	return nil
}

// ContainerPreorders lists the preorders on a delivery run's manifest.
func (c *Client) ContainerPreorders(ctx context.Context, containerID int64) ([]models.Preorder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/containers/"+strconv.FormatInt(containerID, 10)+"/preorders", nil)
	if err != nil {
		return nil, err
	}
	var decoded preorderListResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("listar preordenes del reparto %d: %w", containerID, err)
	}
	return decoded.Data, nil
}

// UpdateContainerStatus moves a delivery run through its lifecycle
// (PREPARING, IN_TRANSIT, ARRIVED).
func (c *Client) UpdateContainerStatus(ctx context.Context, containerID int64, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	req, err := c.newRequest(ctx, http.MethodPatch, "/containers/"+strconv.FormatInt(containerID, 10)+"/status", body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("actualizar estado del reparto %d: %w", containerID, err)
	}
	return nil
}
