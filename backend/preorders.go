package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"expresocargas/models"
)

// OrderPackage is one bulto line on a create/update order request. Dimension
// fields are pointers and omitted entirely when suppressed: the carrier must
// never receive a zero as a real dimension.
type OrderPackage struct {
	Description   string   `json:"descripcion"`
	Weight        float64  `json:"peso"`
	DeclaredValue float64  `json:"valor_declarado"`
	Height        *float64 `json:"alto,omitempty"`
	Width         *float64 `json:"ancho,omitempty"`
	Depth         *float64 `json:"profundidad,omitempty"`
}

// CreateOrderRequest is the carrier's order-creation body. No client
// identifier is ever sent; the carrier resolves or creates the client record
// from the raw fields.
type CreateOrderRequest struct {
	ClientName         string         `json:"nombre_cliente"`
	ClientPhone        string         `json:"telefono"`
	ClientEmail        string         `json:"email"`
	ClientTaxID        string         `json:"cuit,omitempty"`
	ClientAddress      string         `json:"direccion_cliente"`
	ClientType         string         `json:"tipo_cliente"`
	OriginPostal       string         `json:"opostal"`
	DestinationPostal  string         `json:"dpostal"`
	DestinationAddress string         `json:"direccion_destino"`
	DeliveryType       string         `json:"tipo_entrega"`
	Packages           []OrderPackage `json:"bultos"`
	Price              float64        `json:"precio"`
	Notes              string         `json:"observaciones,omitempty"`
}

type submissionResponse struct {
	Data models.SubmissionResult `json:"data"`
}

type preorderResponse struct {
	Data models.Preorder `json:"data"`
}

type preorderListResponse struct {
	Data []models.Preorder `json:"data"`
}

// CreatePreorder submits a composed order. Never retried: a failed
// submission requires explicit user re-action.
func (c *Client) CreatePreorder(ctx context.Context, body CreateOrderRequest) (models.SubmissionResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/voucher/preorders", body)
	if err != nil {
		return models.SubmissionResult{}, err
	}
	var decoded submissionResponse
	if err := c.do(req, &decoded); err != nil {
		return models.SubmissionResult{}, fmt.Errorf("crear preorden: %w", err)
	}
	return decoded.Data, nil
}

func (c *Client) GetPreorder(ctx context.Context, id int64) (*models.Preorder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/voucher/preorders/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	var decoded preorderResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("obtener preorden %d: %w", id, err)
	}
	return &decoded.Data, nil
}

func (c *Client) UpdatePreorder(ctx context.Context, id int64, body CreateOrderRequest) (*models.Preorder, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/voucher/preorders/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return nil, err
	}
	var decoded preorderResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("actualizar preorden %d: %w", id, err)
	}
	return &decoded.Data, nil
}

func (c *Client) DeletePreorder(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/voucher/preorders/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("eliminar preorden %d: %w", id, err)
	}
	return nil
}

// ListPreorders fetches a page of preorders; status filters server-side when
// non-empty. The listing views fetch one capped page and derive the tabs
// client-side.
func (c *Client) ListPreorders(ctx context.Context, status string, page, limit int) ([]models.Preorder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/voucher/preorders", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	if status != "" {
		q.Set("status", status)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	var decoded preorderListResponse
	if err := c.do(req, &decoded); err != nil {
		return nil, fmt.Errorf("listar preordenes: %w", err)
	}
	return decoded.Data, nil
}

// PreorderPDF downloads the carrier's voucher PDF blob.
func (c *Client) PreorderPDF(ctx context.Context, id int64) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/voucher/preorders/"+strconv.FormatInt(id, 10)+"/pdf", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")
	blob, err := c.doRaw(req)
	if err != nil {
		return nil, fmt.Errorf("descargar pdf de preorden %d: %w", id, err)
	}
	return blob, nil
}

// BulkUpdatePreorderStatus moves a set of preorders to a new status.
func (c *Client) BulkUpdatePreorderStatus(ctx context.Context, ids []int64, status string) error {
	body := struct {
		IDs    []int64 `json:"ids"`
		Status string  `json:"status"`
	}{IDs: ids, Status: status}

	req, err := c.newRequest(ctx, http.MethodPatch, "/voucher/preorders/bulk-update-status", body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("actualizar estado de preordenes: %w", err)
	}
	return nil
}
