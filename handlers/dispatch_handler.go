package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"expresocargas/backend"
	"expresocargas/dispatch"
	"expresocargas/models"
)

// DispatchHandler serves the wizard: quote engine, draft transitions and the
// final submission. The wizard session is the employee's login session, so a
// reload (or another browser tab) resumes the same draft.
type DispatchHandler struct {
	Manager *dispatch.Manager
	API     *backend.Client

	// OperatorBranch names the branch this deployment dispatches from; it
	// leads the notes line on every submission when set.
	OperatorBranch string

	mu      sync.Mutex
	engines map[string]*dispatch.Engine
}

// engineFor returns the session's quote engine, creating it on first use.
func (h *DispatchHandler) engineFor(sessionID string) *dispatch.Engine {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.engines == nil {
		h.engines = make(map[string]*dispatch.Engine)
	}
	e, ok := h.engines[sessionID]
	if !ok {
		e = dispatch.NewEngine(h.API)
		h.engines[sessionID] = e
	}
	return e
}

// localValidationErrs are wizard failures that never reached the network.
var localValidationErrs = []error{
	dispatch.ErrNoQuote,
	dispatch.ErrNoPackages,
	dispatch.ErrBadPackage,
	dispatch.ErrNoSender,
	dispatch.ErrNoRecipient,
	dispatch.ErrNoAuthToken,
	dispatch.ErrFirstStep,
	dispatch.ErrLastStep,
	dispatch.ErrNoOrigin,
	dispatch.ErrNoDestination,
	dispatch.ErrNoQuantity,
}

func isLocalValidation(err error) bool {
	for _, target := range localValidationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// GetDraft handler
func (h *DispatchHandler) GetDraft(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	draft, err := h.Manager.Draft(r.Context(), bearerToken(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

type searchRequest struct {
	Term string              `json:"termino"`
	Role dispatch.SearchRole `json:"rol" validate:"required,oneof=origen destino"`
}

// Search handler: schedules a debounced locality lookup.
func (h *DispatchHandler) Search(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "El rol debe ser origen o destino"})
		return
	}

	engine := h.engineFor(bearerToken(r))
	engine.Search(req.Term, req.Role)
	writeJSON(w, http.StatusAccepted, ApiResponse{Success: true})
}

// SearchState handler: snapshot of a role's dropdown state.
func (h *DispatchHandler) SearchState(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	role := dispatch.SearchRole(r.URL.Query().Get("rol"))
	if role != dispatch.SearchOrigin && role != dispatch.SearchDestination {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "El rol debe ser origen o destino"})
		return
	}
	engine := h.engineFor(bearerToken(r))
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: engine.State(role)})
}

type selectLocalityRequest struct {
	Locality models.Locality     `json:"localidad" validate:"required"`
	Role     dispatch.SearchRole `json:"rol" validate:"required,oneof=origen destino"`
}

// SelectLocality handler
func (h *DispatchHandler) SelectLocality(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req selectLocalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Faltan la localidad o el rol"})
		return
	}

	engine := h.engineFor(bearerToken(r))
	engine.Select(req.Locality, req.Role)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true})
}

// RequestQuote handler: asks the carrier for priced options using the live
// form values.
func (h *DispatchHandler) RequestQuote(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var sel dispatch.PackageSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	engine := h.engineFor(bearerToken(r))
	options, err := engine.RequestQuote(r.Context(), sel)
	if err != nil {
		if isLocalValidation(err) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: options})
}

type selectQuoteRequest struct {
	Quote       models.Quote `json:"cotizacion" validate:"required"`
	Description string       `json:"descripcion"`
	Quantity    int          `json:"cantidad" validate:"required,min=1"`
	PackageType string       `json:"tipo,omitempty"`
}

// SelectQuote handler: commits a priced option and enters the packages step.
func (h *DispatchHandler) SelectQuote(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req selectQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Faltan la cotización o la cantidad"})
		return
	}

	draft, err := h.Manager.SelectQuote(r.Context(), bearerToken(r), req.Quote, req.Description, req.Quantity, req.PackageType)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// UpdatePackages handler
func (h *DispatchHandler) UpdatePackages(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req struct {
		Packages []models.Package `json:"paquetes" validate:"required,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Cargá al menos un paquete"})
		return
	}

	draft, err := h.Manager.UpdatePackages(r.Context(), bearerToken(r), req.Packages)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

type personRequest struct {
	FullName string `json:"nombre" validate:"required"`
	TaxID    string `json:"dni" validate:"required,dni_cuit"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"telefono" validate:"required,phone10"`
	Address  string `json:"direccion"`
}

func (r personRequest) toPerson() models.Person {
	return models.Person{
		FullName: r.FullName,
		TaxID:    r.TaxID,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

// UpdateSender handler
func (h *DispatchHandler) UpdateSender(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	h.updatePerson(w, r, h.Manager.UpdateSender)
}

// UpdateRecipient handler
func (h *DispatchHandler) UpdateRecipient(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	h.updatePerson(w, r, h.Manager.UpdateRecipient)
}

func (h *DispatchHandler) updatePerson(
	w http.ResponseWriter,
	r *http.Request,
	commit func(ctx context.Context, sessionID string, p models.Person) (*models.DispatchDraft, error),
) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Revisá nombre, DNI/CUIT, email y teléfono"})
		return
	}

	draft, err := commit(r.Context(), bearerToken(r), req.toPerson())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// SetClientType handler
func (h *DispatchHandler) SetClientType(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req struct {
		ClientType string `json:"tipo_cliente" validate:"required,oneof=particular empresa"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "El tipo de cliente debe ser particular o empresa"})
		return
	}

	draft, err := h.Manager.SetClientType(r.Context(), bearerToken(r), req.ClientType)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// SetDelivery handler
func (h *DispatchHandler) SetDelivery(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var target models.DeliveryTarget
	if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	switch target.Type {
	case models.DeliveryBranch:
		if models.FindBranch(target.BranchID) == nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "La sucursal elegida no existe"})
			return
		}
	case models.DeliveryHome:
		if target.Home == nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Falta la dirección de entrega"})
			return
		}
	default:
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "El tipo de entrega debe ser sucursal o domicilio"})
		return
	}

	draft, err := h.Manager.SetDeliveryTarget(r.Context(), bearerToken(r), target)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// SetManualPrice handler. A null price clears the override; 0 is a valid
// override.
func (h *DispatchHandler) SetManualPrice(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	var req struct {
		Price *float64 `json:"precio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	draft, err := h.Manager.SetManualPrice(r.Context(), bearerToken(r), req.Price)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// Advance handler: moves the wizard forward after step validation.
func (h *DispatchHandler) Advance(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	h.transition(w, r, h.Manager.Advance)
}

// Back handler
func (h *DispatchHandler) Back(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	h.transition(w, r, h.Manager.Back)
}

func (h *DispatchHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	step func(ctx context.Context, sessionID string) (*models.DispatchDraft, error),
) {
	draft, err := step(r.Context(), bearerToken(r))
	if err != nil {
		// a non-nil draft means the transition was rejected by step
		// validation, not by storage
		status := http.StatusInternalServerError
		if draft != nil || isLocalValidation(err) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, ApiResponse{Success: false, Message: err.Error(), Data: draft})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

// Submit handler: the terminal operation.
func (h *DispatchHandler) Submit(w http.ResponseWriter, r *http.Request, employee *models.Employee) {
	auth := dispatch.AuthContext{
		Token:      h.API.Token(),
		Role:       employee.Role,
		BranchName: h.OperatorBranch,
	}

	result, err := h.Manager.Submit(r.Context(), bearerToken(r), auth)
	if err != nil {
		if isLocalValidation(err) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, ApiResponse{Success: false, Message: backend.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: result})
}

// Reset handler: explicit cancel, restores an empty draft.
func (h *DispatchHandler) Reset(w http.ResponseWriter, r *http.Request, _ *models.Employee) {
	if err := h.Manager.Reset(r.Context(), bearerToken(r)); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Borrador reiniciado"})
}
