package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"expresocargas/backend"
	"expresocargas/models"
	"expresocargas/repository"
)

// OrderClient is the slice of the carrier API the manager needs to submit.
type OrderClient interface {
	CreatePreorder(ctx context.Context, body backend.CreateOrderRequest) (models.SubmissionResult, error)
}

// Manager orchestrates the wizard: it loads the session's draft, applies a
// state-machine transition and performs the explicit save. The state machine
// itself never touches storage.
type Manager struct {
	repo repository.DraftRepository
	api  OrderClient
	log  *slog.Logger
}

func NewManager(repo repository.DraftRepository, api OrderClient, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{repo: repo, api: api, log: log}
}

// Draft returns the session's draft, creating an empty one on first entry.
func (m *Manager) Draft(ctx context.Context, sessionID string) (*models.DispatchDraft, error) {
	draft, err := m.repo.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	if draft == nil {
		draft = NewDraft(sessionID)
	}
	return draft, nil
}

// mutate runs one committed transition and saves the result.
func (m *Manager) mutate(ctx context.Context, sessionID string, fn func(*models.DispatchDraft) error) (*models.DispatchDraft, error) {
	draft, err := m.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return draft, err
	}
	if err := m.repo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return draft, nil
}

func (m *Manager) SelectQuote(ctx context.Context, sessionID string, quote models.Quote, defaultDescription string, quantity int, packageType string) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		SelectQuote(d, quote, defaultDescription, quantity, packageType)
		return nil
	})
}

func (m *Manager) UpdatePackages(ctx context.Context, sessionID string, packages []models.Package) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		UpdatePackages(d, packages)
		return nil
	})
}

func (m *Manager) UpdateSender(ctx context.Context, sessionID string, p models.Person) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		UpdateSender(d, p)
		return nil
	})
}

func (m *Manager) UpdateRecipient(ctx context.Context, sessionID string, p models.Person) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		UpdateRecipient(d, p)
		return nil
	})
}

func (m *Manager) SetClientType(ctx context.Context, sessionID, clientType string) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		SetClientType(d, clientType)
		return nil
	})
}

func (m *Manager) SetDeliveryTarget(ctx context.Context, sessionID string, target models.DeliveryTarget) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		SetDeliveryTarget(d, target)
		return nil
	})
}

func (m *Manager) SetManualPrice(ctx context.Context, sessionID string, price *float64) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, func(d *models.DispatchDraft) error {
		SetManualPrice(d, price)
		return nil
	})
}

func (m *Manager) Advance(ctx context.Context, sessionID string) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, Advance)
}

func (m *Manager) Back(ctx context.Context, sessionID string) (*models.DispatchDraft, error) {
	return m.mutate(ctx, sessionID, Back)
}

// Submit is the terminal operation. It fails locally, before any network
// call, when the quote, sender, recipient or auth token is missing. On
// success the draft is cleared; on failure the draft survives intact
// (manual price included) with a user-facing error recorded, and the error
// is returned so the caller can react.
func (m *Manager) Submit(ctx context.Context, sessionID string, auth AuthContext) (models.SubmissionResult, error) {
	draft, err := m.Draft(ctx, sessionID)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	switch {
	case draft.Quote == nil:
		return models.SubmissionResult{}, ErrNoQuote
	case draft.Sender == nil:
		return models.SubmissionResult{}, ErrNoSender
	case draft.Recipient == nil:
		return models.SubmissionResult{}, ErrNoRecipient
	case auth.Token == "":
		return models.SubmissionResult{}, ErrNoAuthToken
	}

	draft.IsSubmitting = true
	draft.Error = ""

	result, err := m.api.CreatePreorder(ctx, Compose(draft, auth))
	draft.IsSubmitting = false
	if err != nil {
		draft.Error = backend.UserMessage(err)
		m.log.Error("submission failed", "session", sessionID, "err", err)
		return models.SubmissionResult{}, fmt.Errorf("enviar preorden: %w", err)
	}

	if err := m.repo.DeleteDraft(ctx, sessionID); err != nil {
		// the order exists at the carrier; a stale draft is the lesser problem
		m.log.Error("clear draft after submission", "session", sessionID, "err", err)
	}

	m.log.Info("preorder submitted", "session", sessionID, "voucher", result.VoucherNumber)
	return result, nil
}

// Reset restores the session to an empty draft.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	if err := m.repo.DeleteDraft(ctx, sessionID); err != nil {
		return fmt.Errorf("reiniciar borrador: %w", err)
	}
	return nil
}
