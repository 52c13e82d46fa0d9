package repository

import (
	"context"

	"expresocargas/models"
)

// DraftRepository persists dispatch drafts keyed by session. Exactly one
// draft exists per session; Save upserts, Get returns nil without error when
// the session has no draft.
type DraftRepository interface {
	GetDraft(ctx context.Context, sessionID string) (*models.DispatchDraft, error)
	SaveDraft(ctx context.Context, draft *models.DispatchDraft) error
	DeleteDraft(ctx context.Context, sessionID string) error
}
