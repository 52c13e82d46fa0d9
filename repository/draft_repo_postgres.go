package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"expresocargas/models"
)

type PostgresDraftRepo struct {
	DB *sql.DB
}

func NewPostgresDraftRepo(db *sql.DB) *PostgresDraftRepo {
	return &PostgresDraftRepo{DB: db}
}

// The draft is stored as a JSONB blob: it is a per-session aggregate that is
// always read and written whole, never queried by field. Transient UI flags
// are excluded by their json:"-" tags.
func (r *PostgresDraftRepo) GetDraft(ctx context.Context, sessionID string) (*models.DispatchDraft, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT data FROM dispatch_draft WHERE session_id = $1
	`, sessionID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	draft := &models.DispatchDraft{}
	if err := json.Unmarshal(raw, draft); err != nil {
		return nil, err
	}
	draft.SessionID = sessionID
	return draft, nil
}

func (r *PostgresDraftRepo) SaveDraft(ctx context.Context, draft *models.DispatchDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO dispatch_draft (session_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET data = $2, updated_at = $3
	`, draft.SessionID, raw, time.Now().UTC())
	return err
}

func (r *PostgresDraftRepo) DeleteDraft(ctx context.Context, sessionID string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM dispatch_draft WHERE session_id = $1
	`, sessionID)
	return err
}
