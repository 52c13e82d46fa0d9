package repository

import (
	"context"

	"expresocargas/models"
)

// EmployeeRepository manages company accounts. CreateEmployee hashes the
// password and enforces email uniqueness; lookups return nil without error
// when nothing matches.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, e *models.Employee) error
	GetEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*models.Employee, error)
	GetEmployeeByVerificationToken(ctx context.Context, token string) (*models.Employee, error)
	MarkVerified(ctx context.Context, id string) error
	SetVerificationToken(ctx context.Context, id, token string) error
}

// SessionRepository stores login sessions so a server restart does not log
// employees out.
type SessionRepository interface {
	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
