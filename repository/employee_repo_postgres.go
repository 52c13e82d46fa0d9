package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"expresocargas/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type PostgresEmployeeRepo struct {
	DB *sql.DB
}

func NewPostgresEmployeeRepo(db *sql.DB) *PostgresEmployeeRepo {
	return &PostgresEmployeeRepo{DB: db}
}

// CreateEmployee creates an account after validating email uniqueness and
// hashing the password.
func (r *PostgresEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	existing, err := r.GetEmployeeByEmail(ctx, e.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("el email ya está registrado")
	}

	if e.Password == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hashed)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO employee (id, name, email, password_hash, role, verified, verification_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.Name, e.Email, e.Password, e.Role, e.Verified, e.VerificationToken, e.CreatedAt)

	return err
}

func (r *PostgresEmployeeRepo) GetEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return r.getEmployee(ctx, `WHERE email = $1`, email)
}

func (r *PostgresEmployeeRepo) GetEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	return r.getEmployee(ctx, `WHERE id = $1`, id)
}

func (r *PostgresEmployeeRepo) GetEmployeeByVerificationToken(ctx context.Context, token string) (*models.Employee, error) {
	return r.getEmployee(ctx, `WHERE verification_token = $1`, token)
}

func (r *PostgresEmployeeRepo) getEmployee(ctx context.Context, where string, arg any) (*models.Employee, error) {
	e := &models.Employee{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, verified, verification_token, created_at
		FROM employee `+where, arg,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Password, &e.Role, &e.Verified, &e.VerificationToken, &e.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepo) MarkVerified(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE employee SET verified = TRUE, verification_token = '' WHERE id = $1
	`, id)
	return err
}

func (r *PostgresEmployeeRepo) SetVerificationToken(ctx context.Context, id, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE employee SET verification_token = $2 WHERE id = $1
	`, id, token)
	return err
}

// ------------------------ Sessions ------------------------

type PostgresSessionRepo struct {
	DB *sql.DB
}

func NewPostgresSessionRepo(db *sql.DB) *PostgresSessionRepo {
	return &PostgresSessionRepo{DB: db}
}

func (r *PostgresSessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO session (token, employee_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, s.Token, s.EmployeeID, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r *PostgresSessionRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	s := &models.Session{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT token, employee_id, created_at, expires_at FROM session WHERE token = $1
	`, token).Scan(&s.Token, &s.EmployeeID, &s.CreatedAt, &s.ExpiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresSessionRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM session WHERE token = $1`, token)
	return err
}
