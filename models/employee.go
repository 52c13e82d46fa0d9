package models

import "time"

// Employee roles. Operators get the restricted submission policy; admins the
// elevated one.
const (
	RoleOperator = "operador"
	RoleAdmin    = "administrador"
)

// Employee is a company account able to operate the dispatch wizard and the
// delivery-run views.
type Employee struct {
	ID                string    `json:"id" bson:"_id" db:"id"`
	Name              string    `json:"name" bson:"name" db:"name"`
	Email             string    `json:"email" bson:"email" db:"email"`
	Password          string    `json:"password,omitempty" bson:"password" db:"password_hash"`
	Role              string    `json:"role" bson:"role" db:"role"`
	Verified          bool      `json:"verified" bson:"verified" db:"verified"`
	VerificationToken string    `json:"-" bson:"verification_token" db:"verification_token"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Session is a DB-backed login session; the token travels as the bearer
// credential on every authenticated call.
type Session struct {
	Token      string    `json:"token" bson:"_id"`
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt  time.Time `json:"expires_at" bson:"expires_at"`
}
