package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"expresocargas/models"
	"expresocargas/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	Employees repository.EmployeeRepository
	Sessions  repository.SessionRepository
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=operador administrador"`
}

// Register handler
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Name, email, password and role are required: " + err.Error(),
		})
		return
	}

	employee := &models.Employee{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Role:              req.Role,
		VerificationToken: uuid.NewString(),
	}
	if err := h.Employees.CreateEmployee(r.Context(), employee); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create employee: " + err.Error(),
		})
		return
	}

	// mail delivery is handled out of band; the token is logged for the
	// operations runbook
	slog.Info("verification token issued", "email", employee.Email, "token", employee.VerificationToken)

	employee.Password = "" // hide password hash
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Registro exitoso, revisá tu correo para verificar la cuenta",
		Data:    employee,
	})
}

// Login handler
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	employee, err := h.Employees.GetEmployeeByEmail(r.Context(), creds.Email)
	if err != nil || employee == nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Email o contraseña incorrectos",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(creds.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Email o contraseña incorrectos",
		})
		return
	}

	if !employee.Verified {
		writeJSON(w, http.StatusForbidden, ApiResponse{
			Success: false,
			Message: "La cuenta todavía no está verificada",
		})
		return
	}

	session := &models.Session{
		Token:      uuid.NewString(),
		EmployeeID: employee.ID,
		ExpiresAt:  time.Now().Add(sessionTTL),
	}
	if err := h.Sessions.CreateSession(r.Context(), session); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "No se pudo crear la sesión: " + err.Error(),
		})
		return
	}

	employee.Password = "" // hide password hash
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login exitoso",
		Data: map[string]any{
			"token":    session.Token,
			"employee": employee,
		},
	})
}

// VerifyEmail handler
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Falta el token de verificación",
		})
		return
	}

	employee, err := h.Employees.GetEmployeeByVerificationToken(r.Context(), req.Token)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "No se pudo verificar la cuenta: " + err.Error(),
		})
		return
	}
	if employee == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "El token de verificación no es válido",
		})
		return
	}

	if err := h.Employees.MarkVerified(r.Context(), employee.ID); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "No se pudo verificar la cuenta: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Cuenta verificada, ya podés iniciar sesión",
	})
}

// ResendVerification handler
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Falta el email",
		})
		return
	}

	employee, err := h.Employees.GetEmployeeByEmail(r.Context(), req.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "No se pudo reenviar la verificación: " + err.Error(),
		})
		return
	}
	// do not reveal whether the email exists
	if employee == nil || employee.Verified {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "Si la cuenta existe, se reenvió el correo de verificación",
		})
		return
	}

	token := uuid.NewString()
	if err := h.Employees.SetVerificationToken(r.Context(), employee.ID, token); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "No se pudo reenviar la verificación: " + err.Error(),
		})
		return
	}
	slog.Info("verification token reissued", "email", employee.Email, "token", token)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Si la cuenta existe, se reenvió el correo de verificación",
	})
}
