package dto

import "github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FederatedSignInRequest struct {
	IdentityToken string `json:"identity_token"`
	Email         string `json:"email,omitempty"`
}

type AuthResponse struct {
	SessionToken string               `json:"session_token"`
	Account      models.AccountRecord `json:"account"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
	Backend   string `json:"backend"`
}
