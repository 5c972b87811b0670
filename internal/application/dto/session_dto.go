package dto

import "time"

// LoginRequest abre una sesión de consola con el bearer emitido por la API remota.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=120"`
	Token    string `json:"token" validate:"required"`
}

// SellerResponse perfil del vendedor.
type SellerResponse struct {
	SellerID     string `json:"seller_id"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
}

// LoginResponse token de la consola (no el de la API remota).
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Seller    SellerResponse `json:"seller"`
}

// SessionResponse datos de la sesión activa.
type SessionResponse struct {
	Username  string         `json:"username"`
	Seller    SellerResponse `json:"seller"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}
