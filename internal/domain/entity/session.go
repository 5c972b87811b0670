package entity

import "time"

// SellerInfo perfil del vendedor devuelto por /api/sellers/info.
type SellerInfo struct {
	SellerID     string `json:"sellerId"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
}

// Session contexto explícito de una sesión de consola. Se pasa a cada caso de uso;
// Token es el bearer de la API remota y nunca se serializa hacia el cliente.
type Session struct {
	ID        string
	Username  string
	Token     string
	Seller    SellerInfo
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SellerID atajo al id del vendedor de la sesión.
func (s *Session) SellerID() string {
	if s == nil {
		return ""
	}
	return s.Seller.SellerID
}

// Expired indica si la sesión venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
