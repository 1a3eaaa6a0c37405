package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type CrearUsuarioRequest struct {
	Username       string  `json:"username"        validate:"required,min=1,max=150"`
	NombreCompleto string  `json:"nombre_completo" validate:"max=150"`
	Email          *string `json:"email"           validate:"omitempty,email"`
	Password       string  `json:"password"        validate:"required,min=4"`
}

type CambiarPasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	NombreCompleto string  `json:"nombre_completo"`
	Email          *string `json:"email"`
	Activo         bool    `json:"activo"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}
