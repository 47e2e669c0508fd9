package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email string `json:"email"    validate:"required,email"`
	Senha string `json:"senha"    validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CriarProfileRequest struct {
	Nome   string `json:"nome"   validate:"required,min=2,max=100"`
	Email  string `json:"email"  validate:"required,email"`
	Senha  string `json:"senha"  validate:"required,min=8"`
	Perfil string `json:"perfil" validate:"required,oneof=usuario administrador superadministrador"`
}

type AtualizarProfileRequest struct {
	Nome   string `json:"nome"   validate:"omitempty,min=2,max=100"`
	Perfil string `json:"perfil" validate:"omitempty,oneof=usuario administrador superadministrador"`
	Senha  string `json:"senha"  validate:"omitempty,min=8"`
}

// AtualizarMeuPerfilRequest is the self-service subset: users may change
// their own name and password, never their role.
type AtualizarMeuPerfilRequest struct {
	Nome  string `json:"nome"  validate:"omitempty,min=2,max=100"`
	Senha string `json:"senha" validate:"omitempty,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProfileResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Ativo  bool   `json:"ativo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"` // seconds
	User         ProfileResponse `json:"user"`
}
