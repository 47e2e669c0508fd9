package service

// auth_service.go — login, token refresh and profile management. Passwords
// are bcrypt-hashed; tokens are HMAC-signed JWTs carrying user_id, email and
// perfil. The perfil claim is a convenience only: admin routes re-check the
// profiles table.

import (
	"context"
	"errors"
	"time"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)

	// Profile management (admin)
	CriarProfile(ctx context.Context, req dto.CriarProfileRequest) (*dto.ProfileResponse, error)
	ListarProfiles(ctx context.Context) ([]dto.ProfileResponse, error)
	AtualizarProfile(ctx context.Context, id uuid.UUID, req dto.AtualizarProfileRequest) (*dto.ProfileResponse, error)
	DesativarProfile(ctx context.Context, id uuid.UUID) error
	ReativarProfile(ctx context.Context, id uuid.UUID) error

	// Self service
	ObterMeuPerfil(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	AtualizarMeuPerfil(ctx context.Context, userID uuid.UUID, req dto.AtualizarMeuPerfilRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	profiles       repository.ProfileRepository
	jwtSecret      string
	accessExpires  time.Duration
	refreshExpires time.Duration
}

func NewAuthService(profiles repository.ProfileRepository, jwtSecret string, accessExpires, refreshExpires time.Duration) AuthService {
	return &authService{
		profiles:       profiles,
		jwtSecret:      jwtSecret,
		accessExpires:  accessExpires,
		refreshExpires: refreshExpires,
	}
}

// ─── Sessions ────────────────────────────────────────────────────────────────

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := s.profiles.ObterPorEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoAutenticado
	}
	if err != nil {
		return nil, err
	}
	if !profile.Ativo {
		return nil, ErrNaoAutenticado
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.SenhaHash), []byte(req.Senha)) != nil {
		return nil, ErrNaoAutenticado
	}
	return s.emitirTokens(profile)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNaoAutenticado
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrNaoAutenticado
	}
	// Re-read the profile so a refreshed token carries the current role.
	profile, err := s.profiles.ObterPorID(ctx, userID)
	if err != nil || !profile.Ativo {
		return nil, ErrNaoAutenticado
	}
	return s.emitirTokens(profile)
}

func (s *authService) emitirTokens(profile *model.Profile) (*dto.LoginResponse, error) {
	access, err := s.assinarToken(profile, s.accessExpires)
	if err != nil {
		return nil, err
	}
	refresh, err := s.assinarToken(profile, s.refreshExpires)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.accessExpires.Seconds()),
		User:         montarProfileResponse(*profile),
	}, nil
}

func (s *authService) assinarToken(profile *model.Profile, expires time.Duration) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		Perfil: profile.Perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expires)),
			Subject:   profile.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ─── Profile management ──────────────────────────────────────────────────────

func (s *authService) CriarProfile(ctx context.Context, req dto.CriarProfileRequest) (*dto.ProfileResponse, error) {
	if existente, err := s.profiles.ObterPorEmail(ctx, req.Email); err == nil && existente != nil {
		return nil, novaValidacao("email", "já existe um usuário com este email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	p := model.Profile{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Perfil:    req.Perfil,
		Ativo:     true,
	}
	if err := s.profiles.Criar(ctx, &p); err != nil {
		return nil, err
	}
	resp := montarProfileResponse(p)
	return &resp, nil
}

func (s *authService) ListarProfiles(ctx context.Context) ([]dto.ProfileResponse, error) {
	list, err := s.profiles.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, montarProfileResponse(p))
	}
	return out, nil
}

func (s *authService) AtualizarProfile(ctx context.Context, id uuid.UUID, req dto.AtualizarProfileRequest) (*dto.ProfileResponse, error) {
	p, err := s.profiles.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Usuário"}
	}
	if err != nil {
		return nil, err
	}

	if req.Nome != "" {
		p.Nome = req.Nome
	}
	if req.Perfil != "" {
		p.Perfil = req.Perfil
	}
	if req.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
		if err != nil {
			return nil, err
		}
		p.SenhaHash = string(hash)
	}
	if err := s.profiles.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := montarProfileResponse(*p)
	return &resp, nil
}

func (s *authService) DesativarProfile(ctx context.Context, id uuid.UUID) error {
	if _, err := s.profiles.ObterPorID(ctx, id); err != nil {
		return &NaoEncontradoError{Entidade: "Usuário"}
	}
	return s.profiles.Desativar(ctx, id)
}

func (s *authService) ReativarProfile(ctx context.Context, id uuid.UUID) error {
	return s.profiles.Reativar(ctx, id)
}

// ─── Self service ────────────────────────────────────────────────────────────

func (s *authService) ObterMeuPerfil(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	p, err := s.profiles.ObterPorID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Usuário"}
	}
	if err != nil {
		return nil, err
	}
	resp := montarProfileResponse(*p)
	return &resp, nil
}

// AtualizarMeuPerfil lets users change their own name and password. Role
// changes stay admin-only.
func (s *authService) AtualizarMeuPerfil(ctx context.Context, userID uuid.UUID, req dto.AtualizarMeuPerfilRequest) (*dto.ProfileResponse, error) {
	return s.AtualizarProfile(ctx, userID, dto.AtualizarProfileRequest{Nome: req.Nome, Senha: req.Senha})
}

func montarProfileResponse(p model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:     p.ID.String(),
		Nome:   p.Nome,
		Email:  p.Email,
		Perfil: p.Perfil,
		Ativo:  p.Ativo,
	}
}
