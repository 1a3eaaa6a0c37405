package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/config"
	"aratrack/internal/dto"
	"aratrack/internal/infra"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredencialesInvalidas = errors.New("credenciales invalidas")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
)

var bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token id until the token would have expired anyway.
	Logout(ctx context.Context, jti string, expira time.Time) error
	Me(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	CambiarPassword(ctx context.Context, id uuid.UUID, req dto.CambiarPasswordRequest) error
	ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
	// AsegurarAdmin creates the configured administrator when no user exists.
	AsegurarAdmin(ctx context.Context) error
}

type authService struct {
	repo     repository.UsuarioRepository
	denylist infra.TokenDenylist
	cfg      *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, denylist infra.TokenDenylist, cfg *config.Config) AuthService {
	return &authService{repo: repo, denylist: denylist, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apierror.ErrNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if !user.Activo {
		return nil, ErrUsuarioInactivo
	}

	gen, err := s.denylist.Generacion(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	accessToken, err := s.generateToken(user, gen, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        usuarioToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expira time.Time) error {
	if jti == "" {
		return nil
	}
	return s.denylist.Revocar(ctx, jti, time.Until(expira))
}

func (s *authService) Me(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usuarioErr(err)
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apierror.Invalid("username es obligatorio")
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, apierror.Duplicate(fmt.Sprintf("el usuario %s ya existe", username))
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:       username,
		NombreCompleto: strings.TrimSpace(req.NombreCompleto),
		Email:          req.Email,
		PasswordHash:   string(hash),
		Activo:         true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apierror.ErrDuplicateKey) {
			return nil, apierror.Duplicate(fmt.Sprintf("el usuario %s ya existe", username))
		}
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = usuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) CambiarPassword(ctx context.Context, id uuid.UUID, req dto.CambiarPasswordRequest) error {
	if len(req.Password) < 4 {
		return apierror.Invalid("la contraseña debe tener al menos 4 caracteres")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return usuarioErr(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	return s.revocarSesiones(ctx, user)
}

func (s *authService) ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usuarioErr(err)
	}
	if user.Username == s.cfg.AdminUsername {
		return nil, apierror.Invalid("no se puede desactivar al administrador")
	}
	user.Activo = !user.Activo
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.revocarSesiones(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return usuarioErr(err)
	}
	if user.Username == s.cfg.AdminUsername {
		return apierror.Invalid("no se puede eliminar al administrador")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return usuarioErr(err)
	}
	return s.revocarSesiones(ctx, user)
}

// revocarSesiones invalidates every token issued to user so far.
func (s *authService) revocarSesiones(ctx context.Context, user *model.Usuario) error {
	if err := s.denylist.RevocarUsuario(ctx, user.ID.String()); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("could not revoke user sessions")
		return err
	}
	return nil
}

func (s *authService) AsegurarAdmin(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcryptCost)
	if err != nil {
		return err
	}
	admin := &model.Usuario{
		Username:       s.cfg.AdminUsername,
		NombreCompleto: "Administrador",
		PasswordHash:   string(hash),
		Activo:         true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("usuario administrador creado")
	return nil
}

func (s *authService) generateToken(user *model.Usuario, gen int64, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"gen":      gen,
		"jti":      uuid.NewString(),
		"exp":      now.Add(duration).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func usuarioErr(err error) error {
	if errors.Is(err, apierror.ErrNotFound) {
		return apierror.NotFound("usuario")
	}
	return err
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:             u.ID.String(),
		Username:       u.Username,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Activo:         u.Activo,
	}
}
