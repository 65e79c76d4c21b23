package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/metrics"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	metrics  *metrics.Metrics
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth. m puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, m *metrics.Metrics) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, metrics: m, cost: bcrypt.DefaultCost}
}

// WithBcryptCost permite bajar el coste en tests.
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// RegisterUser crea una cuenta activa sin privilegios: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := domaincontract.ParseDate(in.DateBirth); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		NameProfile:  strings.TrimSpace(in.NameProfile),
		Email:        email,
		PasswordHash: string(hash),
		DateBirth:    in.DateBirth,
		Active:       true,
		Admin:        false,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Una cuenta inactiva no puede iniciar sesión (ErrForbidden).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	res, err := uc.login(ctx, in)
	switch {
	case err == nil:
		uc.metrics.RecordAuthAttempt(metrics.ResultOK)
	case errors.Is(err, domain.ErrStoreUnavailable):
		uc.metrics.RecordAuthAttempt(metrics.ResultError)
	default:
		uc.metrics.RecordAuthAttempt(metrics.ResultRejected)
	}
	return res, err
}

func (uc *AuthUseCase) login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Subject{
		UserID:      user.ID,
		Email:       user.Email,
		NameProfile: user.NameProfile,
		Role:        user.Role(),
		Active:      user.Active,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "login exitoso",
		Token:   token,
		User:    *usecase.ToUserResponse(user),
	}, nil
}
