package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
// Un usuario ve y edita su propia cuenta; solo un administrador lista, desactiva o cambia
// los flags admin/active.
type UserUseCase struct {
	repo        repository.UserRepository
	maxPageSize int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, maxPageSize int) *UserUseCase {
	return &UserUseCase{repo: repo, maxPageSize: maxPageSize}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, actor domain.Identity, id string) (*dto.UserResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	if !actor.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// List todos los usuarios (activos e inactivos).
func (uc *UserUseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.UserListResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	req = req.Normalize(uc.maxPageSize)
	list, err := uc.repo.List(ctx, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Update actualiza perfil y, si quien llama es administrador, los flags admin/active.
func (uc *UserUseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	if !actor.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if (in.Admin != nil || in.Active != nil) && !actor.Admin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.NameProfile != nil {
		name := strings.TrimSpace(*in.NameProfile)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.NameProfile = name
	}
	if in.DateBirth != nil {
		if _, err := domaincontract.ParseDate(*in.DateBirth); err != nil {
			return nil, err
		}
		user.DateBirth = *in.DateBirth
	}
	if in.Admin != nil {
		user.Admin = *in.Admin
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	matched, err := uc.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// Disable desactiva la cuenta; un usuario inactivo no puede iniciar sesión.
func (uc *UserUseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if err := domain.CheckID("id", id); err != nil {
		return err
	}
	matched, err := uc.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrUserNotFound
	}
	return nil
}

// ToUserResponse proyecta el usuario sin el hash de la contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		NameProfile: u.NameProfile,
		Email:       u.Email,
		DateBirth:   u.DateBirth,
		Active:      u.Active,
		Admin:       u.Admin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
