package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// WishlistUseCase lista de deseos del usuario autenticado.
type WishlistUseCase struct {
	repo        repository.WishlistRepository
	games       repository.GameRepository
	maxPageSize int
}

// NewWishlistUseCase construye el caso de uso.
func NewWishlistUseCase(repo repository.WishlistRepository, games repository.GameRepository, maxPageSize int) *WishlistUseCase {
	return &WishlistUseCase{repo: repo, games: games, maxPageSize: maxPageSize}
}

// Add añade un juego activo; ErrDuplicate si ya estaba.
func (uc *WishlistUseCase) Add(ctx context.Context, actor domain.Identity, in dto.AddWishlistRequest) (*dto.WishlistItemResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID(domain.FieldGameID, in.GameID); err != nil {
		return nil, err
	}
	game, err := uc.games.GetByID(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil || !game.Active {
		return nil, domain.InvalidRef(domain.FieldGameID, "no existe o está inactivo")
	}
	it := &entity.WishlistItem{UserID: actor.UserID, GameID: game.ID}
	if err := uc.repo.Add(ctx, it); err != nil {
		return nil, err
	}
	return toWishlistItemResponse(it), nil
}

// List deseos propios paginados.
func (uc *WishlistUseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.WishlistResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	req = req.Normalize(uc.maxPageSize)
	list, err := uc.repo.ListByUser(ctx, actor.UserID, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WishlistItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toWishlistItemResponse(it))
	}
	return &dto.WishlistResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Remove quita un juego; ErrNotFound si no estaba en la lista.
func (uc *WishlistUseCase) Remove(ctx context.Context, actor domain.Identity, gameID string) error {
	if err := actor.RequireActive(); err != nil {
		return err
	}
	if err := domain.CheckID(domain.FieldGameID, gameID); err != nil {
		return err
	}
	removed, err := uc.repo.Remove(ctx, actor.UserID, gameID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toWishlistItemResponse(it *entity.WishlistItem) *dto.WishlistItemResponse {
	return &dto.WishlistItemResponse{ID: it.ID, GameID: it.GameID, CreatedAt: it.CreatedAt}
}
