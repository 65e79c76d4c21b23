package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ErrReceiptUnavailable no hay generador de comprobantes configurado.
var ErrReceiptUnavailable = errors.New("generación de comprobantes no disponible")

// PurchaseUseCase compras de juegos. El precio se toma del juego en el momento de la compra.
type PurchaseUseCase struct {
	repo        repository.PurchaseRepository
	games       repository.GameRepository
	users       repository.UserRepository
	wishlist    repository.WishlistRepository
	receipts    ports.ReceiptGenerator
	log         *logger.Logger
	maxPageSize int
}

// NewPurchaseUseCase construye el caso de uso. receipts y log pueden ser nil.
func NewPurchaseUseCase(
	repo repository.PurchaseRepository,
	games repository.GameRepository,
	users repository.UserRepository,
	wishlist repository.WishlistRepository,
	receipts ports.ReceiptGenerator,
	log *logger.Logger,
	maxPageSize int,
) *PurchaseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PurchaseUseCase{
		repo:        repo,
		games:       games,
		users:       users,
		wishlist:    wishlist,
		receipts:    receipts,
		log:         log.Component("purchases"),
		maxPageSize: maxPageSize,
	}
}

// Create registra la compra de un juego activo por el usuario autenticado.
// Falla con ErrDuplicate si el usuario ya tiene una compra activa del juego.
// Quitar el juego de la lista de deseos es de mejor esfuerzo: un fallo solo se registra.
func (uc *PurchaseUseCase) Create(ctx context.Context, actor domain.Identity, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
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
	existing, err := uc.repo.FindActiveByUserAndGame(ctx, actor.UserID, in.GameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Purchase{
		UserID: actor.UserID,
		GameID: game.ID,
		Price:  game.Price,
		Active: true,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if uc.wishlist != nil {
		if _, err := uc.wishlist.Remove(ctx, actor.UserID, game.ID); err != nil {
			uc.log.Warn().Err(err).Str("user_id", actor.UserID).Str("game_id", game.ID).
				Msg("no se pudo quitar el juego de la lista de deseos")
		}
	}
	uc.log.Info().Str("purchase_id", p.ID).Str("user_id", actor.UserID).Str("game_id", game.ID).
		Str("price", p.Price.String()).Msg("compra registrada")
	return toPurchaseResponse(p), nil
}

// GetByID solo el dueño o un administrador.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, actor domain.Identity, id string) (*dto.PurchaseResponse, error) {
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

func (uc *PurchaseUseCase) load(ctx context.Context, actor domain.Identity, id string) (*entity.Purchase, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(p.UserID) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// List compras activas: todas para un administrador, las propias para el resto.
func (uc *PurchaseUseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.PurchaseListResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	filter := repository.PurchaseFilter{}
	if !actor.Admin {
		filter.UserID = actor.UserID
	}
	req = req.Normalize(uc.maxPageSize)
	list, err := uc.repo.ListActive(ctx, filter, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Update corrección administrativa de precio o estado.
func (uc *PurchaseUseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	matched, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(p), nil
}

// Disable anula una compra (idempotente).
func (uc *PurchaseUseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
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
		return domain.ErrNotFound
	}
	return nil
}

// Receipt genera el comprobante PDF de la compra para el dueño o un administrador.
func (uc *PurchaseUseCase) Receipt(ctx context.Context, actor domain.Identity, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, ErrReceiptUnavailable
	}
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	data := ports.ReceiptData{
		PurchaseID:  p.ID,
		PurchasedAt: p.PurchasedAt,
		Price:       p.Price,
		Active:      p.Active,
	}
	game, err := uc.games.GetByID(ctx, p.GameID)
	if err != nil {
		return nil, err
	}
	if game != nil {
		data.GameTitle = game.Title
		data.GameStatus = game.Status
	}
	buyer, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if buyer != nil {
		data.BuyerName = buyer.NameProfile
		data.BuyerEmail = buyer.Email
	}
	pdf, err := uc.receipts.GenerateReceipt(ctx, data)
	if err != nil {
		uc.log.Error().Err(err).Str("purchase_id", p.ID).Msg("error generando comprobante")
		return nil, err
	}
	return pdf, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		GameID:      p.GameID,
		Price:       p.Price,
		PurchasedAt: p.PurchasedAt,
		Active:      p.Active,
	}
}
