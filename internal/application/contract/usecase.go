// Package contract orquesta el ciclo de vida de los contratos: validación de referencias,
// reglas de negocio, persistencia y la vista enriquecida.
package contract

import (
	"context"
	"errors"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"github.com/jhoicas/tienda-api/pkg/metrics"
)

// Operaciones reportadas en métricas.
const (
	opCreate  = "create"
	opUpdate  = "update"
	opDisable = "disable"
)

// UseCase casos de uso de contratos.
type UseCase struct {
	contracts   repository.ContractRepository
	refs        *ReferenceValidator
	rules       *RuleValidator
	aggregator  *Aggregator
	log         *logger.Logger
	metrics     *metrics.Metrics
	maxPageSize int
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithLogger asigna el logger (por defecto descarta todo).
func WithLogger(l *logger.Logger) Option {
	return func(uc *UseCase) { uc.log = l.Component("contracts") }
}

// WithMetrics asigna las métricas (nil = sin métricas).
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *UseCase) { uc.metrics = m }
}

// WithMaxPageSize tope de limit en los listados.
func WithMaxPageSize(n int) Option {
	return func(uc *UseCase) { uc.maxPageSize = n }
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	contracts repository.ContractRepository,
	developers repository.DeveloperRepository,
	games repository.GameRepository,
	contractTypes repository.ContractTypeRepository,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		contracts:   contracts,
		refs:        NewReferenceValidator(developers, games, contractTypes),
		rules:       NewRuleValidator(contracts),
		aggregator:  NewAggregator(contracts),
		log:         logger.Nop(),
		maxPageSize: dto.MaxLimit,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create valida formato, referencias, fechas y unicidad, y luego inserta.
// Ninguna validación fallida llega a escribir.
func (uc *UseCase) Create(ctx context.Context, actor domain.Identity, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	c, err := uc.buildContract(in)
	if err != nil {
		return nil, uc.reject(opCreate, err)
	}
	if err := uc.refs.Validate(ctx, c.DeveloperID, c.GameID, c.TypeContractID); err != nil {
		return nil, uc.reject(opCreate, err)
	}
	if err := uc.rules.Check(ctx, *c, ""); err != nil {
		return nil, uc.reject(opCreate, err)
	}
	if err := uc.contracts.Create(ctx, c); err != nil {
		return nil, uc.reject(opCreate, err)
	}
	uc.metrics.RecordContractOperation(opCreate, metrics.ResultOK)
	uc.log.Info().Str("contract_id", c.ID).Str("developer_id", c.DeveloperID).Str("game_id", c.GameID).
		Str("user_id", actor.UserID).Msg("contrato creado")
	return ToResponse(c), nil
}

func (uc *UseCase) buildContract(in dto.CreateContractRequest) (*entity.Contract, error) {
	if err := domain.CheckID(domain.FieldDeveloperID, in.DeveloperID); err != nil {
		return nil, err
	}
	if err := domain.CheckID(domain.FieldGameID, in.GameID); err != nil {
		return nil, err
	}
	if err := domain.CheckID(domain.FieldTypeContractID, in.TypeContractID); err != nil {
		return nil, err
	}
	start, err := domaincontract.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	c := &entity.Contract{
		DeveloperID:    in.DeveloperID,
		GameID:         in.GameID,
		TypeContractID: in.TypeContractID,
		StartDate:      start,
		Active:         true,
	}
	if in.EndDate != nil {
		end, err := domaincontract.ParseDate(*in.EndDate)
		if err != nil {
			return nil, err
		}
		c.EndDate = &end
	}
	return c, nil
}

// List contratos activos sin enriquecer, con el total de activos.
func (uc *UseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.ContractListResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	req = req.Normalize(uc.maxPageSize)
	page := repository.Page{Skip: req.Skip, Limit: req.Limit}
	list, err := uc.contracts.ListActive(ctx, page)
	if err != nil {
		return nil, uc.storeFailure("list", err)
	}
	total, err := uc.contracts.CountActive(ctx)
	if err != nil {
		return nil, uc.storeFailure("list", err)
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToResponse(c))
	}
	return &dto.ContractListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// ListDetailed página de la vista enriquecida (desarrollador, juego y tipo desnormalizados).
func (uc *UseCase) ListDetailed(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.ContractDetailListResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	req = req.Normalize(uc.maxPageSize)
	res, err := uc.aggregator.Page(ctx, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, uc.storeFailure("list_detailed", err)
	}
	items := make([]dto.ContractDetailResponse, 0, len(res.Items))
	for _, d := range res.Items {
		items = append(items, ToDetailResponse(d))
	}
	return &dto.ContractDetailListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: res.Total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// GetByID devuelve el contrato aunque esté inactivo.
func (uc *UseCase) GetByID(ctx context.Context, actor domain.Identity, id string) (*dto.ContractResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	c, err := uc.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, uc.storeFailure("get", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return ToResponse(c), nil
}

// Update aplica una actualización parcial. Solo se revalida lo que el patch toca:
//   - developer_id presente: el desarrollador debe estar activo.
//   - developer_id o game_id presentes: el juego debe estar activo y pertenecer al desarrollador resultante.
//   - type_contract_id presente: el tipo debe estar activo.
//   - start_date o end_date presentes: orden de fechas sobre el resultado.
//   - resultado activo con par cambiado o reactivación: unicidad del par.
func (uc *UseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	patch, err := toPatch(in)
	if err != nil {
		return nil, uc.reject(opUpdate, err)
	}
	current, err := uc.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, uc.reject(opUpdate, err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if patch.IsEmpty() {
		return ToResponse(current), nil
	}
	next := patch.Apply(*current)

	if patch.DeveloperID != nil {
		if err := uc.refs.ValidateDeveloper(ctx, next.DeveloperID); err != nil {
			return nil, uc.reject(opUpdate, err)
		}
	}
	if patch.DeveloperID != nil || patch.GameID != nil {
		if err := uc.refs.ValidateGame(ctx, next.GameID, next.DeveloperID); err != nil {
			return nil, uc.reject(opUpdate, err)
		}
	}
	if patch.TypeContractID != nil {
		if err := uc.refs.ValidateContractType(ctx, next.TypeContractID); err != nil {
			return nil, uc.reject(opUpdate, err)
		}
	}
	if patch.StartDate != nil || patch.EndDateSet {
		if err := uc.rules.CheckDates(next.StartDate, next.EndDate); err != nil {
			return nil, uc.reject(opUpdate, err)
		}
	}
	if domaincontract.NeedsUniquenessCheck(*current, patch) {
		if err := uc.rules.CheckUniqueness(ctx, next.DeveloperID, next.GameID, id); err != nil {
			return nil, uc.reject(opUpdate, err)
		}
	}

	matched, err := uc.contracts.Update(ctx, &next)
	if err != nil {
		return nil, uc.reject(opUpdate, err)
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	uc.metrics.RecordContractOperation(opUpdate, metrics.ResultOK)
	uc.log.Info().Str("contract_id", id).Str("user_id", actor.UserID).Msg("contrato actualizado")
	return ToResponse(&next), nil
}

// Disable marca el contrato como inactivo. Es idempotente; NotFound solo si el id no existe.
func (uc *UseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if err := domain.CheckID("id", id); err != nil {
		return err
	}
	matched, err := uc.contracts.SetActive(ctx, id, false)
	if err != nil {
		return uc.reject(opDisable, err)
	}
	if !matched {
		return domain.ErrNotFound
	}
	uc.metrics.RecordContractOperation(opDisable, metrics.ResultOK)
	uc.log.Info().Str("contract_id", id).Str("user_id", actor.UserID).Msg("contrato desactivado")
	return nil
}

// reject registra el rechazo y devuelve err sin modificar.
func (uc *UseCase) reject(op string, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		uc.metrics.RecordContractOperation(op, metrics.ResultError)
		uc.log.Error().Err(err).Str("operation", op).Msg("fallo del almacenamiento")
		return err
	}
	uc.metrics.RecordContractOperation(op, metrics.ResultRejected)
	uc.log.Warn().Err(err).Str("operation", op).Msg("operación de contrato rechazada")
	return err
}

func (uc *UseCase) storeFailure(op string, err error) error {
	uc.log.Error().Err(err).Str("operation", op).Msg("fallo del almacenamiento")
	return err
}
