package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type contractRow = entity.Contract

// ContractRepo implementa repository.ContractRepository.
// Create, Update y SetActive rechazan un segundo contrato activo para el mismo par
// (developer_id, game_id) con domain.ErrDuplicateActiveContract, igual que el índice parcial.
type ContractRepo struct {
	s *Store
}

var _ repository.ContractRepository = (*ContractRepo)(nil)

// Contracts repositorio de contratos del store.
func (s *Store) Contracts() *ContractRepo {
	return &ContractRepo{s: s}
}

// activePairTaken debe llamarse con el lock de escritura tomado.
func (r *ContractRepo) activePairTaken(c contractRow) bool {
	if !c.Active {
		return false
	}
	return r.s.contracts.count(func(o contractRow) bool {
		return o.ID != c.ID && o.Active && o.DeveloperID == c.DeveloperID && o.GameID == c.GameID
	}) > 0
}

func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == "" {
		c.ID = domain.NewID()
	}
	if r.activePairTaken(*c) {
		return domain.ErrDuplicateActiveContract
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	r.s.contracts.put(c.ID, *c)
	return nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contracts.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func activeContract(c contractRow) bool { return c.Active }

func (r *ContractRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(r.s.contracts.filter(activeContract), page)
	out := make([]*entity.Contract, 0, len(rows))
	for i := range rows {
		c := rows[i]
		out = append(out, &c)
	}
	return out, nil
}

// ListActiveDetailed pagina primero y luego resuelve las referencias; las filas con una
// referencia colgante se descartan, por lo que una página puede traer menos de Limit elementos.
func (r *ContractRepo) ListActiveDetailed(ctx context.Context, page repository.Page) ([]*entity.ContractDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(r.s.contracts.filter(activeContract), page)
	out := make([]*entity.ContractDetail, 0, len(rows))
	for _, c := range rows {
		dev, ok := r.s.developers.get(c.DeveloperID)
		if !ok {
			continue
		}
		game, ok := r.s.games.get(c.GameID)
		if !ok {
			continue
		}
		ct, ok := r.s.contractTypes.get(c.TypeContractID)
		if !ok {
			continue
		}
		out = append(out, &entity.ContractDetail{
			Contract:     c,
			Developer:    entity.DeveloperRef{ID: dev.ID, Name: dev.Name},
			Game:         entity.GameRef{ID: game.ID, Title: game.Title},
			ContractType: entity.ContractTypeRef{ID: ct.ID, Description: ct.Description},
		})
	}
	return out, nil
}

func (r *ContractRepo) CountActive(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contracts.count(activeContract), nil
}

func (r *ContractRepo) CountActiveByPair(ctx context.Context, developerID, gameID, excludeID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contracts.count(func(c contractRow) bool {
		return c.Active && c.DeveloperID == developerID && c.GameID == gameID && (excludeID == "" || c.ID != excludeID)
	}), nil
}

func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.contracts.get(c.ID)
	if !ok {
		return false, nil
	}
	if r.activePairTaken(*c) {
		return true, domain.ErrDuplicateActiveContract
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	r.s.contracts.put(c.ID, *c)
	return true, nil
}

func (r *ContractRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contracts.get(id)
	if !ok {
		return false, nil
	}
	c.Active = active
	if r.activePairTaken(c) {
		return true, domain.ErrDuplicateActiveContract
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.contracts.put(id, c)
	return true, nil
}
