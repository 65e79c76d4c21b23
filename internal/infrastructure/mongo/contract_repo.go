package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo colección contracts. El índice parcial contracts_active_pair garantiza
// un único contrato activo por (developer_id, game_id).
type ContractRepo struct {
	coll *mongo.Collection
}

func asDuplicateContract(error) error { return domain.ErrDuplicateActiveContract }

func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	oid, err := newOID(c.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc := contractDoc{
		ID: oid, DeveloperID: c.DeveloperID, GameID: c.GameID, TypeContractID: c.TypeContractID,
		StartDate: c.StartDate, EndDate: c.EndDate, Active: c.Active, CreatedAt: now, UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateActiveContract
		}
		return domain.StoreError("insert contract", err)
	}
	c.ID, c.CreatedAt, c.UpdatedAt = oid.Hex(), now, now
	return nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	doc, err := findOne[contractDoc](ctx, r.coll, "get contract by id", filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

// ListActive contratos activos de la ventana.
func (r *ContractRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Contract, error) {
	docs, err := findMany[contractDoc](ctx, r.coll, "list contracts", activeFilter, pageOptions(page, nil))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Contract, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *ContractRepo) ListActiveDetailed(ctx context.Context, page repository.Page) ([]*entity.ContractDetail, error) {
	cur, err := r.coll.Aggregate(ctx, DetailedContractsPipeline(page.Skip, page.Limit))
	if err != nil {
		return nil, domain.StoreError("aggregate contracts", err)
	}
	var docs []contractDetailDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.StoreError("aggregate contracts", err)
	}
	list := make([]*entity.ContractDetail, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *ContractRepo) CountActive(ctx context.Context) (int64, error) {
	return countPipeline(ctx, r.coll, "count contracts", CountActiveContractsPipeline(), "total")
}

func (r *ContractRepo) CountActiveByPair(ctx context.Context, developerID, gameID, excludeID string) (int64, error) {
	return countPipeline(ctx, r.coll, "count contracts by pair",
		ActivePairPipeline(developerID, gameID, excludeID), "existing_contracts")
}

func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) (bool, error) {
	return setFields(ctx, r.coll, "update contract", c.ID, bson.D{
		{Key: "developer_id", Value: c.DeveloperID},
		{Key: "game_id", Value: c.GameID},
		{Key: "type_contract_id", Value: c.TypeContractID},
		{Key: "start_date", Value: c.StartDate},
		{Key: "end_date", Value: c.EndDate},
		{Key: "active", Value: c.Active},
	}, &c.UpdatedAt, asDuplicateContract)
}

func (r *ContractRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set contract active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, asDuplicateContract)
}
