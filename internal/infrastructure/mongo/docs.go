package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type developerDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Country     *string            `bson:"country,omitempty"`
	FoundedYear *int               `bson:"founded_year,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *developerDoc) entity() *entity.Developer {
	return &entity.Developer{
		ID: d.ID.Hex(), Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear,
		Active: d.Active, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type gameDoc struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	ReleaseDate time.Time            `bson:"release_date"`
	Price       primitive.Decimal128 `bson:"price"`
	DeveloperID string               `bson:"developer_id"`
	Status      string               `bson:"status"`
	Active      bool                 `bson:"active"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func newGameDoc(oid primitive.ObjectID, g *entity.Game) (*gameDoc, error) {
	price, err := toDecimal128(g.Price)
	if err != nil {
		return nil, err
	}
	return &gameDoc{
		ID: oid, Title: g.Title, Description: g.Description, ReleaseDate: g.ReleaseDate, Price: price,
		DeveloperID: g.DeveloperID, Status: g.Status, Active: g.Active,
		CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}, nil
}

func (d *gameDoc) entity() (*entity.Game, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Game{
		ID: d.ID.Hex(), Title: d.Title, Description: d.Description, ReleaseDate: d.ReleaseDate,
		Price: price, DeveloperID: d.DeveloperID, Status: d.Status, Active: d.Active,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

type contractTypeDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Description string             `bson:"description"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *contractTypeDoc) entity() *entity.ContractType {
	return &entity.ContractType{
		ID: d.ID.Hex(), Description: d.Description, Active: d.Active,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type contractDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	DeveloperID    string             `bson:"developer_id"`
	GameID         string             `bson:"game_id"`
	TypeContractID string             `bson:"type_contract_id"`
	StartDate      time.Time          `bson:"start_date"`
	EndDate        *time.Time         `bson:"end_date"`
	Active         bool               `bson:"active"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *contractDoc) entity() *entity.Contract {
	return &entity.Contract{
		ID: d.ID.Hex(), DeveloperID: d.DeveloperID, GameID: d.GameID, TypeContractID: d.TypeContractID,
		StartDate: d.StartDate.UTC(), EndDate: utcPtr(d.EndDate), Active: d.Active,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

// contractDetailDoc forma del $project de DetailedContractsPipeline.
type contractDetailDoc struct {
	Base      contractDoc `bson:",inline"`
	Developer struct {
		ID   string `bson:"id"`
		Name string `bson:"name"`
	} `bson:"developer_info"`
	Game struct {
		ID    string `bson:"id"`
		Title string `bson:"title"`
	} `bson:"game_info"`
	ContractType struct {
		ID          string `bson:"id"`
		Description string `bson:"description"`
	} `bson:"type_contract_info"`
}

func (d *contractDetailDoc) entity() *entity.ContractDetail {
	return &entity.ContractDetail{
		Contract:     *d.Base.entity(),
		Developer:    entity.DeveloperRef{ID: d.Developer.ID, Name: d.Developer.Name},
		Game:         entity.GameRef{ID: d.Game.ID, Title: d.Game.Title},
		ContractType: entity.ContractTypeRef{ID: d.ContractType.ID, Description: d.ContractType.Description},
	}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	NameProfile  string             `bson:"name_profile"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	DateBirth    string             `bson:"date_birth"`
	Active       bool               `bson:"active"`
	Admin        bool               `bson:"admin"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *userDoc) entity() *entity.User {
	return &entity.User{
		ID: d.ID.Hex(), NameProfile: d.NameProfile, Email: d.Email, PasswordHash: d.PasswordHash,
		DateBirth: d.DateBirth, Active: d.Active, Admin: d.Admin,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type purchaseDoc struct {
	ID          primitive.ObjectID   `bson:"_id"`
	UserID      string               `bson:"user_id"`
	GameID      string               `bson:"game_id"`
	Price       primitive.Decimal128 `bson:"price"`
	PurchasedAt time.Time            `bson:"purchased_at"`
	Active      bool                 `bson:"active"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d *purchaseDoc) entity() (*entity.Purchase, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Purchase{
		ID: d.ID.Hex(), UserID: d.UserID, GameID: d.GameID, Price: price,
		PurchasedAt: d.PurchasedAt, Active: d.Active, UpdatedAt: d.UpdatedAt,
	}, nil
}

type wishlistDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"user_id"`
	GameID    string             `bson:"game_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *wishlistDoc) entity() *entity.WishlistItem {
	return &entity.WishlistItem{ID: d.ID.Hex(), UserID: d.UserID, GameID: d.GameID, CreatedAt: d.CreatedAt}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("precio %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(v.String())
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
