package contract

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// DetailPage página de la vista enriquecida junto con el total de contratos activos.
type DetailPage struct {
	Items []*entity.ContractDetail
	Total int64
	Page  repository.Page
}

// Aggregator arma la vista enriquecida de contratos activos en una sola llamada.
// El orden no está garantizado: con escrituras concurrentes dos páginas consecutivas pueden
// repetir u omitir contratos. Las filas con referencias colgantes se descartan.
type Aggregator struct {
	contracts repository.ContractRepository
}

// NewAggregator construye el agregador.
func NewAggregator(contracts repository.ContractRepository) *Aggregator {
	return &Aggregator{contracts: contracts}
}

// Page devuelve la ventana pedida y el total, calculado con una consulta independiente.
func (a *Aggregator) Page(ctx context.Context, page repository.Page) (*DetailPage, error) {
	items, err := a.contracts.ListActiveDetailed(ctx, page)
	if err != nil {
		return nil, err
	}
	total, err := a.contracts.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.ContractDetail{}
	}
	return &DetailPage{Items: items, Total: total, Page: page}, nil
}
