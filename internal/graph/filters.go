package graph

import (
	"github.com/google/uuid"

	"crmd/internal/graph/model"
	"crmd/internal/store"
)

// customerFilter translates the GraphQL filter input into the store's
// filter. Nil inputs pass through so unfiltered queries stay cheap.
func customerFilter(f *model.CustomerFilter) *store.CustomerFilter {
	if f == nil {
		return nil
	}
	return &store.CustomerFilter{
		NameContains:  f.Name,
		EmailContains: f.Email,
		CreatedAtMin:  f.CreatedAtGte,
		CreatedAtMax:  f.CreatedAtLte,
		PhonePrefix:   f.PhonePattern,
	}
}

func productFilter(f *model.ProductFilter) *store.ProductFilter {
	if f == nil {
		return nil
	}
	return &store.ProductFilter{
		NameContains: f.Name,
		PriceMin:     f.PriceGte,
		PriceMax:     f.PriceLte,
		StockMin:     f.StockGte,
		StockMax:     f.StockLte,
	}
}

func orderFilter(f *model.OrderFilter) *store.OrderFilter {
	if f == nil {
		return nil
	}
	sf := &store.OrderFilter{
		TotalMin:     f.TotalAmountGte,
		TotalMax:     f.TotalAmountLte,
		DateMin:      f.OrderDateGte,
		DateMax:      f.OrderDateLte,
		CustomerName: f.CustomerName,
		ProductName:  f.ProductName,
	}
	if f.ProductID != nil {
		// An id that does not parse matches no orders rather than erroring.
		id, err := uuid.Parse(*f.ProductID)
		if err != nil {
			id = uuid.Nil
		}
		sf.ProductID = &id
	}
	return sf
}
