package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerFilter narrows customer listings. Nil fields match everything.
type CustomerFilter struct {
	NameContains  *string
	EmailContains *string
	CreatedAtMin  *time.Time
	CreatedAtMax  *time.Time
	PhonePrefix   *string
}

// ProductFilter narrows product listings. Nil fields match everything.
type ProductFilter struct {
	NameContains *string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
}

// OrderFilter narrows order listings. Nil fields match everything.
// CustomerName and ProductName reach across the order's relations;
// ProductID matches orders containing that product.
type OrderFilter struct {
	TotalMin     *decimal.Decimal
	TotalMax     *decimal.Decimal
	DateMin      *time.Time
	DateMax      *time.Time
	CustomerName *string
	ProductName  *string
	ProductID    *uuid.UUID
}

func applyCustomerFilter(q *gorm.DB, f *CustomerFilter) *gorm.DB {
	if f == nil {
		return q
	}
	if f.NameContains != nil {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(*f.NameContains))
	}
	if f.EmailContains != nil {
		q = q.Where(`LOWER(email) LIKE ? ESCAPE '\'`, likePattern(*f.EmailContains))
	}
	if f.CreatedAtMin != nil {
		q = q.Where("created_at >= ?", *f.CreatedAtMin)
	}
	if f.CreatedAtMax != nil {
		q = q.Where("created_at <= ?", *f.CreatedAtMax)
	}
	if f.PhonePrefix != nil {
		// Prefix match is case-sensitive; phone numbers carry no letters.
		q = q.Where(`phone LIKE ? ESCAPE '\'`, escapeLike(*f.PhonePrefix)+"%")
	}
	return q
}

func applyProductFilter(q *gorm.DB, f *ProductFilter) *gorm.DB {
	if f == nil {
		return q
	}
	if f.NameContains != nil {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(*f.NameContains))
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.StockMin != nil {
		q = q.Where("stock >= ?", *f.StockMin)
	}
	if f.StockMax != nil {
		q = q.Where("stock <= ?", *f.StockMax)
	}
	return q
}

func applyOrderFilter(q *gorm.DB, f *OrderFilter) *gorm.DB {
	if f == nil {
		return q
	}
	if f.TotalMin != nil {
		q = q.Where("orders.total_amount >= ?", *f.TotalMin)
	}
	if f.TotalMax != nil {
		q = q.Where("orders.total_amount <= ?", *f.TotalMax)
	}
	if f.DateMin != nil {
		q = q.Where("orders.order_date >= ?", *f.DateMin)
	}
	if f.DateMax != nil {
		q = q.Where("orders.order_date <= ?", *f.DateMax)
	}
	if f.CustomerName != nil {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where(`LOWER(customers.name) LIKE ? ESCAPE '\'`, likePattern(*f.CustomerName))
	}
	if f.ProductName != nil || f.ProductID != nil {
		// Joining the many-to-many table can match an order once per
		// product, so collapse the result back to distinct orders.
		q = q.Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if f.ProductName != nil {
			q = q.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, likePattern(*f.ProductName))
		}
		if f.ProductID != nil {
			q = q.Where("products.id = ?", *f.ProductID)
		}
	}
	return q
}

// likePattern builds a case-insensitive contains pattern for LIKE.
func likePattern(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
