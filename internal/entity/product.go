package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable item. Price uses exact decimal arithmetic so order
// totals never accumulate float error.
type Product struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock int             `gorm:"not null;default:0" json:"stock"`
}

// BeforeCreate assigns an id when none was provided. Generating ids in the
// application keeps sqlite and postgres behavior identical.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
