package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order links a customer to a set of products. TotalAmount is a snapshot of
// the product prices at creation time and is never recomputed.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `gorm:"many2many:order_products" json:"products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
}

// BeforeCreate assigns an id and defaults the order date to now, so callers
// may omit either.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}
