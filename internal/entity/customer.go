// Package entity declares the relational schema for the CRM: customers,
// products, and orders. Constraints that belong to the data itself
// (uniqueness, defaults, cascades) live here as schema annotations rather
// than inside business logic.
package entity

import (
	"time"
)

// Customer is a CRM contact. Emails are globally unique; the database
// constraint is the authoritative guard, so two concurrent creates with the
// same email cannot both commit.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Deleting a customer deletes their orders.
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
