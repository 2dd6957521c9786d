// Package store persists customers, products and orders in a relational
// database through GORM. It owns schema migration and the write-side
// invariants the API layer reports to clients.
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crmd/internal/entity"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrNameRequired     = errors.New("name is required")
	ErrEmptyOrder       = errors.New("order has no products")
	ErrUnknownProduct   = errors.New("order references unknown products")
)

// Store wraps a GORM connection and exposes the CRM's persistence operations.
type Store struct {
	db *gorm.DB
}

// Open connects to the database named by driver ("sqlite" or "postgres")
// and migrates the schema.
func Open(driver, dsn string) (*Store, error) {
	var dial gorm.Dialector
	switch driver {
	case "sqlite":
		dial = sqlite.Open(dsn)
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// TranslateError maps driver-specific unique constraint failures onto
	// gorm.ErrDuplicatedKey so both backends report duplicates the same way.
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s database: %w", driver, err)
	}

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection without migrating.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the customers, products, orders and
// order_products tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&entity.Customer{}, &entity.Product{}, &entity.Order{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// DB exposes the underlying connection for callers that need raw access.
func (s *Store) DB() *gorm.DB {
	return s.db
}
