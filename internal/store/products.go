package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crmd/internal/entity"
)

// CreateProduct inserts a product, assigning its id if unset.
func (s *Store) CreateProduct(ctx context.Context, p *entity.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// ProductByID returns the product with the given id, or nil if none exists.
func (s *Store) ProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Products returns all products matching the filter, ordered by name then id.
func (s *Store) Products(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error) {
	q := applyProductFilter(s.db.WithContext(ctx).Model(&entity.Product{}), filter)

	var products []*entity.Product
	if err := q.Order("name").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
