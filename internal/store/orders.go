package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"crmd/internal/entity"
)

// CreateOrder places an order for the given customer. Product ids arrive as
// raw strings so that malformed ids are reported the same way as ids that
// match no product. Duplicate ids are collapsed, so each product is charged
// once. The total is always computed from the stored prices, never taken
// from the caller. When orderDate is nil the database row defaults to now.
func (s *Store) CreateOrder(ctx context.Context, customerID uint, productIDs []string, orderDate *time.Time) (*entity.Order, error) {
	var order *entity.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer entity.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if len(productIDs) == 0 {
			return ErrEmptyOrder
		}

		ids := make([]uuid.UUID, 0, len(productIDs))
		seen := make(map[uuid.UUID]bool, len(productIDs))
		for _, raw := range productIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				// A malformed id cannot match any product.
				return ErrUnknownProduct
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}

		var products []entity.Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(ids) {
			return ErrUnknownProduct
		}

		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.Price)
		}

		o := &entity.Order{
			CustomerID:  customer.ID,
			Products:    products,
			TotalAmount: total,
		}
		if orderDate != nil {
			o.OrderDate = *orderDate
		}

		// Omit stops GORM from upserting the product rows; only the join
		// table rows are written for the association.
		if err := tx.Omit("Products.*").Create(o).Error; err != nil {
			return err
		}

		o.Customer = customer
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// OrderByID returns the order with the given id, with its customer and
// products loaded, or nil if none exists.
func (s *Store) OrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	err := preloadOrder(s.db.WithContext(ctx)).First(&o, "orders.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Orders returns all orders matching the filter, ordered by order date then
// id, with customers and products loaded.
func (s *Store) Orders(ctx context.Context, filter *OrderFilter) ([]*entity.Order, error) {
	q := applyOrderFilter(preloadOrder(s.db.WithContext(ctx)).Model(&entity.Order{}), filter)

	var orders []*entity.Order
	if err := q.Order("orders.order_date").Order("orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderProducts returns the products belonging to an order, ordered by name
// then id.
func (s *Store) OrderProducts(ctx context.Context, orderID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	err := s.db.WithContext(ctx).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Order("products.name").Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.name").Order("products.id")
		})
}
