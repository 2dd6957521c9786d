package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crmd/internal/entity"
)

// CreateCustomer inserts a customer. A unique constraint failure on email
// is reported as ErrDuplicateEmail.
func (s *Store) CreateCustomer(ctx context.Context, c *entity.Customer) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, c.Email)
		}
		return err
	}
	return nil
}

// EmailExists reports whether any customer already has the given email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return emailExists(s.db.WithContext(ctx), email)
}

func emailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CustomerByID returns the customer with the given id, or nil if none exists.
func (s *Store) CustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CustomerByEmail returns the customer with the given email, or nil if none
// exists.
func (s *Store) CustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Customers returns all customers matching the filter, ordered by id.
func (s *Store) Customers(ctx context.Context, filter *CustomerFilter) ([]*entity.Customer, error) {
	q := applyCustomerFilter(s.db.WithContext(ctx).Model(&entity.Customer{}), filter)

	var customers []*entity.Customer
	if err := q.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// BulkRecord is one customer row in a bulk insert.
type BulkRecord struct {
	Name  string
	Email string
	Phone *string
}

// BulkError reports why a single record in a bulk insert was skipped.
type BulkError struct {
	Index int
	Err   error
}

// BulkCreateCustomers inserts the records that pass validation and collects
// a BulkError for each one that does not. The whole batch runs in a single
// transaction so a database failure leaves nothing behind; validation
// failures only skip their own record. Duplicates within the batch are
// caught because each uniqueness check sees the rows created before it.
func (s *Store) BulkCreateCustomers(ctx context.Context, records []BulkRecord) ([]*entity.Customer, []BulkError, error) {
	var created []*entity.Customer
	var skipped []BulkError

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, rec := range records {
			if rec.Name == "" {
				skipped = append(skipped, BulkError{Index: i, Err: ErrNameRequired})
				continue
			}

			exists, err := emailExists(tx, rec.Email)
			if err != nil {
				return err
			}
			if exists {
				skipped = append(skipped, BulkError{
					Index: i,
					Err:   fmt.Errorf("%w: %s", ErrDuplicateEmail, rec.Email),
				})
				continue
			}

			c := &entity.Customer{Name: rec.Name, Email: rec.Email, Phone: rec.Phone}
			if err := tx.Create(c).Error; err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, skipped, nil
}
