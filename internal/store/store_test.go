package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmd/internal/entity"
)

// newTestStore opens a fresh sqlite database under t.TempDir so tests
// cannot see each other's rows.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", filepath.Join(t.TempDir(), "crm.db"))
	require.NoError(t, err)
	return s
}

func createTestCustomer(t *testing.T, s *Store, name, email string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Email: email}
	require.NoError(t, s.CreateCustomer(context.Background(), c))
	return c
}

func createTestProduct(t *testing.T, s *Store, name, price string, stock int) *entity.Product {
	t.Helper()
	d, err := decimal.NewFromString(price)
	require.NoError(t, err)
	p := &entity.Product{Name: name, Price: d, Stock: stock}
	require.NoError(t, s.CreateProduct(context.Background(), p))
	return p
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.Error(t, err)
}

func TestCreateCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	phone := "+12025550101"
	c := &entity.Customer{Name: "Alice", Email: "alice@example.com", Phone: &phone}
	require.NoError(t, s.CreateCustomer(ctx, c))

	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestCustomer(t, s, "Alice", "alice@example.com")

	err := s.CreateCustomer(ctx, &entity.Customer{Name: "Another", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestEmailExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestCustomer(t, s, "Alice", "alice@example.com")

	exists, err := s.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.EmailExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCustomerByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")

	got, err := s.CustomerByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)

	got, err = s.CustomerByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomerByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestCustomer(t, s, "Alice", "alice@example.com")

	got, err := s.CustomerByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)

	got, err = s.CustomerByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBulkCreateCustomers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestCustomer(t, s, "Existing", "existing@example.com")

	records := []BulkRecord{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "", Email: "noname@example.com"},
		{Name: "Dup", Email: "existing@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Bob Again", Email: "bob@example.com"},
	}

	created, skipped, err := s.BulkCreateCustomers(ctx, records)
	require.NoError(t, err)

	require.Len(t, created, 2)
	assert.Equal(t, "alice@example.com", created[0].Email)
	assert.Equal(t, "bob@example.com", created[1].Email)

	require.Len(t, skipped, 3)
	assert.Equal(t, 1, skipped[0].Index)
	assert.ErrorIs(t, skipped[0].Err, ErrNameRequired)
	assert.Equal(t, 2, skipped[1].Index)
	assert.ErrorIs(t, skipped[1].Err, ErrDuplicateEmail)
	// The second bob collides with the first one created in this batch.
	assert.Equal(t, 4, skipped[2].Index)
	assert.ErrorIs(t, skipped[2].Err, ErrDuplicateEmail)

	customers, err := s.Customers(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, customers, 3)
}

func TestCreateProductAssignsID(t *testing.T) {
	s := newTestStore(t)

	p := createTestProduct(t, s, "Laptop", "999.99", 10)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestProductByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, "Laptop", "999.99", 10)

	got, err := s.ProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Laptop", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("999.99")))

	got, err = s.ProductByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)
	mouse := createTestProduct(t, s, "Mouse", "49.99", 100)

	order, err := s.CreateOrder(ctx, c.ID, []string{laptop.ID.String(), mouse.ID.String()}, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, c.ID, order.CustomerID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("1049.98")),
		"TotalAmount = %s, want 1049.98", order.TotalAmount)
	assert.Len(t, order.Products, 2)
	assert.False(t, order.OrderDate.IsZero())
}

func TestCreateOrderDeduplicatesProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)

	order, err := s.CreateOrder(ctx, c.ID, []string{laptop.ID.String(), laptop.ID.String()}, nil)
	require.NoError(t, err)

	assert.Len(t, order.Products, 1)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("999.99")),
		"TotalAmount = %s, want 999.99", order.TotalAmount)
}

func TestCreateOrderHonorsOrderDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)

	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	order, err := s.CreateOrder(ctx, c.ID, []string{laptop.ID.String()}, &when)
	require.NoError(t, err)

	assert.True(t, order.OrderDate.Equal(when), "OrderDate = %s, want %s", order.OrderDate, when)
}

func TestCreateOrderErrors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)

	t.Run("unknown customer", func(t *testing.T) {
		_, err := s.CreateOrder(ctx, 9999, []string{laptop.ID.String()}, nil)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("no products", func(t *testing.T) {
		_, err := s.CreateOrder(ctx, c.ID, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("unknown product id", func(t *testing.T) {
		_, err := s.CreateOrder(ctx, c.ID, []string{uuid.New().String()}, nil)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("malformed product id", func(t *testing.T) {
		_, err := s.CreateOrder(ctx, c.ID, []string{"not-a-uuid"}, nil)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("mixed known and unknown ids", func(t *testing.T) {
		_, err := s.CreateOrder(ctx, c.ID, []string{laptop.ID.String(), uuid.New().String()}, nil)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	// Failed attempts must leave nothing behind.
	orders, err := s.Orders(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)

	order, err := s.CreateOrder(ctx, c.ID, []string{laptop.ID.String()}, nil)
	require.NoError(t, err)

	got, err := s.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Customer.Name)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Laptop", got.Products[0].Name)

	got, err = s.OrderByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := createTestCustomer(t, s, "Alice", "alice@example.com")
	zebra := createTestProduct(t, s, "Zebra Print", "5.00", 1)
	apple := createTestProduct(t, s, "Apple Case", "10.00", 1)

	order, err := s.CreateOrder(ctx, c.ID, []string{zebra.ID.String(), apple.ID.String()}, nil)
	require.NoError(t, err)

	products, err := s.OrderProducts(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Ordered by name, not insertion order.
	assert.Equal(t, "Apple Case", products[0].Name)
	assert.Equal(t, "Zebra Print", products[1].Name)
}

func TestCustomersOrderedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestCustomer(t, s, "Zed", "zed@example.com")
	createTestCustomer(t, s, "Alice", "alice@example.com")

	customers, err := s.Customers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Zed", customers[0].Name)
	assert.Equal(t, "Alice", customers[1].Name)
}

func TestProductsOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestProduct(t, s, "Zebra Print", "5.00", 1)
	createTestProduct(t, s, "Apple Case", "10.00", 1)

	products, err := s.Products(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apple Case", products[0].Name)
	assert.Equal(t, "Zebra Print", products[1].Name)
}

func TestBulkCreateCustomersRollsBackTogether(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A skipped record must not prevent the others from committing.
	records := []BulkRecord{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "", Email: "noname@example.com"},
	}
	created, skipped, err := s.BulkCreateCustomers(ctx, records)
	require.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Len(t, skipped, 1)

	exists, err := s.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
