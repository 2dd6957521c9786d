package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmd/internal/entity"
)

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func timep(t time.Time) *time.Time { return &t }

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"under_score", `under\_score`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.out, escapeLike(tt.in))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%alice%", likePattern("Alice"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
}

func TestCustomerFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	phone := "+12025550101"
	require.NoError(t, s.CreateCustomer(ctx, &entity.Customer{Name: "Alice Johnson", Email: "alice@example.com", Phone: &phone}))
	localPhone := "0712345678"
	require.NoError(t, s.CreateCustomer(ctx, &entity.Customer{Name: "Bob Smith", Email: "bob@shop.test", Phone: &localPhone}))
	require.NoError(t, s.CreateCustomer(ctx, &entity.Customer{Name: "100% Legit Traders", Email: "legit@example.com"}))

	t.Run("name contains is case-insensitive", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{NameContains: strp("aLiCe")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("email contains", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{EmailContains: strp("example.com")})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("phone prefix", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{PhonePrefix: strp("+1")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("like metacharacters are literal", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{NameContains: strp("0%")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "100% Legit Traders", got[0].Name)
	})

	t.Run("created_at range", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{CreatedAtMin: timep(time.Now().Add(-time.Hour))})
		require.NoError(t, err)
		assert.Len(t, got, 3)

		got, err = s.Customers(ctx, &CustomerFilter{CreatedAtMin: timep(time.Now().Add(time.Hour))})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := s.Customers(ctx, &CustomerFilter{NameContains: strp("nobody")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestProductFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestProduct(t, s, "Laptop", "999.99", 10)
	createTestProduct(t, s, "Laptop Sleeve", "49.99", 50)
	createTestProduct(t, s, "Mouse", "25.00", 0)

	t.Run("name contains", func(t *testing.T) {
		got, err := s.Products(ctx, &ProductFilter{NameContains: strp("laptop")})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		got, err := s.Products(ctx, &ProductFilter{PriceMin: decp("49.99"), PriceMax: decp("999.99")})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("stock range", func(t *testing.T) {
		got, err := s.Products(ctx, &ProductFilter{StockMin: intp(1)})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = s.Products(ctx, &ProductFilter{StockMax: intp(0)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mouse", got[0].Name)
	})

	t.Run("combined", func(t *testing.T) {
		got, err := s.Products(ctx, &ProductFilter{NameContains: strp("laptop"), PriceMax: decp("100")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Laptop Sleeve", got[0].Name)
	})
}

func TestOrderFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestCustomer(t, s, "Alice Johnson", "alice@example.com")
	bob := createTestCustomer(t, s, "Bob Smith", "bob@example.com")
	laptop := createTestProduct(t, s, "Laptop", "999.99", 10)
	sleeve := createTestProduct(t, s, "Laptop Sleeve", "49.99", 50)
	mouse := createTestProduct(t, s, "Mouse", "25.00", 5)

	june := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	big, err := s.CreateOrder(ctx, alice.ID, []string{laptop.ID.String(), sleeve.ID.String()}, &june)
	require.NoError(t, err)
	small, err := s.CreateOrder(ctx, bob.ID, []string{mouse.ID.String()}, &july)
	require.NoError(t, err)

	t.Run("total range", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{TotalMin: decp("100")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, big.ID, got[0].ID)
	})

	t.Run("date range", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{DateMin: timep(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, small.ID, got[0].ID)
	})

	t.Run("customer name via relation", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{CustomerName: strp("alice")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, big.ID, got[0].ID)
	})

	t.Run("product name via relation", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{ProductName: strp("mouse")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, small.ID, got[0].ID)
	})

	t.Run("orders with several matching products stay distinct", func(t *testing.T) {
		// Both products of the big order match "laptop"; the order must
		// still come back once.
		got, err := s.Orders(ctx, &OrderFilter{ProductName: strp("laptop")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, big.ID, got[0].ID)
	})

	t.Run("product id", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{ProductID: &sleeve.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, big.ID, got[0].ID)
	})

	t.Run("unknown product id matches nothing", func(t *testing.T) {
		id := uuid.New()
		got, err := s.Orders(ctx, &OrderFilter{ProductID: &id})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("relation filters combine", func(t *testing.T) {
		got, err := s.Orders(ctx, &OrderFilter{CustomerName: strp("alice"), ProductName: strp("sleeve")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, big.ID, got[0].ID)
	})

	t.Run("ordered by date", func(t *testing.T) {
		got, err := s.Orders(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, big.ID, got[0].ID)
		assert.Equal(t, small.ID, got[1].ID)
	})
}
