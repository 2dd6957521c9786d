package graph

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crmd/internal/entity"
	"crmd/internal/graph/model"
	"crmd/internal/store"
)

func setupTestResolver(t *testing.T) (*Resolver, *store.Store) {
	t.Helper()
	st, err := store.Open("sqlite", filepath.Join(t.TempDir(), "crm.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return &Resolver{Store: st}, st
}

func createTestCustomer(t *testing.T, st *store.Store, name, email string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Email: email}
	if err := st.CreateCustomer(context.Background(), c); err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return c
}

func createTestProduct(t *testing.T, st *store.Store, name, price string, stock int) *entity.Product {
	t.Helper()
	d, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad test price %q: %v", price, err)
	}
	p := &entity.Product{Name: name, Price: d, Stock: stock}
	if err := st.CreateProduct(context.Background(), p); err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return p
}

func TestQueryPing(t *testing.T) {
	resolver, _ := setupTestResolver(t)

	got, err := resolver.Query().Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if want := "CRM GraphQL API is up and running!"; got != want {
		t.Errorf("Ping() = %q, want %q", got, want)
	}
}

func TestQueryHello(t *testing.T) {
	resolver, _ := setupTestResolver(t)

	got, err := resolver.Query().Hello(context.Background())
	if err != nil {
		t.Fatalf("Hello() error = %v", err)
	}
	if want := "Hello, GraphQL!"; got != want {
		t.Errorf("Hello() = %q, want %q", got, want)
	}
}

func TestQueryCustomer(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	c := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")

	t.Run("found", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Customer(ctx, strconv.FormatUint(uint64(c.ID), 10))
		if err != nil {
			t.Fatalf("Customer() error = %v", err)
		}
		if got == nil {
			t.Fatal("Customer() returned nil")
		}
		if got.Email != "alice@example.com" {
			t.Errorf("Customer().Email = %q, want %q", got.Email, "alice@example.com")
		}
	})

	t.Run("not found", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Customer(ctx, "9999")
		if err != nil {
			t.Fatalf("Customer() error = %v", err)
		}
		if got != nil {
			t.Errorf("Customer() = %v, want nil", got)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Customer(ctx, "abc")
		if err != nil {
			t.Fatalf("Customer() error = %v", err)
		}
		if got != nil {
			t.Errorf("Customer() = %v, want nil", got)
		}
	})
}

func TestQueryProduct(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	p := createTestProduct(t, st, "Laptop", "999.99", 10)

	t.Run("found", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Product(ctx, p.ID.String())
		if err != nil {
			t.Fatalf("Product() error = %v", err)
		}
		if got == nil {
			t.Fatal("Product() returned nil")
		}
		if got.Name != "Laptop" {
			t.Errorf("Product().Name = %q, want %q", got.Name, "Laptop")
		}
	})

	t.Run("not found", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Product(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("Product() error = %v", err)
		}
		if got != nil {
			t.Errorf("Product() = %v, want nil", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Product(ctx, "not-a-uuid")
		if err != nil {
			t.Fatalf("Product() error = %v", err)
		}
		if got != nil {
			t.Errorf("Product() = %v, want nil", got)
		}
	})
}

func TestQueryOrder(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	c := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	p := createTestProduct(t, st, "Laptop", "999.99", 10)
	order, err := st.CreateOrder(ctx, c.ID, []string{p.ID.String()}, nil)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	t.Run("found with relations", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Order(ctx, order.ID.String())
		if err != nil {
			t.Fatalf("Order() error = %v", err)
		}
		if got == nil {
			t.Fatal("Order() returned nil")
		}
		if got.Customer.Email != "alice@example.com" {
			t.Errorf("Order().Customer.Email = %q, want %q", got.Customer.Email, "alice@example.com")
		}
		if len(got.Products) != 1 {
			t.Errorf("Order().Products count = %d, want 1", len(got.Products))
		}
	})

	t.Run("not found", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Order(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("Order() error = %v", err)
		}
		if got != nil {
			t.Errorf("Order() = %v, want nil", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.Order(ctx, "42")
		if err != nil {
			t.Fatalf("Order() error = %v", err)
		}
		if got != nil {
			t.Errorf("Order() = %v, want nil", got)
		}
	})
}

func TestMutationCreateCustomer(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateCustomer(ctx, "Alice Johnson", "alice@example.com", nil)
		if err != nil {
			t.Fatalf("CreateCustomer() error = %v", err)
		}
		if want := "Customer created successfully!"; got.Message != want {
			t.Errorf("CreateCustomer().Message = %q, want %q", got.Message, want)
		}
		if got.Customer == nil {
			t.Fatal("CreateCustomer().Customer is nil")
		}
		if got.Customer.ID == 0 {
			t.Error("CreateCustomer().Customer.ID is zero")
		}
	})

	t.Run("with valid phone", func(t *testing.T) {
		mr := resolver.Mutation()
		phone := "+12025550101"
		got, err := mr.CreateCustomer(ctx, "Bob Smith", "bob@example.com", &phone)
		if err != nil {
			t.Fatalf("CreateCustomer() error = %v", err)
		}
		if got.Customer == nil {
			t.Fatalf("CreateCustomer().Customer is nil, message = %q", got.Message)
		}
		if got.Customer.Phone == nil || *got.Customer.Phone != "+12025550101" {
			t.Errorf("CreateCustomer().Customer.Phone = %v, want %q", got.Customer.Phone, "+12025550101")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateCustomer(ctx, "Alice Clone", "alice@example.com", nil)
		if err != nil {
			t.Fatalf("CreateCustomer() error = %v", err)
		}
		if want := "Error: Customer with email alice@example.com already exists."; got.Message != want {
			t.Errorf("CreateCustomer().Message = %q, want %q", got.Message, want)
		}
		if got.Customer != nil {
			t.Errorf("CreateCustomer().Customer = %v, want nil", got.Customer)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		mr := resolver.Mutation()
		phone := "12-34"
		got, err := mr.CreateCustomer(ctx, "Carol White", "carol@example.com", &phone)
		if err != nil {
			t.Fatalf("CreateCustomer() error = %v", err)
		}
		want := "Error: Phone number invalid. Details: Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
		if got.Message != want {
			t.Errorf("CreateCustomer().Message = %q, want %q", got.Message, want)
		}
		if got.Customer != nil {
			t.Errorf("CreateCustomer().Customer = %v, want nil", got.Customer)
		}
	})
}

func TestMutationBulkCreateCustomers(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	// bob exists before the batch runs.
	createTestCustomer(t, st, "Bob Smith", "bob@example.com")

	t.Run("partial success reports per-record errors", func(t *testing.T) {
		mr := resolver.Mutation()
		input := []*model.CustomerInput{
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Name: "", Email: "noname@example.com"},
			{Name: "Bob Clone", Email: "bob@example.com"},
			{Name: "Carol White", Email: "carol@example.com"},
			{Name: "Carol Clone", Email: "carol@example.com"},
		}
		got, err := mr.BulkCreateCustomers(ctx, input)
		if err != nil {
			t.Fatalf("BulkCreateCustomers() error = %v", err)
		}
		if len(got.Customers) != 2 {
			t.Errorf("BulkCreateCustomers().Customers count = %d, want 2", len(got.Customers))
		}
		wantErrors := []string{
			"Record 1: Name is required.",
			"Record 2: Customer with email bob@example.com already exists.",
			"Record 4: Customer with email carol@example.com already exists.",
		}
		if len(got.Errors) != len(wantErrors) {
			t.Fatalf("BulkCreateCustomers().Errors count = %d, want %d: %v", len(got.Errors), len(wantErrors), got.Errors)
		}
		for i, want := range wantErrors {
			if got.Errors[i] != want {
				t.Errorf("BulkCreateCustomers().Errors[%d] = %q, want %q", i, got.Errors[i], want)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.BulkCreateCustomers(ctx, nil)
		if err != nil {
			t.Fatalf("BulkCreateCustomers() error = %v", err)
		}
		if len(got.Customers) != 0 {
			t.Errorf("BulkCreateCustomers().Customers count = %d, want 0", len(got.Customers))
		}
		if len(got.Errors) != 0 {
			t.Errorf("BulkCreateCustomers().Errors count = %d, want 0", len(got.Errors))
		}
	})
}

func TestMutationCreateProduct(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	t.Run("success with default stock", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateProduct(ctx, "Laptop", decimal.RequireFromString("999.99"), nil)
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if want := "Product created successfully!"; got.Message != want {
			t.Errorf("CreateProduct().Message = %q, want %q", got.Message, want)
		}
		if got.Product == nil {
			t.Fatal("CreateProduct().Product is nil")
		}
		if got.Product.Stock != 0 {
			t.Errorf("CreateProduct().Product.Stock = %d, want 0", got.Product.Stock)
		}
	})

	t.Run("success with stock", func(t *testing.T) {
		mr := resolver.Mutation()
		stock := 25
		got, err := mr.CreateProduct(ctx, "Mouse", decimal.RequireFromString("19.99"), &stock)
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if got.Product == nil {
			t.Fatalf("CreateProduct().Product is nil, message = %q", got.Message)
		}
		if got.Product.Stock != 25 {
			t.Errorf("CreateProduct().Product.Stock = %d, want 25", got.Product.Stock)
		}
	})

	t.Run("zero price rejected", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateProduct(ctx, "Freebie", decimal.Zero, nil)
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if want := "Error: Price must be a positive number."; got.Message != want {
			t.Errorf("CreateProduct().Message = %q, want %q", got.Message, want)
		}
		if got.Product != nil {
			t.Errorf("CreateProduct().Product = %v, want nil", got.Product)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateProduct(ctx, "Refund", decimal.RequireFromString("-1"), nil)
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if want := "Error: Price must be a positive number."; got.Message != want {
			t.Errorf("CreateProduct().Message = %q, want %q", got.Message, want)
		}
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		mr := resolver.Mutation()
		stock := -5
		got, err := mr.CreateProduct(ctx, "Phantom", decimal.RequireFromString("10"), &stock)
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if want := "Error: Stock cannot be negative."; got.Message != want {
			t.Errorf("CreateProduct().Message = %q, want %q", got.Message, want)
		}
		if got.Product != nil {
			t.Errorf("CreateProduct().Product = %v, want nil", got.Product)
		}
	})
}

func TestMutationCreateOrder(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	customer := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	customerID := strconv.FormatUint(uint64(customer.ID), 10)
	laptop := createTestProduct(t, st, "Laptop", "999.99", 10)
	mouse := createTestProduct(t, st, "Mouse", "19.99", 50)

	t.Run("success", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, customerID, []string{laptop.ID.String(), mouse.ID.String()}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Order created successfully with calculated total."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
		if got.Order == nil {
			t.Fatal("CreateOrder().Order is nil")
		}
		if want := decimal.RequireFromString("1019.98"); !got.Order.TotalAmount.Equal(want) {
			t.Errorf("CreateOrder().Order.TotalAmount = %s, want %s", got.Order.TotalAmount, want)
		}
		if time.Since(got.Order.OrderDate) > time.Minute {
			t.Errorf("CreateOrder().Order.OrderDate = %v, want roughly now", got.Order.OrderDate)
		}
	})

	t.Run("duplicate product ids counted once", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, customerID, []string{laptop.ID.String(), laptop.ID.String()}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if got.Order == nil {
			t.Fatalf("CreateOrder().Order is nil, message = %q", got.Message)
		}
		if len(got.Order.Products) != 1 {
			t.Errorf("CreateOrder().Order.Products count = %d, want 1", len(got.Order.Products))
		}
		if want := decimal.RequireFromString("999.99"); !got.Order.TotalAmount.Equal(want) {
			t.Errorf("CreateOrder().Order.TotalAmount = %s, want %s", got.Order.TotalAmount, want)
		}
	})

	t.Run("explicit order date", func(t *testing.T) {
		mr := resolver.Mutation()
		date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
		got, err := mr.CreateOrder(ctx, customerID, []string{mouse.ID.String()}, &date)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if got.Order == nil {
			t.Fatalf("CreateOrder().Order is nil, message = %q", got.Message)
		}
		if !got.Order.OrderDate.Equal(date) {
			t.Errorf("CreateOrder().Order.OrderDate = %v, want %v", got.Order.OrderDate, date)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, "9999", []string{laptop.ID.String()}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Error: Customer ID 9999 not found."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
		if got.Order != nil {
			t.Errorf("CreateOrder().Order = %v, want nil", got.Order)
		}
	})

	t.Run("non-numeric customer id", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, "abc", []string{laptop.ID.String()}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Error: Customer ID abc not found."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
	})

	t.Run("no products", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, customerID, nil, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Error: Order must contain at least one product."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, customerID, []string{uuid.NewString()}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Error: One or more product IDs were invalid."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
	})

	t.Run("malformed product id", func(t *testing.T) {
		mr := resolver.Mutation()
		got, err := mr.CreateOrder(ctx, customerID, []string{"not-a-uuid"}, nil)
		if err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
		if want := "Error: One or more product IDs were invalid."; got.Message != want {
			t.Errorf("CreateOrder().Message = %q, want %q", got.Message, want)
		}
	})
}

func TestMutationCreateOrderPersistsNothingOnFailure(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	customer := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	customerID := strconv.FormatUint(uint64(customer.ID), 10)
	laptop := createTestProduct(t, st, "Laptop", "999.99", 10)

	mr := resolver.Mutation()
	got, err := mr.CreateOrder(ctx, customerID, []string{laptop.ID.String(), uuid.NewString()}, nil)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if got.Order != nil {
		t.Errorf("CreateOrder().Order = %v, want nil", got.Order)
	}

	orders, err := st.Orders(ctx, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Orders() count = %d, want 0 after failed create", len(orders))
	}
}

func TestIDResolvers(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	customer := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	product := createTestProduct(t, st, "Laptop", "999.99", 10)
	order, err := st.CreateOrder(ctx, customer.ID, []string{product.ID.String()}, nil)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	t.Run("customer id is decimal", func(t *testing.T) {
		got, err := resolver.Customer().ID(ctx, customer)
		if err != nil {
			t.Fatalf("ID() error = %v", err)
		}
		if want := strconv.FormatUint(uint64(customer.ID), 10); got != want {
			t.Errorf("ID() = %q, want %q", got, want)
		}
	})

	t.Run("product id is uuid", func(t *testing.T) {
		got, err := resolver.Product().ID(ctx, product)
		if err != nil {
			t.Fatalf("ID() error = %v", err)
		}
		if got != product.ID.String() {
			t.Errorf("ID() = %q, want %q", got, product.ID.String())
		}
	})

	t.Run("order id is uuid", func(t *testing.T) {
		got, err := resolver.Order().ID(ctx, order)
		if err != nil {
			t.Fatalf("ID() error = %v", err)
		}
		if got != order.ID.String() {
			t.Errorf("ID() = %q, want %q", got, order.ID.String())
		}
	})
}

func TestOrderFieldResolvers(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	customer := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	zebra := createTestProduct(t, st, "Zebra Mug", "9.99", 5)
	apple := createTestProduct(t, st, "Apple Stand", "29.99", 5)
	order, err := st.CreateOrder(ctx, customer.ID, []string{zebra.ID.String(), apple.ID.String()}, nil)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	or := resolver.Order()

	t.Run("customer from loaded order", func(t *testing.T) {
		got, err := or.Customer(ctx, order)
		if err != nil {
			t.Fatalf("Customer() error = %v", err)
		}
		if got == nil || got.Email != "alice@example.com" {
			t.Errorf("Customer() = %v, want alice@example.com", got)
		}
	})

	t.Run("customer fetched when not loaded", func(t *testing.T) {
		bare := &entity.Order{ID: order.ID, CustomerID: customer.ID}
		got, err := or.Customer(ctx, bare)
		if err != nil {
			t.Fatalf("Customer() error = %v", err)
		}
		if got == nil || got.ID != customer.ID {
			t.Errorf("Customer() = %v, want customer %d", got, customer.ID)
		}
	})

	t.Run("products sorted by name", func(t *testing.T) {
		got, err := or.Products(ctx, order)
		if err != nil {
			t.Fatalf("Products() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Products() count = %d, want 2", len(got))
		}
		if got[0].Name != "Apple Stand" || got[1].Name != "Zebra Mug" {
			t.Errorf("Products() order = [%q, %q], want [Apple Stand, Zebra Mug]", got[0].Name, got[1].Name)
		}
	})

	t.Run("products fetched when not loaded", func(t *testing.T) {
		bare := &entity.Order{ID: order.ID, CustomerID: customer.ID}
		got, err := or.Products(ctx, bare)
		if err != nil {
			t.Fatalf("Products() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Products() count = %d, want 2", len(got))
		}
		if got[0].Name != "Apple Stand" {
			t.Errorf("Products()[0].Name = %q, want %q", got[0].Name, "Apple Stand")
		}
	})
}

func TestQueryAllCustomers(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	createTestCustomer(t, st, "Bob Smith", "bob@shop.test")
	createTestCustomer(t, st, "Carol White", "carol@example.com")

	t.Run("no filter", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.AllCustomers(ctx, nil, nil, nil)
		if err != nil {
			t.Fatalf("AllCustomers() error = %v", err)
		}
		if got.TotalCount != 3 {
			t.Errorf("AllCustomers().TotalCount = %d, want 3", got.TotalCount)
		}
		if len(got.Edges) != 3 {
			t.Errorf("AllCustomers() edge count = %d, want 3", len(got.Edges))
		}
		if got.PageInfo.HasNextPage {
			t.Error("AllCustomers().PageInfo.HasNextPage = true, want false")
		}
	})

	t.Run("filter by name", func(t *testing.T) {
		qr := resolver.Query()
		name := "bob"
		got, err := qr.AllCustomers(ctx, &model.CustomerFilter{Name: &name}, nil, nil)
		if err != nil {
			t.Fatalf("AllCustomers() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Fatalf("AllCustomers().TotalCount = %d, want 1", got.TotalCount)
		}
		if got.Edges[0].Node.Name != "Bob Smith" {
			t.Errorf("AllCustomers() node = %q, want %q", got.Edges[0].Node.Name, "Bob Smith")
		}
	})

	t.Run("filter by email", func(t *testing.T) {
		qr := resolver.Query()
		email := "example.com"
		got, err := qr.AllCustomers(ctx, &model.CustomerFilter{Email: &email}, nil, nil)
		if err != nil {
			t.Fatalf("AllCustomers() error = %v", err)
		}
		if got.TotalCount != 2 {
			t.Errorf("AllCustomers().TotalCount = %d, want 2", got.TotalCount)
		}
	})

	t.Run("empty result has no cursors", func(t *testing.T) {
		qr := resolver.Query()
		name := "nobody"
		got, err := qr.AllCustomers(ctx, &model.CustomerFilter{Name: &name}, nil, nil)
		if err != nil {
			t.Fatalf("AllCustomers() error = %v", err)
		}
		if got.TotalCount != 0 {
			t.Errorf("AllCustomers().TotalCount = %d, want 0", got.TotalCount)
		}
		if got.PageInfo.StartCursor != nil || got.PageInfo.EndCursor != nil {
			t.Errorf("AllCustomers().PageInfo cursors = (%v, %v), want nil", got.PageInfo.StartCursor, got.PageInfo.EndCursor)
		}
	})
}

func TestQueryAllProducts(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	createTestProduct(t, st, "Laptop", "999.99", 10)
	createTestProduct(t, st, "Mouse", "19.99", 50)
	createTestProduct(t, st, "Keyboard", "49.99", 0)

	t.Run("sorted by name", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.AllProducts(ctx, nil, nil, nil)
		if err != nil {
			t.Fatalf("AllProducts() error = %v", err)
		}
		if len(got.Edges) != 3 {
			t.Fatalf("AllProducts() edge count = %d, want 3", len(got.Edges))
		}
		if got.Edges[0].Node.Name != "Keyboard" {
			t.Errorf("AllProducts() first node = %q, want %q", got.Edges[0].Node.Name, "Keyboard")
		}
	})

	t.Run("price range", func(t *testing.T) {
		qr := resolver.Query()
		min := decimal.RequireFromString("19.99")
		max := decimal.RequireFromString("50")
		filter := &model.ProductFilter{PriceGte: &min, PriceLte: &max}
		got, err := qr.AllProducts(ctx, filter, nil, nil)
		if err != nil {
			t.Fatalf("AllProducts() error = %v", err)
		}
		if got.TotalCount != 2 {
			t.Errorf("AllProducts().TotalCount = %d, want 2", got.TotalCount)
		}
	})

	t.Run("stock filter", func(t *testing.T) {
		qr := resolver.Query()
		minStock := 1
		got, err := qr.AllProducts(ctx, &model.ProductFilter{StockGte: &minStock}, nil, nil)
		if err != nil {
			t.Fatalf("AllProducts() error = %v", err)
		}
		if got.TotalCount != 2 {
			t.Errorf("AllProducts().TotalCount = %d, want 2", got.TotalCount)
		}
	})
}

func TestQueryAllOrders(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	alice := createTestCustomer(t, st, "Alice Johnson", "alice@example.com")
	bob := createTestCustomer(t, st, "Bob Smith", "bob@example.com")
	laptop := createTestProduct(t, st, "Laptop", "999.99", 10)
	mouse := createTestProduct(t, st, "Mouse", "19.99", 50)

	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if _, err := st.CreateOrder(ctx, alice.ID, []string{laptop.ID.String()}, &june); err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	if _, err := st.CreateOrder(ctx, bob.ID, []string{mouse.ID.String()}, &july); err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	t.Run("no filter sorted by date", func(t *testing.T) {
		qr := resolver.Query()
		got, err := qr.AllOrders(ctx, nil, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 2 {
			t.Fatalf("AllOrders().TotalCount = %d, want 2", got.TotalCount)
		}
		if !got.Edges[0].Node.OrderDate.Equal(june) {
			t.Errorf("AllOrders() first order date = %v, want %v", got.Edges[0].Node.OrderDate, june)
		}
	})

	t.Run("filter by customer name", func(t *testing.T) {
		qr := resolver.Query()
		name := "alice"
		got, err := qr.AllOrders(ctx, &model.OrderFilter{CustomerName: &name}, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Fatalf("AllOrders().TotalCount = %d, want 1", got.TotalCount)
		}
		if got.Edges[0].Node.CustomerID != alice.ID {
			t.Errorf("AllOrders() node customer = %d, want %d", got.Edges[0].Node.CustomerID, alice.ID)
		}
	})

	t.Run("filter by product id", func(t *testing.T) {
		qr := resolver.Query()
		pid := mouse.ID.String()
		got, err := qr.AllOrders(ctx, &model.OrderFilter{ProductID: &pid}, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Fatalf("AllOrders().TotalCount = %d, want 1", got.TotalCount)
		}
		if got.Edges[0].Node.CustomerID != bob.ID {
			t.Errorf("AllOrders() node customer = %d, want %d", got.Edges[0].Node.CustomerID, bob.ID)
		}
	})

	t.Run("malformed product id matches nothing", func(t *testing.T) {
		qr := resolver.Query()
		pid := "not-a-uuid"
		got, err := qr.AllOrders(ctx, &model.OrderFilter{ProductID: &pid}, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 0 {
			t.Errorf("AllOrders().TotalCount = %d, want 0", got.TotalCount)
		}
	})

	t.Run("total amount range", func(t *testing.T) {
		qr := resolver.Query()
		min := decimal.RequireFromString("100")
		got, err := qr.AllOrders(ctx, &model.OrderFilter{TotalAmountGte: &min}, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Errorf("AllOrders().TotalCount = %d, want 1", got.TotalCount)
		}
	})

	t.Run("order date range", func(t *testing.T) {
		qr := resolver.Query()
		from := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		got, err := qr.AllOrders(ctx, &model.OrderFilter{OrderDateGte: &from}, nil, nil)
		if err != nil {
			t.Fatalf("AllOrders() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Fatalf("AllOrders().TotalCount = %d, want 1", got.TotalCount)
		}
		if !got.Edges[0].Node.OrderDate.Equal(july) {
			t.Errorf("AllOrders() node date = %v, want %v", got.Edges[0].Node.OrderDate, july)
		}
	})
}

func TestConnectionPagination(t *testing.T) {
	resolver, st := setupTestResolver(t)
	ctx := context.Background()

	emails := []string{"a@x.test", "b@x.test", "c@x.test", "d@x.test", "e@x.test"}
	for i, email := range emails {
		createTestCustomer(t, st, "Customer "+strconv.Itoa(i), email)
	}

	qr := resolver.Query()
	first := 2

	// First page.
	page1, err := qr.AllCustomers(ctx, nil, &first, nil)
	if err != nil {
		t.Fatalf("AllCustomers() error = %v", err)
	}
	if len(page1.Edges) != 2 {
		t.Fatalf("page 1 edge count = %d, want 2", len(page1.Edges))
	}
	if page1.TotalCount != 5 {
		t.Errorf("page 1 TotalCount = %d, want 5", page1.TotalCount)
	}
	if !page1.PageInfo.HasNextPage {
		t.Error("page 1 HasNextPage = false, want true")
	}
	if page1.PageInfo.HasPreviousPage {
		t.Error("page 1 HasPreviousPage = true, want false")
	}
	if page1.Edges[0].Node.Email != "a@x.test" {
		t.Errorf("page 1 first node = %q, want %q", page1.Edges[0].Node.Email, "a@x.test")
	}

	// Second page resumes after the first page's end cursor.
	page2, err := qr.AllCustomers(ctx, nil, &first, page1.PageInfo.EndCursor)
	if err != nil {
		t.Fatalf("AllCustomers() error = %v", err)
	}
	if len(page2.Edges) != 2 {
		t.Fatalf("page 2 edge count = %d, want 2", len(page2.Edges))
	}
	if page2.Edges[0].Node.Email != "c@x.test" {
		t.Errorf("page 2 first node = %q, want %q", page2.Edges[0].Node.Email, "c@x.test")
	}
	if !page2.PageInfo.HasPreviousPage {
		t.Error("page 2 HasPreviousPage = false, want true")
	}

	// Last page is short and final.
	page3, err := qr.AllCustomers(ctx, nil, &first, page2.PageInfo.EndCursor)
	if err != nil {
		t.Fatalf("AllCustomers() error = %v", err)
	}
	if len(page3.Edges) != 1 {
		t.Fatalf("page 3 edge count = %d, want 1", len(page3.Edges))
	}
	if page3.Edges[0].Node.Email != "e@x.test" {
		t.Errorf("page 3 node = %q, want %q", page3.Edges[0].Node.Email, "e@x.test")
	}
	if page3.PageInfo.HasNextPage {
		t.Error("page 3 HasNextPage = true, want false")
	}

	// Paging past the end yields an empty page, not an error.
	page4, err := qr.AllCustomers(ctx, nil, &first, page3.PageInfo.EndCursor)
	if err != nil {
		t.Fatalf("AllCustomers() error = %v", err)
	}
	if len(page4.Edges) != 0 {
		t.Errorf("page 4 edge count = %d, want 0", len(page4.Edges))
	}

	t.Run("bad cursor", func(t *testing.T) {
		bad := "not base64!"
		if _, err := qr.AllCustomers(ctx, nil, &first, &bad); err == nil {
			t.Error("AllCustomers() with bad cursor expected error")
		}
	})

	t.Run("negative first", func(t *testing.T) {
		neg := -1
		if _, err := qr.AllCustomers(ctx, nil, &neg, nil); err == nil {
			t.Error("AllCustomers() with negative first expected error")
		}
	})
}
