package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"crmd/internal/entity"
	"crmd/internal/graph"
	"crmd/internal/store"
)

func setupSeedResolver(t *testing.T) *graph.Resolver {
	t.Helper()
	st, err := store.Open("sqlite", filepath.Join(t.TempDir(), "crm.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return &graph.Resolver{Store: st}
}

func TestRunSeed(t *testing.T) {
	resolver := setupSeedResolver(t)
	ctx := context.Background()

	phone := "+12025550101"
	stock := 10
	fixture := &seedFixture{
		Customers: []seedCustomer{
			{Name: "Alice Johnson", Email: "alice@example.com", Phone: &phone},
			{Name: "Bob Smith", Email: "bob@example.com"},
		},
		Products: []seedProduct{
			{Name: "Laptop", Price: "999.99", Stock: &stock},
			{Name: "Mouse", Price: "19.99"},
		},
		Orders: []seedOrder{
			{Customer: "alice@example.com", Products: []string{"Laptop", "Mouse"}},
		},
	}

	report, err := runSeed(ctx, resolver, fixture)
	if err != nil {
		t.Fatalf("runSeed() error = %v", err)
	}
	if report.Customers != 2 {
		t.Errorf("report.Customers = %d, want 2", report.Customers)
	}
	if report.Products != 2 {
		t.Errorf("report.Products = %d, want 2", report.Products)
	}
	if report.Orders != 1 {
		t.Errorf("report.Orders = %d, want 1", report.Orders)
	}
	if len(report.Problems) != 0 {
		t.Errorf("report.Problems = %v, want none", report.Problems)
	}

	orders, err := resolver.Store.Orders(ctx, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("Orders() count = %d, want 1", len(orders))
	}
	if len(orders[0].Products) != 2 {
		t.Errorf("seeded order product count = %d, want 2", len(orders[0].Products))
	}
}

func TestRunSeedReportsProblems(t *testing.T) {
	resolver := setupSeedResolver(t)
	ctx := context.Background()

	fixture := &seedFixture{
		Customers: []seedCustomer{
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Name: "", Email: "noname@example.com"},
		},
		Products: []seedProduct{
			{Name: "Laptop", Price: "999.99"},
			{Name: "Broken", Price: "not-a-price"},
			{Name: "Negative", Price: "-5"},
		},
		Orders: []seedOrder{
			{Customer: "alice@example.com", Products: []string{"Laptop"}},
			{Customer: "ghost@example.com", Products: []string{"Laptop"}},
			{Customer: "alice@example.com", Products: []string{"Unlisted"}},
		},
	}

	report, err := runSeed(ctx, resolver, fixture)
	if err != nil {
		t.Fatalf("runSeed() error = %v", err)
	}
	if report.Customers != 1 {
		t.Errorf("report.Customers = %d, want 1", report.Customers)
	}
	if report.Products != 1 {
		t.Errorf("report.Products = %d, want 1", report.Products)
	}
	if report.Orders != 1 {
		t.Errorf("report.Orders = %d, want 1", report.Orders)
	}
	// One problem per rejected record: blank name, bad price, negative
	// price, unknown customer, unlisted product.
	if len(report.Problems) != 5 {
		t.Errorf("report.Problems count = %d, want 5: %v", len(report.Problems), report.Problems)
	}
}

func TestRunSeedResolvesExistingCustomers(t *testing.T) {
	resolver := setupSeedResolver(t)
	ctx := context.Background()

	// The order's customer is already in the database, not in the fixture.
	existing := &entity.Customer{Name: "Alice Johnson", Email: "alice@example.com"}
	if err := resolver.Store.CreateCustomer(ctx, existing); err != nil {
		t.Fatalf("failed to create existing customer: %v", err)
	}

	fixture := &seedFixture{
		Products: []seedProduct{
			{Name: "Laptop", Price: "999.99"},
		},
		Orders: []seedOrder{
			{Customer: "alice@example.com", Products: []string{"Laptop"}},
		},
	}

	report, err := runSeed(ctx, resolver, fixture)
	if err != nil {
		t.Fatalf("runSeed() error = %v", err)
	}
	if report.Orders != 1 {
		t.Fatalf("report.Orders = %d, want 1: %v", report.Orders, report.Problems)
	}

	orders, err := resolver.Store.Orders(ctx, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerID != existing.ID {
		t.Errorf("seeded order customer = %v, want %d", orders, existing.ID)
	}
}

func TestSeedFixtureYAML(t *testing.T) {
	doc := `
customers:
  - name: Alice Johnson
    email: alice@example.com
    phone: "+12025550101"
products:
  - name: Laptop
    price: "999.99"
    stock: 10
orders:
  - customer: alice@example.com
    products: [Laptop]
    date: 2024-06-01T12:00:00Z
`
	var fixture seedFixture
	if err := yaml.Unmarshal([]byte(doc), &fixture); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if len(fixture.Customers) != 1 || fixture.Customers[0].Email != "alice@example.com" {
		t.Errorf("fixture.Customers = %v, want alice@example.com", fixture.Customers)
	}
	if fixture.Customers[0].Phone == nil || *fixture.Customers[0].Phone != "+12025550101" {
		t.Errorf("fixture.Customers[0].Phone = %v, want +12025550101", fixture.Customers[0].Phone)
	}
	if len(fixture.Products) != 1 || fixture.Products[0].Price != "999.99" {
		t.Errorf("fixture.Products = %v, want price 999.99", fixture.Products)
	}
	if fixture.Products[0].Stock == nil || *fixture.Products[0].Stock != 10 {
		t.Errorf("fixture.Products[0].Stock = %v, want 10", fixture.Products[0].Stock)
	}
	if len(fixture.Orders) != 1 || len(fixture.Orders[0].Products) != 1 {
		t.Fatalf("fixture.Orders = %v, want one order with one product", fixture.Orders)
	}
	want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if fixture.Orders[0].Date == nil || !fixture.Orders[0].Date.Equal(want) {
		t.Errorf("fixture.Orders[0].Date = %v, want %v", fixture.Orders[0].Date, want)
	}
}
