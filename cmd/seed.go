package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"crmd/internal/graph"
	"crmd/internal/graph/model"
	"crmd/internal/ui"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load fixture data from a YAML file",
	Long: `Loads customers, products and orders from a YAML fixture into the
configured database. Defaults to seed.yaml in the working directory.

Fixtures reference customers by email and products by name:

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

Records go through the same mutations the API exposes, so everything is
validated; rejected records are reported and the rest still load.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "seed.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var fixture seedFixture
		if err := yaml.Unmarshal(data, &fixture); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}

		resolver := &graph.Resolver{Store: st}
		report, err := runSeed(context.Background(), resolver, &fixture)
		if err != nil {
			return err
		}

		fmt.Println(ui.Success.Render("Seeded ") +
			fmt.Sprintf("%d customers, %d products, %d orders", report.Customers, report.Products, report.Orders))
		for _, p := range report.Problems {
			fmt.Println("  " + ui.Danger.Render(p))
		}
		return nil
	},
}

// seedFixture is the on-disk shape of a fixture file. Orders reference
// customers by email and products by name so fixtures stay readable.
type seedFixture struct {
	Customers []seedCustomer `yaml:"customers"`
	Products  []seedProduct  `yaml:"products"`
	Orders    []seedOrder    `yaml:"orders"`
}

type seedCustomer struct {
	Name  string  `yaml:"name"`
	Email string  `yaml:"email"`
	Phone *string `yaml:"phone"`
}

type seedProduct struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock *int   `yaml:"stock"`
}

type seedOrder struct {
	Customer string     `yaml:"customer"`
	Products []string   `yaml:"products"`
	Date     *time.Time `yaml:"date"`
}

// seedReport summarizes a seeding run.
type seedReport struct {
	Customers int
	Products  int
	Orders    int
	Problems  []string
}

// runSeed loads the fixture through the GraphQL mutations, so seeded data
// obeys every validation rule of the API. Records the API rejects become
// report problems instead of aborting the run.
func runSeed(ctx context.Context, resolver *graph.Resolver, fixture *seedFixture) (*seedReport, error) {
	report := &seedReport{}
	mut := resolver.Mutation()

	customerIDs := make(map[string]string, len(fixture.Customers))
	if len(fixture.Customers) > 0 {
		inputs := make([]*model.CustomerInput, len(fixture.Customers))
		for i, c := range fixture.Customers {
			inputs[i] = &model.CustomerInput{Name: c.Name, Email: c.Email, Phone: c.Phone}
		}

		payload, err := mut.BulkCreateCustomers(ctx, inputs)
		if err != nil {
			return nil, err
		}

		report.Customers = len(payload.Customers)
		for _, msg := range payload.Errors {
			report.Problems = append(report.Problems, "customers: "+msg)
		}
		for _, c := range payload.Customers {
			customerIDs[c.Email] = strconv.FormatUint(uint64(c.ID), 10)
		}
	}

	productIDs := make(map[string]string, len(fixture.Products))
	for i, p := range fixture.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("products: record %d: bad price %q", i, p.Price))
			continue
		}

		payload, err := mut.CreateProduct(ctx, p.Name, price, p.Stock)
		if err != nil {
			return nil, err
		}
		if payload.Product == nil {
			report.Problems = append(report.Problems, fmt.Sprintf("products: record %d: %s", i, payload.Message))
			continue
		}

		report.Products++
		productIDs[p.Name] = payload.Product.ID.String()
	}

	for i, o := range fixture.Orders {
		customerID, err := seedCustomerID(ctx, resolver, customerIDs, o.Customer)
		if err != nil {
			return nil, err
		}
		if customerID == "" {
			report.Problems = append(report.Problems, fmt.Sprintf("orders: record %d: no customer with email %s", i, o.Customer))
			continue
		}

		ids := make([]string, 0, len(o.Products))
		missing := false
		for _, name := range o.Products {
			id, ok := productIDs[name]
			if !ok {
				report.Problems = append(report.Problems, fmt.Sprintf("orders: record %d: no product named %s in fixture", i, name))
				missing = true
				break
			}
			ids = append(ids, id)
		}
		if missing {
			continue
		}

		payload, err := mut.CreateOrder(ctx, customerID, ids, o.Date)
		if err != nil {
			return nil, err
		}
		if payload.Order == nil {
			report.Problems = append(report.Problems, fmt.Sprintf("orders: record %d: %s", i, payload.Message))
			continue
		}
		report.Orders++
	}

	return report, nil
}

// seedCustomerID resolves an order's customer email, first against the
// customers created in this run, then against the database so fixtures can
// reference customers that already exist.
func seedCustomerID(ctx context.Context, resolver *graph.Resolver, created map[string]string, email string) (string, error) {
	if id, ok := created[email]; ok {
		return id, nil
	}

	c, err := resolver.Store.CustomerByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", nil
	}
	return strconv.FormatUint(uint64(c.ID), 10), nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
