package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.84

import (
	"context"
	"crmd/internal/entity"
	"crmd/internal/graph/model"
	"crmd/internal/store"
	"crmd/internal/validate"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID is the resolver for the id field.
func (r *customerResolver) ID(ctx context.Context, obj *entity.Customer) (string, error) {
	return strconv.FormatUint(uint64(obj.ID), 10), nil
}

// CreateCustomer is the resolver for the createCustomer field.
func (r *mutationResolver) CreateCustomer(ctx context.Context, name string, email string, phone *string) (*model.CreateCustomerPayload, error) {
	exists, err := r.Store.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &model.CreateCustomerPayload{Message: duplicateEmailMessage(email)}, nil
	}

	if v := validate.Phone(phone); v != nil {
		return &model.CreateCustomerPayload{
			Message: fmt.Sprintf("Error: Phone number invalid. Details: %s", v.Message),
		}, nil
	}

	c := &entity.Customer{Name: name, Email: email, Phone: phone}
	if err := r.Store.CreateCustomer(ctx, c); err != nil {
		// The unique index catches inserts that raced past the check above.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return &model.CreateCustomerPayload{Message: duplicateEmailMessage(email)}, nil
		}
		return nil, err
	}

	return &model.CreateCustomerPayload{
		Customer: c,
		Message:  "Customer created successfully!",
	}, nil
}

// BulkCreateCustomers is the resolver for the bulkCreateCustomers field.
func (r *mutationResolver) BulkCreateCustomers(ctx context.Context, customersData []*model.CustomerInput) (*model.BulkCreateCustomersPayload, error) {
	records := make([]store.BulkRecord, len(customersData))
	for i, in := range customersData {
		records[i] = store.BulkRecord{Name: in.Name, Email: in.Email, Phone: in.Phone}
	}

	created, skipped, err := r.Store.BulkCreateCustomers(ctx, records)
	if err != nil {
		return nil, err
	}

	payload := &model.BulkCreateCustomersPayload{
		Customers: created,
		Errors:    []string{},
	}
	for _, s := range skipped {
		payload.Errors = append(payload.Errors, bulkCustomerError(s.Index, records[s.Index].Email, s.Err))
	}
	return payload, nil
}

// CreateProduct is the resolver for the createProduct field.
func (r *mutationResolver) CreateProduct(ctx context.Context, name string, price decimal.Decimal, stock *int) (*model.CreateProductPayload, error) {
	if v := validate.Price(price); v != nil {
		return &model.CreateProductPayload{Message: "Error: " + v.Message}, nil
	}

	st := 0
	if stock != nil {
		st = *stock
	}
	if v := validate.Stock(st); v != nil {
		return &model.CreateProductPayload{Message: "Error: " + v.Message}, nil
	}

	p := &entity.Product{Name: name, Price: price, Stock: st}
	if err := r.Store.CreateProduct(ctx, p); err != nil {
		return &model.CreateProductPayload{Message: fmt.Sprintf("Database Error: %s", err)}, nil
	}

	return &model.CreateProductPayload{
		Product: p,
		Message: "Product created successfully!",
	}, nil
}

// CreateOrder is the resolver for the createOrder field.
func (r *mutationResolver) CreateOrder(ctx context.Context, customerID string, productIds []string, orderDate *time.Time) (*model.CreateOrderPayload, error) {
	id, err := strconv.ParseUint(customerID, 10, 64)
	if err != nil {
		// A non-numeric id cannot match any customer.
		return &model.CreateOrderPayload{Message: customerNotFoundMessage(customerID)}, nil
	}

	order, err := r.Store.CreateOrder(ctx, uint(id), productIds, orderDate)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrCustomerNotFound):
		return &model.CreateOrderPayload{Message: customerNotFoundMessage(customerID)}, nil
	case errors.Is(err, store.ErrEmptyOrder):
		return &model.CreateOrderPayload{Message: "Error: Order must contain at least one product."}, nil
	case errors.Is(err, store.ErrUnknownProduct):
		return &model.CreateOrderPayload{Message: "Error: One or more product IDs were invalid."}, nil
	default:
		return nil, err
	}

	return &model.CreateOrderPayload{
		Order:   order,
		Message: "Order created successfully with calculated total.",
	}, nil
}

// ID is the resolver for the id field.
func (r *orderResolver) ID(ctx context.Context, obj *entity.Order) (string, error) {
	return obj.ID.String(), nil
}

// Customer is the resolver for the customer field.
func (r *orderResolver) Customer(ctx context.Context, obj *entity.Order) (*entity.Customer, error) {
	if obj.Customer.ID != 0 {
		return &obj.Customer, nil
	}
	return r.Store.CustomerByID(ctx, obj.CustomerID)
}

// Products is the resolver for the products field.
func (r *orderResolver) Products(ctx context.Context, obj *entity.Order) ([]*entity.Product, error) {
	if obj.Products != nil {
		products := make([]*entity.Product, len(obj.Products))
		for i := range obj.Products {
			products[i] = &obj.Products[i]
		}
		return products, nil
	}
	return r.Store.OrderProducts(ctx, obj.ID)
}

// ID is the resolver for the id field.
func (r *productResolver) ID(ctx context.Context, obj *entity.Product) (string, error) {
	return obj.ID.String(), nil
}

// Ping is the resolver for the ping field.
func (r *queryResolver) Ping(ctx context.Context) (string, error) {
	return "CRM GraphQL API is up and running!", nil
}

// Hello is the resolver for the hello field.
func (r *queryResolver) Hello(ctx context.Context) (string, error) {
	return "Hello, GraphQL!", nil
}

// Customer is the resolver for the customer field.
func (r *queryResolver) Customer(ctx context.Context, id string) (*entity.Customer, error) {
	cid, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, nil
	}
	return r.Store.CustomerByID(ctx, uint(cid))
}

// Product is the resolver for the product field.
func (r *queryResolver) Product(ctx context.Context, id string) (*entity.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.Store.ProductByID(ctx, pid)
}

// Order is the resolver for the order field.
func (r *queryResolver) Order(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.Store.OrderByID(ctx, oid)
}

// AllCustomers is the resolver for the allCustomers field.
func (r *queryResolver) AllCustomers(ctx context.Context, filter *model.CustomerFilter, first *int, after *string) (*model.CustomerConnection, error) {
	customers, err := r.Store.Customers(ctx, customerFilter(filter))
	if err != nil {
		return nil, err
	}

	p, err := paginate(len(customers), first, after)
	if err != nil {
		return nil, err
	}

	conn := &model.CustomerConnection{
		Edges:      make([]*model.CustomerEdge, 0, p.End-p.Start),
		PageInfo:   p.info(),
		TotalCount: len(customers),
	}
	for i := p.Start; i < p.End; i++ {
		conn.Edges = append(conn.Edges, &model.CustomerEdge{
			Node:   customers[i],
			Cursor: offsetCursor(i),
		})
	}
	return conn, nil
}

// AllProducts is the resolver for the allProducts field.
func (r *queryResolver) AllProducts(ctx context.Context, filter *model.ProductFilter, first *int, after *string) (*model.ProductConnection, error) {
	products, err := r.Store.Products(ctx, productFilter(filter))
	if err != nil {
		return nil, err
	}

	p, err := paginate(len(products), first, after)
	if err != nil {
		return nil, err
	}

	conn := &model.ProductConnection{
		Edges:      make([]*model.ProductEdge, 0, p.End-p.Start),
		PageInfo:   p.info(),
		TotalCount: len(products),
	}
	for i := p.Start; i < p.End; i++ {
		conn.Edges = append(conn.Edges, &model.ProductEdge{
			Node:   products[i],
			Cursor: offsetCursor(i),
		})
	}
	return conn, nil
}

// AllOrders is the resolver for the allOrders field.
func (r *queryResolver) AllOrders(ctx context.Context, filter *model.OrderFilter, first *int, after *string) (*model.OrderConnection, error) {
	orders, err := r.Store.Orders(ctx, orderFilter(filter))
	if err != nil {
		return nil, err
	}

	p, err := paginate(len(orders), first, after)
	if err != nil {
		return nil, err
	}

	conn := &model.OrderConnection{
		Edges:      make([]*model.OrderEdge, 0, p.End-p.Start),
		PageInfo:   p.info(),
		TotalCount: len(orders),
	}
	for i := p.Start; i < p.End; i++ {
		conn.Edges = append(conn.Edges, &model.OrderEdge{
			Node:   orders[i],
			Cursor: offsetCursor(i),
		})
	}
	return conn, nil
}

// Customer returns CustomerResolver implementation.
func (r *Resolver) Customer() CustomerResolver { return &customerResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Order returns OrderResolver implementation.
func (r *Resolver) Order() OrderResolver { return &orderResolver{r} }

// Product returns ProductResolver implementation.
func (r *Resolver) Product() ProductResolver { return &productResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type customerResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type orderResolver struct{ *Resolver }
type productResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
