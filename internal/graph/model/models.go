// Package model holds the GraphQL input, payload and connection types bound
// in gqlgen.yml. Entity nodes come straight from internal/entity; everything
// wire-only lives here.
package model

import (
	"time"

	"crmd/internal/entity"
)

// CustomerInput is one record in a bulkCreateCustomers call.
type CustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerFilter narrows allCustomers. Name and email are case-insensitive
// contains matches; phonePattern is a prefix match.
type CustomerFilter struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	CreatedAtGte *time.Time `json:"createdAtGte,omitempty"`
	CreatedAtLte *time.Time `json:"createdAtLte,omitempty"`
	PhonePattern *string    `json:"phonePattern,omitempty"`
}

// ProductFilter narrows allProducts. Name is a case-insensitive contains
// match; the Gte/Lte pairs are inclusive ranges.
type ProductFilter struct {
	Name     *string  `json:"name,omitempty"`
	PriceGte *Decimal `json:"priceGte,omitempty"`
	PriceLte *Decimal `json:"priceLte,omitempty"`
	StockGte *int     `json:"stockGte,omitempty"`
	StockLte *int     `json:"stockLte,omitempty"`
}

// OrderFilter narrows allOrders. CustomerName and ProductName traverse the
// order's relations; productId matches orders containing that product.
type OrderFilter struct {
	TotalAmountGte *Decimal   `json:"totalAmountGte,omitempty"`
	TotalAmountLte *Decimal   `json:"totalAmountLte,omitempty"`
	OrderDateGte   *time.Time `json:"orderDateGte,omitempty"`
	OrderDateLte   *time.Time `json:"orderDateLte,omitempty"`
	CustomerName   *string    `json:"customerName,omitempty"`
	ProductName    *string    `json:"productName,omitempty"`
	ProductID      *string    `json:"productId,omitempty"`
}

// CreateCustomerPayload reports a createCustomer outcome. Expected failures
// leave Customer nil and explain themselves in Message.
type CreateCustomerPayload struct {
	Customer *entity.Customer `json:"customer,omitempty"`
	Message  string           `json:"message"`
}

// BulkCreateCustomersPayload reports a bulkCreateCustomers outcome: the
// records that were created plus one error string per record that was not.
type BulkCreateCustomersPayload struct {
	Customers []*entity.Customer `json:"customers"`
	Errors    []string           `json:"errors"`
}

// CreateProductPayload reports a createProduct outcome.
type CreateProductPayload struct {
	Product *entity.Product `json:"product,omitempty"`
	Message string          `json:"message"`
}

// CreateOrderPayload reports a createOrder outcome.
type CreateOrderPayload struct {
	Order   *entity.Order `json:"order,omitempty"`
	Message string        `json:"message"`
}

// PageInfo describes the page boundaries of a connection.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor,omitempty"`
	EndCursor       *string `json:"endCursor,omitempty"`
}

type CustomerConnection struct {
	Edges      []*CustomerEdge `json:"edges"`
	PageInfo   *PageInfo       `json:"pageInfo"`
	TotalCount int             `json:"totalCount"`
}

type CustomerEdge struct {
	Node   *entity.Customer `json:"node"`
	Cursor string           `json:"cursor"`
}

type ProductConnection struct {
	Edges      []*ProductEdge `json:"edges"`
	PageInfo   *PageInfo      `json:"pageInfo"`
	TotalCount int            `json:"totalCount"`
}

type ProductEdge struct {
	Node   *entity.Product `json:"node"`
	Cursor string          `json:"cursor"`
}

type OrderConnection struct {
	Edges      []*OrderEdge `json:"edges"`
	PageInfo   *PageInfo    `json:"pageInfo"`
	TotalCount int          `json:"totalCount"`
}

type OrderEdge struct {
	Node   *entity.Order `json:"node"`
	Cursor string        `json:"cursor"`
}
