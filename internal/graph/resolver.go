package graph

import "crmd/internal/store"

//go:generate go tool gqlgen generate

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to the store for data access.
type Resolver struct {
	Store *store.Store
}
