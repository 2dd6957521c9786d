package graph

import (
	"errors"
	"fmt"

	"crmd/internal/store"
)

// Mutation payload messages double as the API's error contract, so they are
// built here in one place and must not drift.

func duplicateEmailMessage(email string) string {
	return fmt.Sprintf("Error: Customer with email %s already exists.", email)
}

func customerNotFoundMessage(id string) string {
	return fmt.Sprintf("Error: Customer ID %s not found.", id)
}

// bulkCustomerError renders one skipped bulk record, prefixed with its
// zero-based position in the submitted batch.
func bulkCustomerError(index int, email string, err error) string {
	switch {
	case errors.Is(err, store.ErrNameRequired):
		return fmt.Sprintf("Record %d: Name is required.", index)
	case errors.Is(err, store.ErrDuplicateEmail):
		return fmt.Sprintf("Record %d: Customer with email %s already exists.", index, email)
	default:
		return fmt.Sprintf("Record %d: %s", index, err)
	}
}
