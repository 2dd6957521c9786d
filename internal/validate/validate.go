// Package validate holds the input rules the mutations check before touching
// the store. Validators return a *Violation rather than an error: invalid
// input is an expected outcome reported to the client, not a failure.
package validate

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Reason identifies which rule a value violated.
type Reason string

const (
	ReasonInvalidPhone Reason = "invalid_phone"
	ReasonInvalidPrice Reason = "invalid_price"
	ReasonInvalidStock Reason = "invalid_stock"
)

// Violation describes a failed validation rule. Message is the human-readable
// detail that ends up in the mutation payload.
type Violation struct {
	Reason  Reason
	Message string
}

// phonePattern accepts an optional +, an optional leading 1, then 9 to 15
// digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// PhoneFormatHint is the detail reported for a malformed phone number.
const PhoneFormatHint = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."

// Phone checks an optional phone number. A nil or empty phone passes.
func Phone(phone *string) *Violation {
	if phone == nil || *phone == "" {
		return nil
	}
	if !phonePattern.MatchString(*phone) {
		return &Violation{Reason: ReasonInvalidPhone, Message: PhoneFormatHint}
	}
	return nil
}

// Price requires a strictly positive price.
func Price(price decimal.Decimal) *Violation {
	if price.Sign() <= 0 {
		return &Violation{Reason: ReasonInvalidPrice, Message: "Price must be a positive number."}
	}
	return nil
}

// Stock requires a non-negative stock level.
func Stock(stock int) *Violation {
	if stock < 0 {
		return &Violation{Reason: ReasonInvalidStock, Message: "Stock cannot be negative."}
	}
	return nil
}
