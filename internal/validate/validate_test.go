package validate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"international with plus", "+12025550101", true},
		{"leading one without plus", "12025550101", true},
		{"nine digits", "123456789", true},
		{"fifteen digits after one", "1123456789012345", true},
		{"plain digits", "0712345678", true},
		{"too short", "12345678", false},
		{"too long", "12345678901234567", false},
		{"letters", "+1202555abcd", false},
		{"dashes", "+1-202-555-0101", false},
		{"spaces", "+1 2025550101", false},
		{"plus only", "+", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Phone(&tt.phone)
			if tt.valid && v != nil {
				t.Errorf("Phone(%q) = %v, want nil", tt.phone, v)
			}
			if !tt.valid {
				if v == nil {
					t.Fatalf("Phone(%q) = nil, want violation", tt.phone)
				}
				if v.Reason != ReasonInvalidPhone {
					t.Errorf("Phone(%q).Reason = %q, want %q", tt.phone, v.Reason, ReasonInvalidPhone)
				}
				if v.Message != PhoneFormatHint {
					t.Errorf("Phone(%q).Message = %q, want %q", tt.phone, v.Message, PhoneFormatHint)
				}
			}
		})
	}

	t.Run("nil phone passes", func(t *testing.T) {
		if v := Phone(nil); v != nil {
			t.Errorf("Phone(nil) = %v, want nil", v)
		}
	})

	t.Run("empty phone passes", func(t *testing.T) {
		empty := ""
		if v := Phone(&empty); v != nil {
			t.Errorf("Phone(\"\") = %v, want nil", v)
		}
	})
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"positive", "19.99", true},
		{"small fraction", "0.01", true},
		{"zero", "0", false},
		{"zero with decimals", "0.00", false},
		{"negative", "-5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := decimal.NewFromString(tt.price)
			if err != nil {
				t.Fatalf("bad test price %q: %v", tt.price, err)
			}
			v := Price(price)
			if tt.valid && v != nil {
				t.Errorf("Price(%s) = %v, want nil", tt.price, v)
			}
			if !tt.valid && (v == nil || v.Reason != ReasonInvalidPrice) {
				t.Errorf("Price(%s) = %v, want invalid_price violation", tt.price, v)
			}
		})
	}
}

func TestStock(t *testing.T) {
	if v := Stock(0); v != nil {
		t.Errorf("Stock(0) = %v, want nil", v)
	}
	if v := Stock(100); v != nil {
		t.Errorf("Stock(100) = %v, want nil", v)
	}
	v := Stock(-1)
	if v == nil || v.Reason != ReasonInvalidStock {
		t.Errorf("Stock(-1) = %v, want invalid_stock violation", v)
	}
}
