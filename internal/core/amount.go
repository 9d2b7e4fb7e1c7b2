package core

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as the backend represents it: a bare JSON
// number, never a quoted string. Decoding accepts both forms.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d as a wire amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// ErrInvalidAmount is returned for amounts that are empty, malformed, signed
// or not strictly positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts user input to a positive amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Signs are rejected; only strictly positive amounts are valid.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Amount{}, ErrInvalidAmount
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return Amount{}, ErrInvalidAmount
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(d), nil
}
