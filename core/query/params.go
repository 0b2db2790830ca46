package query

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Pagination bounds.
const (
	DefaultLimit = 100
	MinLimit     = 1
	MaxLimit     = 10000
)

// Params carries pagination and filtering for a list operation.
type Params struct {
	Limit  int `validate:"min=1,max=10000"`
	Offset int `validate:"min=0"`
	// Filter is an optional "field=value" expression.
	Filter string
}

// DefaultParams returns the first page with no filter.
func DefaultParams() Params {
	return Params{Limit: DefaultLimit}
}

var validate = validator.New()

// Validate checks the pagination bounds.
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidQueryParameter, err)
	}
	switch fe := verrs[0]; fe.Field() {
	case "Limit":
		return fmt.Errorf("%w: limit must be between %d and %d, got %d", ErrInvalidQueryParameter, MinLimit, MaxLimit, p.Limit)
	case "Offset":
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQueryParameter, p.Offset)
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidQueryParameter, fe.Field(), fe.Tag())
	}
}

// Page is one window of a filtered collection.
type Page[T any] struct {
	Items []T `json:"items"`
	// Total is the number of matches before pagination.
	Total int `json:"total"`
}

// paginate returns the [offset, offset+limit) window of items.
func paginate[T any](items []T, p Params) Page[T] {
	total := len(items)
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	if start == end {
		return Page[T]{Items: []T{}, Total: total}
	}
	return Page[T]{Items: items[start:end:end], Total: total}
}
