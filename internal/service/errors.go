package service

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")

	ErrNameRequired         = errors.New("name is required")
	ErrCustomerNameRequired = errors.New("customerName is required")
	ErrEmptyItems           = errors.New("order items empty")
	ErrPriceNegative        = errors.New("price must be >= 0")
	ErrStockNegative        = errors.New("stock must be >= 0")
	ErrInvalidQuantity      = errors.New("quantity must be > 0")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrImmutableOrderField  = errors.New("status, items and total cannot be edited directly")
	ErrCategoriesRequired   = errors.New("categories must be a non-empty array")
)

// InsufficientStockError carries the detail the storefront shows the
// shopper: which product ran short, what is left and what was asked.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

// AsInsufficientStock unwraps err into an InsufficientStockError if it is one.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	ok := errors.As(err, &ise)
	return ise, ok
}
