package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Key prefixes. Every record is independently addressable; there is no
// foreign-key enforcement and no multi-key transaction.
const (
	PrefixProduct       = "product:"
	PrefixOrder         = "order:"
	PrefixCustomer      = "customer:"
	PrefixStockMovement = "stock_movement:"
	KeyCategories       = "categories"
	KeySettings         = "settings"
)

// Store is the key-value persistence contract: string keys, opaque JSON
// values, prefix scan. Single-key writes are atomic; nothing larger is.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
