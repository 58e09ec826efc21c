package product

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product does not exist or is no
// longer active.
var ErrNotFound = errors.New("product not found")

// Product is a catalog item available for purchase. Price is stored in minor
// currency units (cents) to keep arithmetic exact.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Category    string
	Active      bool
}

// Repository defines read operations for the product catalog. Absent products
// are reported as ErrNotFound, which callers treat as a normal outcome.
type Repository interface {
	ListActive(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}
