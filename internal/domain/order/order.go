package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when no order exists for a given number.
var ErrNotFound = errors.New("order not found")

// StatusPending is the initial (and, within this service, only) order status.
// Fulfilment happens out of band; later transitions are not this service's
// concern.
const StatusPending = "pending"

// Order is a persisted purchase. The product name, original price, discount
// percent, and final price are snapshotted at creation time and never track
// later changes to the product or voucher.
type Order struct {
	Number          string
	Email           string
	ProductID       int64
	ProductName     string
	Quantity        int
	OriginalPrice   int64
	DiscountCode    string // empty unless the code resolved to an active voucher
	DiscountPercent int
	FinalPrice      int64
	Status          string
	CreatedAt       time.Time
}

// Receipt is what the caller gets back from a successful CreateOrder.
type Receipt struct {
	OrderNumber     string
	ProductName     string
	OriginalPrice   int64
	DiscountPercent int
	FinalPrice      int64
}

// Repository defines persistence operations for orders. Insert must commit a
// full order atomically; GetByNumber reports absence as ErrNotFound.
type Repository interface {
	Insert(ctx context.Context, o *Order) error
	GetByNumber(ctx context.Context, number string) (*Order, error)
}

// InvalidEmailDomainError rejects an address that fails syntax checks or is
// outside the provider allow-list. Shown verbatim to the end user.
type InvalidEmailDomainError struct {
	Email   string
	Allowed []string
}

func (e *InvalidEmailDomainError) Error() string {
	return fmt.Sprintf("email domain not accepted, use one of: %s", strings.Join(e.Allowed, ", "))
}

// ProductNotFoundError rejects an order for a product id that does not
// resolve to an active product.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}
