package voucher

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by repositories when no voucher exists for a code.
var ErrNotFound = errors.New("voucher not found")

// Voucher is a discount code with a percentage off and an active flag.
// Codes are stored upper-cased and compared case-insensitively.
type Voucher struct {
	Code            string
	DiscountPercent int
	Active          bool
}

// Repository provides lookup of vouchers by their normalized code.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Voucher, error)
}
