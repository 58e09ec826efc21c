package voucher

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// Result is the outcome of validating a discount code. An unknown or inactive
// code yields the zero Result, never an error.
type Result struct {
	Valid           bool
	DiscountPercent int
}

// Validator checks discount codes against the voucher store. Validation is
// read-only and idempotent: it never consumes a voucher, so speculative
// pre-checks and the mandatory re-check at order time are interchangeable.
type Validator interface {
	Validate(ctx context.Context, code string) (Result, error)
}

// RepoValidator implements Validator on top of a Repository.
type RepoValidator struct {
	repo Repository
}

// NewRepoValidator creates a RepoValidator backed by the given Repository.
func NewRepoValidator(repo Repository) *RepoValidator {
	return &RepoValidator{repo: repo}
}

// Validate normalizes the code to upper case, looks it up, and returns the
// stored discount percent when the voucher exists and is active. A missing or
// inactive voucher is a valid "no discount" result; only infrastructure
// failures surface as errors.
func (v *RepoValidator) Validate(ctx context.Context, code string) (Result, error) {
	vc, err := v.repo.GetByCode(ctx, Normalize(code))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Result{}, nil
		}
		return Result{}, errors.Wrap(err, "lookup voucher")
	}
	if !vc.Active {
		return Result{}, nil
	}
	return Result{Valid: true, DiscountPercent: vc.DiscountPercent}, nil
}

// Normalize upper-cases a discount code for storage and comparison.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
