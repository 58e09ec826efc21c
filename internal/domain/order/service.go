package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/averko/premium-store/internal/domain/email"
	"github.com/averko/premium-store/internal/domain/product"
	"github.com/averko/premium-store/internal/domain/voucher"
)

// CreateOrderRequest holds the untrusted input for creating an order.
type CreateOrderRequest struct {
	Email        string
	ProductID    int64
	DiscountCode string
}

// Service is the order orchestrator: it composes the email policy, catalog,
// voucher validator, pricing, number generation, and persistence into one
// create operation. All dependencies are injected so tests can substitute
// in-memory fakes.
type Service struct {
	products product.Repository
	vouchers voucher.Validator
	orders   Repository
	policy   *email.Policy
	numbers  NumberGenerator
	now      func() time.Time
}

// NewService creates an order Service with the required dependencies.
func NewService(
	products product.Repository,
	vouchers voucher.Validator,
	orders Repository,
	policy *email.Policy,
	numbers NumberGenerator,
) *Service {
	return &Service{
		products: products,
		vouchers: vouchers,
		orders:   orders,
		policy:   policy,
		numbers:  numbers,
		now:      time.Now,
	}
}

// CreateOrder runs the full pipeline: email policy, product resolution,
// voucher re-validation, pricing, number generation, and a single atomic
// insert. Either every step completes and a full order row exists, or
// nothing is persisted.
//
// Email and product failures are typed, user-correctable rejections. A
// discount code that does not resolve to an active voucher is advisory: the
// order proceeds at full price with no code recorded. The supplied code is
// untrusted input, so it is re-validated here regardless of any earlier
// speculative check by the client.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Receipt, error) {
	if !s.policy.Accepts(req.Email) {
		return nil, &InvalidEmailDomainError{Email: req.Email, Allowed: s.policy.Domains()}
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, &ProductNotFoundError{ProductID: req.ProductID}
		}
		return nil, errors.Wrapf(err, "get product %d", req.ProductID)
	}

	discountPercent := 0
	discountCode := ""
	if req.DiscountCode != "" {
		res, err := s.vouchers.Validate(ctx, req.DiscountCode)
		if err != nil {
			// An unreachable voucher store fails the order; silently charging
			// full price would be worse than rejecting.
			return nil, errors.Wrap(err, "validate voucher")
		}
		if res.Valid {
			discountPercent = res.DiscountPercent
			discountCode = voucher.Normalize(req.DiscountCode)
		}
	}

	o := &Order{
		Number:          s.numbers.Generate(),
		Email:           req.Email,
		ProductID:       p.ID,
		ProductName:     p.Name,
		Quantity:        1,
		OriginalPrice:   p.Price,
		DiscountCode:    discountCode,
		DiscountPercent: discountPercent,
		FinalPrice:      FinalPrice(p.Price, discountPercent),
		Status:          StatusPending,
		CreatedAt:       s.now(),
	}
	if err := s.orders.Insert(ctx, o); err != nil {
		return nil, errors.Wrapf(err, "insert order %s", o.Number)
	}

	return &Receipt{
		OrderNumber:     o.Number,
		ProductName:     o.ProductName,
		OriginalPrice:   o.OriginalPrice,
		DiscountPercent: o.DiscountPercent,
		FinalPrice:      o.FinalPrice,
	}, nil
}

// GetOrderByNumber returns a persisted order, read-only. Absence surfaces as
// ErrNotFound from the repository.
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	o, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %s", number)
	}
	return o, nil
}
