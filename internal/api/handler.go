// Package api exposes the storefront over HTTP. Handlers are thin glue:
// decode, delegate to the domain, encode. JSON is produced with go-faster/jx
// to avoid reflection on the hot paths.
package api

import (
	"net/http"

	"github.com/averko/premium-store/internal/domain/order"
	"github.com/averko/premium-store/internal/domain/payment"
	"github.com/averko/premium-store/internal/domain/product"
	"github.com/averko/premium-store/internal/domain/voucher"
)

// Handler serves the storefront API.
type Handler struct {
	products product.Repository
	vouchers voucher.Validator
	orders   *order.Service
	wallets  []payment.Wallet
}

// NewHandler constructs a Handler with the required domain dependencies.
// The wallet list is display-only payment instruction data.
func NewHandler(
	products product.Repository,
	vouchers voucher.Validator,
	orders *order.Service,
	wallets []payment.Wallet,
) *Handler {
	return &Handler{
		products: products,
		vouchers: vouchers,
		orders:   orders,
		wallets:  wallets,
	}
}

// Register mounts all API routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.HandleFunc("GET /api/vouchers/validate", h.validateVoucher)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/orders/{number}", h.getOrder)
	mux.HandleFunc("GET /api/payment-methods", h.paymentMethods)
}
