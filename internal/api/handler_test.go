package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averko/premium-store/internal/domain/email"
	"github.com/averko/premium-store/internal/domain/order"
	"github.com/averko/premium-store/internal/domain/payment"
	"github.com/averko/premium-store/internal/domain/product"
	"github.com/averko/premium-store/internal/domain/voucher"
)

// --- In-memory fakes ---

type fakeProducts struct {
	byID map[int64]product.Product
}

func (f *fakeProducts) ListActive(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(f.byID))
	for _, p := range f.byID {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := f.byID[id]
	if !ok || !p.Active {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

type fakeVouchers struct {
	byCode map[string]voucher.Voucher
}

func (f *fakeVouchers) GetByCode(_ context.Context, code string) (*voucher.Voucher, error) {
	v, ok := f.byCode[code]
	if !ok {
		return nil, voucher.ErrNotFound
	}
	return &v, nil
}

type fakeOrders struct {
	byNumber map[string]order.Order
}

func (f *fakeOrders) Insert(_ context.Context, o *order.Order) error {
	f.byNumber[o.Number] = *o
	return nil
}

func (f *fakeOrders) GetByNumber(_ context.Context, number string) (*order.Order, error) {
	o, ok := f.byNumber[number]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &o, nil
}

// --- Harness ---

func newTestServer(t *testing.T) (*httptest.Server, *fakeOrders) {
	t.Helper()

	products := &fakeProducts{byID: map[int64]product.Product{
		1: {ID: 1, Name: "Gemini Advanced", Description: "AI bundle", Price: 2999, Category: "AI Tools", Active: true},
		2: {ID: 2, Name: "Canva Pro Edu", Description: "Edu plan", Price: 1599, Category: "Design Tools", Active: true},
		3: {ID: 3, Name: "Retired", Price: 100, Active: false},
	}}
	vouchers := &fakeVouchers{byCode: map[string]voucher.Voucher{
		"FRIDAY50": {Code: "FRIDAY50", DiscountPercent: 50, Active: true},
	}}
	orders := &fakeOrders{byNumber: make(map[string]order.Order)}

	validator := voucher.NewRepoValidator(vouchers)
	svc := order.NewService(products, validator, orders, email.NewPolicy(nil), order.NewNumberGenerator())

	wallets := []payment.Wallet{{
		Network: "Solana",
		Tokens:  []string{"SOL", "USDC"},
		Address: "So11111111111111111111111111111111111111112",
		QRCode:  "/qr/solana.jpg",
	}}

	mux := http.NewServeMux()
	NewHandler(products, validator, svc, wallets).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, orders
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

// --- Tests ---

func TestListProducts(t *testing.T) {
	srv, _ := newTestServer(t)

	var products []map[string]any
	status := getJSON(t, srv.URL+"/api/products", &products)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, products, 2, "inactive products are hidden")
}

func TestGetProduct(t *testing.T) {
	srv, _ := newTestServer(t)

	var p map[string]any
	status := getJSON(t, srv.URL+"/api/products/1", &p)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Gemini Advanced", p["name"])
	assert.Equal(t, float64(2999), p["price"])
}

func TestGetProduct_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]any
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/products/99", &body))

	// Inactive products resolve as not found too.
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/products/3", &body))
}

func TestValidateVoucher(t *testing.T) {
	srv, _ := newTestServer(t)

	var res struct {
		Valid           bool `json:"valid"`
		DiscountPercent int  `json:"discountPercent"`
	}
	status := getJSON(t, srv.URL+"/api/vouchers/validate?code=friday50", &res)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, res.Valid)
	assert.Equal(t, 50, res.DiscountPercent)

	status = getJSON(t, srv.URL+"/api/vouchers/validate?code=NOPE", &res)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, res.Valid)
	assert.Equal(t, 0, res.DiscountPercent)
}

func TestCreateOrder(t *testing.T) {
	srv, orders := newTestServer(t)

	var receipt struct {
		OrderNumber     string `json:"orderNumber"`
		ProductName     string `json:"productName"`
		OriginalPrice   int64  `json:"originalPrice"`
		DiscountPercent int    `json:"discountPercent"`
		FinalPrice      int64  `json:"finalPrice"`
	}
	status := postJSON(t, srv.URL+"/api/orders",
		`{"email":"user@gmail.com","productId":1,"discountCode":"FRIDAY50"}`, &receipt)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Gemini Advanced", receipt.ProductName)
	assert.Equal(t, int64(2999), receipt.OriginalPrice)
	assert.Equal(t, 50, receipt.DiscountPercent)
	assert.Equal(t, int64(1500), receipt.FinalPrice)

	stored, ok := orders.byNumber[receipt.OrderNumber]
	require.True(t, ok)
	assert.Equal(t, "FRIDAY50", stored.DiscountCode)
	assert.Equal(t, order.StatusPending, stored.Status)
}

func TestCreateOrder_NullDiscountCode(t *testing.T) {
	srv, _ := newTestServer(t)

	var receipt map[string]any
	status := postJSON(t, srv.URL+"/api/orders",
		`{"email":"user@gmail.com","productId":2,"discountCode":null}`, &receipt)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(1599), receipt["finalPrice"])
}

func TestCreateOrder_BadEmailDomain(t *testing.T) {
	srv, orders := newTestServer(t)

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	status := postJSON(t, srv.URL+"/api/orders",
		`{"email":"user@badmail.com","productId":1}`, &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Message, "gmail.com", "message lists accepted providers")
	assert.Empty(t, orders.byNumber)
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	srv, orders := newTestServer(t)

	var body map[string]any
	status := postJSON(t, srv.URL+"/api/orders",
		`{"email":"user@gmail.com","productId":99}`, &body)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Empty(t, orders.byNumber)
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]any
	status := postJSON(t, srv.URL+"/api/orders", `{"email":`, &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = postJSON(t, srv.URL+"/api/orders", `{}`, &body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetOrder_RoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	var receipt struct {
		OrderNumber string `json:"orderNumber"`
	}
	postJSON(t, srv.URL+"/api/orders",
		`{"email":"user@gmail.com","productId":1,"discountCode":"EXPIRED1"}`, &receipt)

	var o struct {
		OrderNumber     string  `json:"orderNumber"`
		Email           string  `json:"email"`
		Quantity        int     `json:"quantity"`
		DiscountCode    *string `json:"discountCode"`
		DiscountPercent int     `json:"discountPercent"`
		FinalPrice      int64   `json:"finalPrice"`
		Status          string  `json:"status"`
	}
	status := getJSON(t, srv.URL+"/api/orders/"+receipt.OrderNumber, &o)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user@gmail.com", o.Email)
	assert.Equal(t, 1, o.Quantity)
	assert.Nil(t, o.DiscountCode, "unresolved code is not recorded")
	assert.Equal(t, 0, o.DiscountPercent)
	assert.Equal(t, int64(2999), o.FinalPrice)
	assert.Equal(t, "pending", o.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]any
	status := getJSON(t, srv.URL+"/api/orders/ORD-0-NOPE", &body)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPaymentMethods(t *testing.T) {
	srv, _ := newTestServer(t)

	var wallets []struct {
		Network string   `json:"network"`
		Tokens  []string `json:"tokens"`
		Address string   `json:"address"`
	}
	status := getJSON(t, srv.URL+"/api/payment-methods", &wallets)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Solana", wallets[0].Network)
	assert.Equal(t, []string{"SOL", "USDC"}, wallets[0].Tokens)
}
