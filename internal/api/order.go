package api

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/averko/premium-store/internal/domain/order"
)

const maxOrderBody = 4 << 10

type createOrderRequest struct {
	Email        string
	ProductID    int64
	DiscountCode string
}

func decodeCreateOrder(w http.ResponseWriter, r *http.Request) (createOrderRequest, error) {
	var req createOrderRequest
	d := jx.Decode(http.MaxBytesReader(w, r.Body, maxOrderBody), 512)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "email":
			v, err := d.Str()
			req.Email = v
			return err
		case "productId":
			v, err := d.Int64()
			req.ProductID = v
			return err
		case "discountCode":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			req.DiscountCode = v
			return err
		default:
			return d.Skip()
		}
	})
	return req, err
}

// createOrder runs the order pipeline and maps domain errors onto the HTTP
// surface: bad email and unknown product are user-correctable rejections,
// anything else is a generic 500.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateOrder(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.ProductID == 0 {
		writeError(w, r, http.StatusBadRequest, "email and productId are required")
		return
	}

	receipt, err := h.orders.CreateOrder(r.Context(), order.CreateOrderRequest{
		Email:        req.Email,
		ProductID:    req.ProductID,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		var domErr *order.InvalidEmailDomainError
		if errors.As(err, &domErr) {
			writeError(w, r, http.StatusBadRequest, domErr.Error())
			return
		}
		var pnfErr *order.ProductNotFoundError
		if errors.As(err, &pnfErr) {
			writeError(w, r, http.StatusUnprocessableEntity, pnfErr.Error())
			return
		}
		internalError(w, r, errors.Wrap(err, "create order"))
		return
	}

	writeJSON(w, r, http.StatusCreated, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("orderNumber", func(e *jx.Encoder) { e.Str(receipt.OrderNumber) })
			e.Field("productName", func(e *jx.Encoder) { e.Str(receipt.ProductName) })
			e.Field("originalPrice", func(e *jx.Encoder) { e.Int64(receipt.OriginalPrice) })
			e.Field("discountPercent", func(e *jx.Encoder) { e.Int(receipt.DiscountPercent) })
			e.Field("finalPrice", func(e *jx.Encoder) { e.Int64(receipt.FinalPrice) })
		})
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	o, err := h.orders.GetOrderByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "order not found")
			return
		}
		internalError(w, r, errors.Wrapf(err, "get order %s", number))
		return
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		encodeOrder(e, o)
	})
}

func encodeOrder(e *jx.Encoder, o *order.Order) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("orderNumber", func(e *jx.Encoder) { e.Str(o.Number) })
		e.Field("email", func(e *jx.Encoder) { e.Str(o.Email) })
		e.Field("productId", func(e *jx.Encoder) { e.Int64(o.ProductID) })
		e.Field("productName", func(e *jx.Encoder) { e.Str(o.ProductName) })
		e.Field("quantity", func(e *jx.Encoder) { e.Int(o.Quantity) })
		e.Field("originalPrice", func(e *jx.Encoder) { e.Int64(o.OriginalPrice) })
		e.Field("discountCode", func(e *jx.Encoder) {
			if o.DiscountCode == "" {
				e.Null()
				return
			}
			e.Str(o.DiscountCode)
		})
		e.Field("discountPercent", func(e *jx.Encoder) { e.Int(o.DiscountPercent) })
		e.Field("finalPrice", func(e *jx.Encoder) { e.Int64(o.FinalPrice) })
		e.Field("status", func(e *jx.Encoder) { e.Str(o.Status) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(o.CreatedAt.UTC().Format(time.RFC3339)) })
	})
}
