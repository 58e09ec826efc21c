package api

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// validateVoucher is the speculative pre-check the client runs while the
// customer types a code. It is read-only; order creation re-validates the
// code itself and never trusts this result.
func (h *Handler) validateVoucher(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, r, http.StatusBadRequest, "code query parameter is required")
		return
	}

	res, err := h.vouchers.Validate(r.Context(), code)
	if err != nil {
		internalError(w, r, errors.Wrap(err, "validate voucher"))
		return
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("valid", func(e *jx.Encoder) { e.Bool(res.Valid) })
			e.Field("discountPercent", func(e *jx.Encoder) { e.Int(res.DiscountPercent) })
		})
	})
}
