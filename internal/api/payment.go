package api

import (
	"net/http"

	"github.com/go-faster/jx"
)

// paymentMethods returns the configured wallet list shown on the payment
// instructions page. Display-only: the service never verifies transactions.
func (h *Handler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, wlt := range h.wallets {
			e.Obj(func(e *jx.Encoder) {
				e.Field("network", func(e *jx.Encoder) { e.Str(wlt.Network) })
				e.Field("tokens", func(e *jx.Encoder) {
					e.ArrStart()
					for _, t := range wlt.Tokens {
						e.Str(t)
					}
					e.ArrEnd()
				})
				e.Field("address", func(e *jx.Encoder) { e.Str(wlt.Address) })
				e.Field("qrCode", func(e *jx.Encoder) { e.Str(wlt.QRCode) })
			})
		}
		e.ArrEnd()
	})
}
