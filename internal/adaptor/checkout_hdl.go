package adaptor

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// checkoutPage is a minimal stand-in for a real payment provider's hosted
// checkout. It lets a tester settle or fail the payment, which fires the
// same webhook a real provider would.
var checkoutPage = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Checkout</title>
  <style>
    body { font-family: sans-serif; max-width: 28rem; margin: 4rem auto; }
    button { padding: 0.6rem 1.4rem; margin-right: 0.6rem; font-size: 1rem; cursor: pointer; }
    #result { margin-top: 1rem; }
  </style>
</head>
<body>
  <h1>Checkout</h1>
  <p>Booking: <code>{{.BookingID}}</code></p>
  <p>Reference: <code>{{.PaymentReference}}</code></p>
  <button onclick="send('PAID')">Pay</button>
  <button onclick="send('FAILED')">Fail</button>
  <p id="result"></p>
  <script>
    function send(event) {
      fetch('/api/payments/webhook', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({paymentReference: '{{.PaymentReference}}', event: event})
      }).then(function (res) {
        document.getElementById('result').textContent =
          res.ok ? 'Payment ' + event : 'Webhook rejected (' + res.status + ')';
      });
    }
  </script>
</body>
</html>
`))

type CheckoutHandler struct {
	log *zap.Logger
}

func NewCheckoutHandler(log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		log: log.With(zap.String("handler", "checkout")),
	}
}

// ShowCheckout handles GET /checkout/{paymentReference}?bookingId=
func (h *CheckoutHandler) ShowCheckout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		PaymentReference string
		BookingID        string
	}{
		PaymentReference: chi.URLParam(r, "paymentReference"),
		BookingID:        r.URL.Query().Get("bookingId"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := checkoutPage.Execute(w, data); err != nil {
		h.log.Error("Render checkout page failed", zap.Error(err))
	}
}
