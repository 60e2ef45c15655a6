package request

import (
	"encoding/json"
	"strings"
)

// PaymentNotificationRequest accepts the Mercado Pago webhook body
// ({"type":"payment","data":{"id":"123"}}) and the plain {"payment_ref":"123"}
// form used by internal callers.
//
// The body only says which payment changed; its status is always read back
// from the gateway.
type PaymentNotificationRequest struct {
	Type       string `json:"type"`
	Action     string `json:"action"`
	PaymentRef string `json:"payment_ref"`
	Data       struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// IsPayment reports whether the notification is about a payment. Empty types
// are treated as payments.
func (r PaymentNotificationRequest) IsPayment() bool {
	t := strings.ToLower(strings.TrimSpace(r.Type))
	return t == "" || t == "payment"
}

// ResolvePaymentRef picks the payment id from the body, falling back to the
// query string (?data.id= or the legacy IPN ?id=).
func (r PaymentNotificationRequest) ResolvePaymentRef(queryDataID, queryID string) string {
	for _, v := range []string{r.PaymentRef, r.Data.ID.String(), queryDataID, queryID} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
