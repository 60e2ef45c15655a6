package request

import (
	"encoding/json"
	"errors"
	"testing"

	"recursos_api/internal/domain/entities"
)

func TestStatementQuery_ToFilter(t *testing.T) {
	f, err := StatementQuery{Type: "Debit", From: "2026-03-01T00:00:00-03:00", After: 4, Limit: 10}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Type != entities.TransactionTypeDebit || f.AfterSequence != 4 || f.Limit != 10 {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.From.Hour() != 3 || !f.To.IsZero() {
		t.Fatalf("expected UTC from and open to, got %v %v", f.From, f.To)
	}

	if _, err := (StatementQuery{Type: "refund"}).ToFilter(); !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
	}
	if _, err := (StatementQuery{To: "yesterday"}).ToFilter(); !errors.Is(err, ErrInvalidTimeBound) {
		t.Fatalf("expected ErrInvalidTimeBound, got %v", err)
	}
}

func TestParseOwnerType(t *testing.T) {
	if o, err := ParseOwnerType(" Company "); err != nil || o != entities.OwnerTypeCompany {
		t.Fatalf("got %q %v", o, err)
	}
	if _, err := ParseOwnerType("partner"); !errors.Is(err, ErrInvalidOwnerType) {
		t.Fatalf("expected ErrInvalidOwnerType, got %v", err)
	}
}

func TestRequestPaymentRequest_Resolve(t *testing.T) {
	cases := []struct {
		name      string
		req       RequestPaymentRequest
		method    entities.PaymentMethod
		ownerType entities.OwnerType
		err       error
	}{
		{"default is pix", RequestPaymentRequest{}, entities.PaymentMethodPix, "", nil},
		{"credits default to company", RequestPaymentRequest{Method: "credits"}, entities.PaymentMethodCredits, entities.OwnerTypeCompany, nil},
		{"credits for client", RequestPaymentRequest{Method: "credits", OwnerType: "client"}, entities.PaymentMethodCredits, entities.OwnerTypeClient, nil},
		{"credits for company", RequestPaymentRequest{Method: "credits", OwnerType: "company"}, entities.PaymentMethodCredits, entities.OwnerTypeCompany, nil},
		{"unknown method", RequestPaymentRequest{Method: "boleto"}, "", "", ErrInvalidPaymentMethod},
		{"unknown owner", RequestPaymentRequest{Method: "credits", OwnerType: "x"}, "", "", ErrInvalidOwnerType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, o, err := tc.req.Resolve()
			if !errors.Is(err, tc.err) || m != tc.method || o != tc.ownerType {
				t.Fatalf("got %q %q %v", m, o, err)
			}
		})
	}
}

func TestListRecursosQuery_ToFilter(t *testing.T) {
	f, err := ListRecursosQuery{OwnerID: " u1 ", Status: "em_analise"}.ToFilter()
	if err != nil || f.OwnerID != "u1" || f.Status != entities.DraftStatusEmAnalise {
		t.Fatalf("got %+v %v", f, err)
	}
	if _, err := (ListRecursosQuery{Status: "paid"}).ToFilter(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParseStep(t *testing.T) {
	if s, err := ParseStep("2"); err != nil || s != 2 {
		t.Fatalf("got %d %v", s, err)
	}
	for _, bad := range []string{"0", "4", "x", ""} {
		if _, err := ParseStep(bad); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("%q: expected ErrInvalidStep, got %v", bad, err)
		}
	}
}

func TestPaymentNotificationRequest(t *testing.T) {
	var mp PaymentNotificationRequest
	if err := json.Unmarshal([]byte(`{"type":"payment","action":"payment.updated","data":{"id":"123"}}`), &mp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !mp.IsPayment() || mp.ResolvePaymentRef("", "") != "123" {
		t.Fatalf("unexpected: %+v", mp)
	}

	var numeric PaymentNotificationRequest
	if err := json.Unmarshal([]byte(`{"data":{"id":456}}`), &numeric); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if numeric.ResolvePaymentRef("", "") != "456" {
		t.Fatalf("numeric id not resolved: %+v", numeric)
	}

	plain := PaymentNotificationRequest{PaymentRef: " 789 "}
	if plain.ResolvePaymentRef("1", "2") != "789" {
		t.Fatalf("payment_ref must win")
	}
	if (PaymentNotificationRequest{}).ResolvePaymentRef("", "99") != "99" {
		t.Fatalf("legacy ?id= not used")
	}
	if (PaymentNotificationRequest{Type: "merchant_order"}).IsPayment() {
		t.Fatalf("merchant_order is not a payment")
	}
}
