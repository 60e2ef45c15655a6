package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recursos_api/internal/adapter/http/handlers/mocks"
	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCreditLedgerRouter(t *testing.T) (*gin.Engine, *mocks.MockICreditLedgerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICreditLedgerUseCase(ctrl)
	h := NewCreditLedgerHandler(uc, decimal.RequireFromString("50.00"), nil)

	r := gin.New()
	credits := r.Group("/v1/credits/:owner_type/:owner_id")
	credits.GET("", h.GetBalance)
	credits.GET("/transactions", h.GetStatement)
	credits.POST("/purchases", h.Purchase)
	credits.POST("/consumptions", h.Consume)
	credits.POST("/refunds", h.Refund)
	credits.POST("/top-ups", h.RequestTopUp)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func account(balance string) entities.CreditAccount {
	b := decimal.RequireFromString(balance)
	return entities.CreditAccount{
		OwnerType:      entities.OwnerTypeCompany,
		OwnerID:        "C1",
		Balance:        b,
		TotalPurchased: b,
		TotalUsed:      decimal.Zero,
		Version:        1,
	}
}

func TestCreditLedgerHandler_GetBalance(t *testing.T) {
	t.Run("success flags low balance", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().GetBalance(gomock.Any(), entities.OwnerTypeCompany, "C1").Return(account("20"), nil)

		w := doJSON(r, http.MethodGet, "/v1/credits/company/C1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["balance"] != "20.00" || body["low_balance"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid owner type", func(t *testing.T) {
		r, _ := newCreditLedgerRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/credits/partner/C1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreditLedgerHandler_GetStatement(t *testing.T) {
	t.Run("passes filter and cursor", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().GetStatement(gomock.Any(), entities.OwnerTypeClient, "U1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.OwnerType, _ string, f entities.StatementFilter) (entities.StatementPage, error) {
				if f.Type != entities.TransactionTypeDebit || f.AfterSequence != 3 || f.Limit != 2 {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return entities.StatementPage{
					Items:      []entities.CreditTransaction{{ID: "tx4", Sequence: 4, Type: entities.TransactionTypeDebit, Amount: decimal.NewFromInt(10)}},
					NextCursor: 4,
				}, nil
			})

		w := doJSON(r, http.MethodGet, "/v1/credits/client/U1/transactions?type=debit&after=3&limit=2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["next_cursor"] != float64(4) || len(body["items"].([]any)) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		r, _ := newCreditLedgerRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/credits/client/U1/transactions?type=bonus", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreditLedgerHandler_Purchase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().Purchase(gomock.Any(), entities.OwnerTypeCompany, "C1", decimal.RequireFromString("100.00"), "pay-1").Return(account("100"), nil)

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/purchases", `{"amount":"100.00","payment_ref":"pay-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["low_balance"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate payment", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().Purchase(gomock.Any(), entities.OwnerTypeCompany, "C1", gomock.Any(), "pay-1").
			Return(entities.CreditAccount{}, &apperr.DuplicatePaymentError{Reference: "pay-1"})

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/purchases", `{"amount":100,"payment_ref":"pay-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "DUPLICATE_PAYMENT" || body["details"].(map[string]any)["reference"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing payment_ref", func(t *testing.T) {
		r, _ := newCreditLedgerRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/purchases", `{"amount":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreditLedgerHandler_Consume(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		tx := entities.CreditTransaction{ID: "tx2", Sequence: 2, Type: entities.TransactionTypeDebit, Amount: decimal.NewFromInt(30), BalanceAfter: decimal.NewFromInt(70)}
		uc.EXPECT().Consume(gomock.Any(), entities.OwnerTypeCompany, "C1", decimal.NewFromInt(30), "recurso d1").Return(account("70"), tx, nil)

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/consumptions", `{"amount":30,"reason":"recurso d1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["transaction"].(map[string]any)["balance_after"] != "70.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().Consume(gomock.Any(), entities.OwnerTypeCompany, "C1", gomock.Any(), "recurso d1").
			Return(entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.InsufficientBalanceError{
				OwnerType: "company",
				OwnerID:   "C1",
				Available: decimal.NewFromInt(10),
				Requested: decimal.NewFromInt(30),
			})

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/consumptions", `{"amount":30,"reason":"recurso d1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details := decodeBody(t, w)["details"].(map[string]any)
		if details["available"] != "10.00" || details["requested"] != "30.00" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().Consume(gomock.Any(), entities.OwnerTypeCompany, "C1", gomock.Any(), "x").
			Return(entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.InvalidAmountError{Amount: decimal.NewFromInt(-1), Reason: "must be positive"})

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/consumptions", `{"amount":-1,"reason":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreditLedgerHandler_Refund(t *testing.T) {
	r, uc := newCreditLedgerRouter(t)
	uc.EXPECT().Refund(gomock.Any(), entities.OwnerTypeCompany, "C1", decimal.NewFromInt(30), "recurso d1 cancelled", "tx2").Return(account("100"), nil)

	w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/refunds", `{"amount":30,"reason":"recurso d1 cancelled","reference":"tx2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreditLedgerHandler_RequestTopUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().RequestTopUp(gomock.Any(), entities.OwnerTypeCompany, "C1", decimal.NewFromInt(200)).Return(entities.Charge{
			PaymentRef:        "123",
			Status:            entities.PaymentStatusPendente,
			Amount:            decimal.NewFromInt(200),
			ExternalReference: "credits:company:C1",
			QRPayload:         "000201",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/top-ups", `{"amount":200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["payment_ref"] != "123" || body["amount"] != "200.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().RequestTopUp(gomock.Any(), entities.OwnerTypeCompany, "C1", gomock.Any()).Return(entities.Charge{}, usecase.ErrPaymentGatewayNotConfigured)

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/top-ups", `{"amount":200}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		r, uc := newCreditLedgerRouter(t)
		uc.EXPECT().RequestTopUp(gomock.Any(), entities.OwnerTypeCompany, "C1", gomock.Any()).
			Return(entities.Charge{}, &apperr.ExternalServiceError{Service: "mercadopago"})

		w := doJSON(r, http.MethodPost, "/v1/credits/company/C1/top-ups", `{"amount":200}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
