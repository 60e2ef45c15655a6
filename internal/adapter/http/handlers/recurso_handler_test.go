package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recursos_api/internal/adapter/http/handlers/mocks"
	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newRecursoRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderDraftUseCase, *mocks.MockIRecursoLifecycleUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	drafts := mocks.NewMockIServiceOrderDraftUseCase(ctrl)
	lifecycle := mocks.NewMockIRecursoLifecycleUseCase(ctrl)
	h := NewRecursoHandler(drafts, lifecycle, nil)

	r := gin.New()
	recursos := r.Group("/v1/recursos")
	recursos.POST("", h.CreateRecurso)
	recursos.GET("", h.ListRecursos)
	recursos.POST("/expire", h.ExpireOverdue)
	recursos.GET("/:id", h.GetRecurso)
	recursos.DELETE("/:id", h.DeleteRecurso)
	recursos.PUT("/:id/steps/:step", h.SaveStep)
	recursos.POST("/:id/payment", h.RequestPayment)
	recursos.POST("/:id/payment/sync", h.SyncPayment)
	recursos.GET("/:id/resume", h.ResumeRecurso)
	recursos.PATCH("/:id/intake", h.SaveIntake)
	recursos.POST("/:id/documents", h.AttachDocument)
	recursos.POST("/:id/analysis", h.StartAnalysis)
	recursos.POST("/:id/complete", h.CompleteRecurso)
	recursos.POST("/:id/cancel", h.CancelRecurso)
	return r, drafts, lifecycle
}

func draft(status entities.DraftStatus) entities.ServiceOrderDraft {
	return entities.ServiceOrderDraft{
		ID:          "d1",
		OwnerID:     "u1",
		Status:      status,
		CurrentStep: 1,
		WizardData:  entities.WizardData{},
		Price:       decimal.RequireFromString("49.90"),
		Version:     1,
	}
}

func TestRecursoHandler_CreateAndGet(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, drafts, _ := newRecursoRouter(t)
		drafts.EXPECT().Create(gomock.Any(), "u1").Return(draft(entities.DraftStatusRascunho), nil)

		w := doJSON(r, http.MethodPost, "/v1/recursos", `{"owner_id":"u1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["status"] != "rascunho" || body["price"] != "49.90" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create requires owner", func(t *testing.T) {
		r, _, _ := newRecursoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/recursos", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, drafts, _ := newRecursoRouter(t)
		drafts.EXPECT().Get(gomock.Any(), "nope").Return(entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: "nope"})

		w := doJSON(r, http.MethodGet, "/v1/recursos/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "DRAFT_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRecursoHandler_ListRecursos(t *testing.T) {
	r, drafts, _ := newRecursoRouter(t)
	drafts.EXPECT().List(gomock.Any(), entities.DraftFilter{OwnerID: "u1", Status: entities.DraftStatusRascunho}).
		Return([]entities.ServiceOrderDraft{draft(entities.DraftStatusRascunho)}, nil)

	w := doJSON(r, http.MethodGet, "/v1/recursos?owner_id=u1&status=rascunho", "")
	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("[")) {
		t.Fatalf("expected 200 with a list, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/recursos?status=paid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestRecursoHandler_SaveStep(t *testing.T) {
	t.Run("merges step", func(t *testing.T) {
		r, drafts, _ := newRecursoRouter(t)
		drafts.EXPECT().Save(gomock.Any(), "d1", 2, map[string]any{"placa": "ABC1D23"}, int64(3)).Return(draft(entities.DraftStatusRascunho), nil)

		w := doJSON(r, http.MethodPut, "/v1/recursos/d1/steps/2", `{"data":{"placa":"ABC1D23"},"expected_version":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("stale version", func(t *testing.T) {
		r, drafts, _ := newRecursoRouter(t)
		drafts.EXPECT().Save(gomock.Any(), "d1", 1, gomock.Any(), int64(1)).
			Return(entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: "d1", ExpectedVersion: 1})

		w := doJSON(r, http.MethodPut, "/v1/recursos/d1/steps/1", `{"data":{"client_id":"c1"},"expected_version":1}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "VERSION_CONFLICT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		r, _, _ := newRecursoRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/recursos/d1/steps/7", `{"data":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRecursoHandler_DeleteRecurso(t *testing.T) {
	r, drafts, _ := newRecursoRouter(t)
	drafts.EXPECT().Delete(gomock.Any(), "d1").Return(nil)
	drafts.EXPECT().Delete(gomock.Any(), "d2").Return(&apperr.InvalidStateError{DraftID: "d2", Status: "em_analise", Operation: "delete"})

	if w := doJSON(r, http.MethodDelete, "/v1/recursos/d1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/recursos/d2", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestRecursoHandler_RequestPayment(t *testing.T) {
	t.Run("pix by default", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		d := draft(entities.DraftStatusAguardandoPagamento)
		d.PaymentRef = "123"
		d.QRPayload = "000201"
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", entities.PaymentMethodPix, entities.OwnerType("")).Return(d, nil)

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["qr_payload"] != "000201" || body["resume"].(map[string]any)["view"] != string(entities.ResumeViewPayment) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("credits for company", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", entities.PaymentMethodCredits, entities.OwnerTypeCompany).
			Return(draft(entities.DraftStatusEmPreenchimento), nil)

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", `{"method":"credits","owner_type":"company"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("credits for client", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", entities.PaymentMethodCredits, entities.OwnerTypeClient).
			Return(draft(entities.DraftStatusEmPreenchimento), nil)

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", `{"method":"credits","owner_type":"client"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("client credits without client_id", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", entities.PaymentMethodCredits, entities.OwnerTypeClient).
			Return(entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "client_id", Message: "required to pay with client credits"})

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", `{"method":"credits","owner_type":"client"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if details := decodeBody(t, w)["details"].(map[string]any); details["field"] != "client_id" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("missing wizard fields", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", entities.PaymentMethodPix, gomock.Any()).
			Return(entities.ServiceOrderDraft{}, &apperr.MissingFieldsError{DraftID: "d1", Step: 2, Fields: []string{"placa"}})

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", `{"method":"pix"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details := decodeBody(t, w)["details"].(map[string]any)
		if fields := details["fields"].([]any); len(fields) != 1 || fields[0] != "placa" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().RequestPayment(gomock.Any(), "d1", gomock.Any(), gomock.Any()).
			Return(entities.ServiceOrderDraft{}, &apperr.InvalidTransitionError{DraftID: "d1", From: "em_analise", To: "aguardando_pagamento"})

		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		r, _, _ := newRecursoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment", `{"method":"boleto"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRecursoHandler_SyncAndResume(t *testing.T) {
	r, _, lifecycle := newRecursoRouter(t)
	lifecycle.EXPECT().SyncPayment(gomock.Any(), "d1").Return(draft(entities.DraftStatusEmPreenchimento), nil)
	lifecycle.EXPECT().ResumeTarget(gomock.Any(), "d1").Return(entities.ResumeTarget{
		DraftID: "d1",
		Status:  entities.DraftStatusEmPreenchimento,
		View:    entities.ResumeViewIntake,
	}, nil)

	if w := doJSON(r, http.MethodPost, "/v1/recursos/d1/payment/sync", ""); w.Code != http.StatusOK {
		t.Fatalf("sync: expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/recursos/d1/resume", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["view"] != string(entities.ResumeViewIntake) {
		t.Fatalf("resume: unexpected %d %s", w.Code, w.Body.String())
	}
}

func TestRecursoHandler_SaveIntake(t *testing.T) {
	r, _, lifecycle := newRecursoRouter(t)
	lifecycle.EXPECT().SaveIntake(gomock.Any(), "d1", map[string]any{"cnh": "123"}, int64(0)).Return(draft(entities.DraftStatusEmPreenchimento), nil)

	w := doJSON(r, http.MethodPatch, "/v1/recursos/d1/intake", `{"data":{"cnh":"123"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func multipartUpload(t *testing.T, path, step string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if step != "" {
		_ = mw.WriteField("step", step)
	}
	if content != nil {
		part, err := mw.CreateFormFile("file", "auto.pdf")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = part.Write(content)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRecursoHandler_AttachDocument(t *testing.T) {
	t.Run("advisory is still 200", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().AttachDocument(gomock.Any(), "d1", 2, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int, doc entities.Document) (entities.ServiceOrderDraft, *entities.ExtractionAdvisory, error) {
				if doc.FileName != "auto.pdf" || string(doc.Content) != "%PDF" {
					t.Fatalf("unexpected document: %+v", doc)
				}
				return draft(entities.DraftStatusRascunho), &entities.ExtractionAdvisory{Message: "timeout", Retryable: true}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "/v1/recursos/d1/documents", "2", []byte("%PDF")))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		advisory := decodeBody(t, w)["advisory"].(map[string]any)
		if advisory["retryable"] != true {
			t.Fatalf("unexpected advisory: %+v", advisory)
		}
	})

	t.Run("intake upload without step", func(t *testing.T) {
		r, _, lifecycle := newRecursoRouter(t)
		lifecycle.EXPECT().AttachDocument(gomock.Any(), "d1", 0, gomock.Any()).Return(draft(entities.DraftStatusEmPreenchimento), nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "/v1/recursos/d1/documents", "", []byte("img")))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if _, ok := decodeBody(t, w)["advisory"]; ok {
			t.Fatalf("advisory must be omitted")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r, _, _ := newRecursoRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "/v1/recursos/d1/documents", "1", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRecursoHandler_AnalysisCompleteCancel(t *testing.T) {
	r, _, lifecycle := newRecursoRouter(t)
	lifecycle.EXPECT().StartAnalysis(gomock.Any(), "d1").Return(draft(entities.DraftStatusEmAnalise), nil)
	lifecycle.EXPECT().Complete(gomock.Any(), "d1", map[string]any{"outcome": "deferido"}).Return(draft(entities.DraftStatusConcluido), nil)
	lifecycle.EXPECT().Cancel(gomock.Any(), "d1", "desisti").Return(draft(entities.DraftStatusCancelado), nil)
	lifecycle.EXPECT().Cancel(gomock.Any(), "d2", "").Return(entities.ServiceOrderDraft{}, &apperr.InvalidTransitionError{DraftID: "d2", From: "concluido", To: "cancelado"})

	if w := doJSON(r, http.MethodPost, "/v1/recursos/d1/analysis", ""); w.Code != http.StatusOK {
		t.Fatalf("analysis: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/recursos/d1/complete", `{"result":{"outcome":"deferido"}}`); w.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/recursos/d1/complete", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("complete without result: expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/recursos/d1/cancel", `{"reason":"desisti"}`); w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/recursos/d2/cancel", ""); w.Code != http.StatusConflict {
		t.Fatalf("cancel terminal: expected 409, got %d", w.Code)
	}
}

func TestRecursoHandler_ExpireOverdue(t *testing.T) {
	r, _, lifecycle := newRecursoRouter(t)
	lifecycle.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) ([]entities.ServiceOrderDraft, error) {
			if now.IsZero() {
				t.Fatalf("now must be set")
			}
			return []entities.ServiceOrderDraft{draft(entities.DraftStatusExpirado)}, nil
		})

	w := doJSON(r, http.MethodPost, "/v1/recursos/expire", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["count"] != float64(1) {
		t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
	}
}
