package extraction

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/resilience"
)

var testResilience = resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond}

func TestHTTPExtractor_Extract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		if header.Filename != "auto.pdf" || string(content) != "%PDF-1.4" {
			t.Errorf("unexpected upload %s %q", header.Filename, content)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fields":{"numero_auto":"A123","placa":"ABC1D23"}}`))
	}))
	defer srv.Close()

	x := NewHTTPExtractor(srv.Client(), srv.URL+"/", testResilience, nil, nil)
	fields, err := x.Extract(context.Background(), entities.Document{FileName: "auto.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["numero_auto"] != "A123" || fields["placa"] != "ABC1D23" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestHTTPExtractor_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"fields":{"placa":"XYZ9K88"}}`))
	}))
	defer srv.Close()

	x := NewHTTPExtractor(srv.Client(), srv.URL, testResilience, nil, nil)
	fields, err := x.Extract(context.Background(), entities.Document{FileName: "a.jpg", Content: []byte{1}})
	if err != nil || fields["placa"] != "XYZ9K88" || atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected success on third call: %v %+v calls=%d", err, fields, calls)
	}
}

func TestHTTPExtractor_Errors(t *testing.T) {
	t.Run("client error is not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.Error(w, "unsupported file", http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		x := NewHTTPExtractor(srv.Client(), srv.URL, testResilience, nil, nil)
		_, err := x.Extract(context.Background(), entities.Document{FileName: "a.exe", Content: []byte{1}})
		if err == nil || apperr.IsRetryable(err) || atomic.LoadInt32(&calls) != 1 {
			t.Fatalf("expected one non-retryable failure, got %v calls=%d", err, calls)
		}
	})

	t.Run("server keeps failing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		x := NewHTTPExtractor(srv.Client(), srv.URL, testResilience, nil, nil)
		_, err := x.Extract(context.Background(), entities.Document{FileName: "a.pdf", Content: []byte{1}})
		var ext *apperr.ExternalServiceError
		if !errors.As(err, &ext) || ext.Service != "extraction" {
			t.Fatalf("expected ExternalServiceError, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		x := NewHTTPExtractor(nil, "", testResilience, nil, nil)
		if _, err := x.Extract(context.Background(), entities.Document{}); !errors.Is(err, ErrExtractionNotConfigured) {
			t.Fatalf("expected ErrExtractionNotConfigured, got %v", err)
		}
	})
}
