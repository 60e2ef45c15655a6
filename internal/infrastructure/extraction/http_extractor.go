// Package extraction is the client of the OCR field-extraction service.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/infrastructure/resilience"
	"recursos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const serviceName = "extraction"

var ErrExtractionNotConfigured = errors.New("extraction service URL not configured")

// HTTPExtractor posts a document as multipart/form-data to {baseURL}/extract
// and reads back {"fields": {...}}.
type HTTPExtractor struct {
	httpClient *http.Client
	baseURL    string
	guard      *resilience.Guard
	logger     *zap.Logger
	metrics    *observability.Metrics
}

var _ interfaces.IDocumentExtractor = (*HTTPExtractor)(nil)

func NewHTTPExtractor(httpClient *http.Client, baseURL string, cfg resilience.Config, logger *zap.Logger, metrics *observability.Metrics) *HTTPExtractor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPExtractor{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		guard:      resilience.NewGuard(serviceName, cfg),
		logger:     observability.OrNop(logger).Named("extraction.client"),
		metrics:    metrics,
	}
}

type extractResponse struct {
	Fields map[string]any `json:"fields"`
}

func (e *HTTPExtractor) Extract(ctx context.Context, doc entities.Document) (map[string]any, error) {
	if e.baseURL == "" {
		return nil, ErrExtractionNotConfigured
	}
	body, contentType, err := multipartBody(doc)
	if err != nil {
		return nil, err
	}

	var out extractResponse
	err = e.guard.Do(ctx, true, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")

		resp, err := e.httpClient.Do(req)
		if err != nil {
			return e.external(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return e.external(fmt.Errorf("extraction service returned status %d", resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("extraction rejected %s: status %d: %s", doc.FileName, resp.StatusCode, strings.TrimSpace(string(msg)))
		}

		out = extractResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return e.external(fmt.Errorf("decode response: %w", err))
		}
		return nil
	})
	if err != nil {
		e.logger.Warn("extraction failed", zap.String("file_name", doc.FileName), zap.Error(err))
		return nil, err
	}

	e.logger.Debug("extraction done", zap.String("file_name", doc.FileName), zap.Int("fields", len(out.Fields)))
	if out.Fields == nil {
		out.Fields = map[string]any{}
	}
	return out.Fields, nil
}

func (e *HTTPExtractor) external(err error) error {
	e.metrics.IncExternalError(serviceName)
	return &apperr.ExternalServiceError{Service: serviceName, Err: err}
}

func multipartBody(doc entities.Document) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, doc.FileName))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc.Content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
