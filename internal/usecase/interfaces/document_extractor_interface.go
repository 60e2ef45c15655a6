package interfaces

import (
	"context"
	"recursos_api/internal/domain/entities"
)

//go:generate mockgen -source=document_extractor_interface.go -destination=mocks/document_extractor_mock.go -package=mock_interfaces

// IDocumentExtractor is the OCR field-extraction service. Its output only
// populates wizard data; failures never block the lifecycle.
type IDocumentExtractor interface {
	Extract(ctx context.Context, doc entities.Document) (map[string]any, error)
}
