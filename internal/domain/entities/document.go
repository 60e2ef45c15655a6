package entities

// Document is a file uploaded during the wizard or the intake phase and sent to
// the OCR extraction service.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExtractionAdvisory reports a non-blocking extraction failure back to the caller.
type ExtractionAdvisory struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}
