// Package pdf provides the pdf-operations tool, which downloads a PDF and
// extracts its text.
package pdf

import (
	"context"
	"errors"
)

// Common errors for PDF operations.
var (
	ErrEmptyDocument = errors.New("empty pdf document")
	ErrParseFailed   = errors.New("pdf parse failed")
)

// Provider extracts text from PDF bytes.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Extract returns the text and page count of a PDF document.
	Extract(ctx context.Context, data []byte) (Document, error)
}

// Document is the text extracted from a PDF.
type Document struct {
	// Text is the plain text of every page, in page order.
	Text string

	// Pages is the page count.
	Pages int
}
