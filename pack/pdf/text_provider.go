package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// TextProvider extracts plain text with github.com/ledongthuc/pdf.
type TextProvider struct{}

// NewTextProvider creates a TextProvider.
func NewTextProvider() *TextProvider {
	return &TextProvider{}
}

// Name returns the provider name.
func (p *TextProvider) Name() string {
	return "ledongthuc"
}

// Extract parses data and returns its plain text. The parser panics on
// some malformed inputs; those panics are reported as ErrParseFailed.
func (p *TextProvider) Extract(ctx context.Context, data []byte) (doc Document, err error) {
	if len(data) == 0 {
		return Document{}, ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, fmt.Errorf("%w: %v", ErrParseFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	return Document{Text: string(text), Pages: reader.NumPage()}, nil
}

var _ Provider = (*TextProvider)(nil)
