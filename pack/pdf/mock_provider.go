package pdf

import (
	"context"
	"strings"
	"sync"
)

// MockProvider is a mock PDF provider for testing.
type MockProvider struct {
	name string

	// ExtractFunc is called when Extract is invoked.
	ExtractFunc func(ctx context.Context, data []byte) (Document, error)

	mu    sync.Mutex
	calls int
}

// NewMockProvider creates a mock provider that treats the bytes after the
// "%PDF-" header line as text and counts form feeds as page breaks.
func NewMockProvider(name string) *MockProvider {
	p := &MockProvider{name: name}
	p.ExtractFunc = p.defaultExtract
	return p
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return p.name
}

// Extract records the call and delegates to ExtractFunc.
func (p *MockProvider) Extract(ctx context.Context, data []byte) (Document, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.ExtractFunc(ctx, data)
}

// Calls returns the number of Extract invocations.
func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockProvider) defaultExtract(_ context.Context, data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, ErrEmptyDocument
	}
	content := string(data)
	if !strings.HasPrefix(content, "%PDF-") {
		return Document{}, ErrParseFailed
	}
	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	} else {
		content = ""
	}
	return Document{
		Text:  content,
		Pages: strings.Count(content, "\f") + 1,
	}, nil
}

var _ Provider = (*MockProvider)(nil)
