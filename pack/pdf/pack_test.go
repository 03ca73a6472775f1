package pdf_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/pack/pdf"
)

const samplePDF = "%PDF-1.4\nJane Doe\nGo engineer\fReferences"

func servePDF(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTool(srv *httptest.Server, provider pdf.Provider, maxBytes int64) tool.Tool {
	cfg := pdf.PackConfig{Provider: provider, MaxBytes: maxBytes}
	if srv != nil {
		cfg.HTTPClient = srv.Client()
	}
	return pdf.NewTool(cfg)
}

func invoke(t *testing.T, tl tool.Tool, input string) (tool.Result, tool.Outcome) {
	t.Helper()

	result, err := tl.Execute(context.Background(), json.RawMessage(input))
	if err != nil {
		t.Fatalf("Execute() returned a Go error: %v", err)
	}
	outcome, err := result.Outcome()
	if err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}
	return result, outcome
}

func readInput(url string) string {
	raw, _ := json.Marshal(map[string]string{"action": "read_pdf", "url": url})
	return string(raw)
}

func TestNew(t *testing.T) {
	t.Parallel()

	p := pdf.New(pdf.DefaultPackConfig())

	if p.Name != "pdf" {
		t.Errorf("Name = %s, want pdf", p.Name)
	}
	tl, ok := p.GetTool(pdf.ToolName)
	if !ok {
		t.Fatal("pack should contain pdf-operations")
	}
	if !tl.Annotations().ReadOnly {
		t.Error("pdf-operations should be read-only")
	}
}

func TestReadPDF(t *testing.T) {
	t.Parallel()

	srv := servePDF(t, http.StatusOK, "application/pdf", samplePDF)
	provider := pdf.NewMockProvider("mock")

	result, outcome := invoke(t, newTool(srv, provider, 0), readInput(srv.URL+"/cv.pdf"))

	if !outcome.Success {
		t.Fatalf("Success = false, message %q", outcome.Message)
	}
	if outcome.Message != "PDF content extracted successfully" {
		t.Errorf("Message = %q", outcome.Message)
	}

	var data pdf.Extraction
	if err := result.DecodeData(&data); err != nil {
		t.Fatalf("DecodeData() error = %v", err)
	}
	if data.Text != "Jane Doe\nGo engineer\fReferences" {
		t.Errorf("Text = %q", data.Text)
	}
	if data.URL != srv.URL+"/cv.pdf" {
		t.Errorf("URL = %s", data.URL)
	}
	if data.Metadata.Pages != 2 {
		t.Errorf("Pages = %d, want 2", data.Metadata.Pages)
	}
	if data.Metadata.Size != int64(len(samplePDF)) {
		t.Errorf("Size = %d, want %d", data.Metadata.Size, len(samplePDF))
	}
}

func TestReadPDF_ContentTypeWithParameters(t *testing.T) {
	t.Parallel()

	srv := servePDF(t, http.StatusOK, "application/pdf; charset=binary", samplePDF)
	_, outcome := invoke(t, newTool(srv, pdf.NewMockProvider("mock"), 0), readInput(srv.URL))

	if !outcome.Success {
		t.Errorf("Success = false, message %q", outcome.Message)
	}
}

func TestReadPDF_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		maxBytes    int64
		message     string
		kind        tool.ErrorKind
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			contentType: "text/plain",
			message:     "PDF processing error: Failed to fetch PDF: 404 Not Found",
			kind:        tool.KindAPI,
		},
		{
			name:        "html page",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        "<html></html>",
			message:     "PDF processing error: URL does not point to a PDF file",
			kind:        tool.KindValidation,
		},
		{
			name:        "too large",
			status:      http.StatusOK,
			contentType: "application/pdf",
			body:        samplePDF,
			maxBytes:    8,
			message:     "PDF processing error: PDF exceeds maximum size of 8 bytes",
			kind:        tool.KindValidation,
		},
		{
			name:        "unparseable",
			status:      http.StatusOK,
			contentType: "application/pdf",
			body:        "plain text",
			message:     "PDF processing error: " + pdf.ErrParseFailed.Error(),
			kind:        tool.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := servePDF(t, tt.status, tt.contentType, tt.body)
			_, outcome := invoke(t, newTool(srv, pdf.NewMockProvider("mock"), tt.maxBytes), readInput(srv.URL))

			if outcome.Success {
				t.Fatal("Success = true, want false")
			}
			if outcome.Message != tt.message {
				t.Errorf("Message = %q, want %q", outcome.Message, tt.message)
			}
			if outcome.ErrorKind != tt.kind {
				t.Errorf("ErrorKind = %q, want %q", outcome.ErrorKind, tt.kind)
			}
		})
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestReadPDF_TransportError(t *testing.T) {
	t.Parallel()

	provider := pdf.NewMockProvider("mock")
	tl := pdf.NewTool(pdf.PackConfig{
		Provider:   provider,
		HTTPClient: &http.Client{Transport: failingTransport{}},
	})

	_, outcome := invoke(t, tl, readInput("https://cv.example.test/jane.pdf"))

	if outcome.Message != "PDF processing error: connection refused" {
		t.Errorf("Message = %q", outcome.Message)
	}
	if outcome.ErrorKind != tool.KindTransport {
		t.Errorf("ErrorKind = %q, want transport", outcome.ErrorKind)
	}
	if provider.Calls() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.Calls())
	}
}

func TestReadPDF_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"relative url", readInput("cv.pdf")},
		{"ftp url", readInput("ftp://files.example.test/cv.pdf")},
		{"unknown action", `{"action":"write_pdf","url":"https://example.test/a.pdf"}`},
		{"missing url", `{"action":"read_pdf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tl := pdf.NewTool(pdf.PackConfig{
				Provider:   pdf.NewMockProvider("mock"),
				HTTPClient: &http.Client{Transport: failingTransport{}},
			})
			_, outcome := invoke(t, tl, tt.input)

			if !strings.HasPrefix(outcome.Message, "Tool validation failed for pdf-operations: ") {
				t.Errorf("Message = %q", outcome.Message)
			}
			if outcome.ErrorKind != tool.KindValidation {
				t.Errorf("ErrorKind = %q, want validation", outcome.ErrorKind)
			}
		})
	}
}

func TestTextProvider_Errors(t *testing.T) {
	t.Parallel()

	p := pdf.NewTextProvider()

	if _, err := p.Extract(context.Background(), nil); !errors.Is(err, pdf.ErrEmptyDocument) {
		t.Errorf("Extract(nil) error = %v, want ErrEmptyDocument", err)
	}
	if _, err := p.Extract(context.Background(), []byte("definitely not a pdf")); !errors.Is(err, pdf.ErrParseFailed) {
		t.Errorf("Extract(garbage) error = %v, want ErrParseFailed", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Extract(ctx, []byte(samplePDF)); !errors.Is(err, context.Canceled) {
		t.Errorf("Extract(canceled) error = %v, want context.Canceled", err)
	}
}
