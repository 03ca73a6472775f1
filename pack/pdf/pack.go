package pdf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	"github.com/felixgeelhaar/agent-toolkit/domain/pack"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// ToolName is the stable identifier of the PDF tool.
const ToolName = "pdf-operations"

const errorPrefix = "PDF processing error: "

// PackConfig configures the PDF pack.
type PackConfig struct {
	// Provider extracts text. Defaults to TextProvider.
	Provider Provider

	// HTTPClient downloads documents. Defaults to a client with Timeout.
	HTTPClient *http.Client

	// Timeout bounds each download when HTTPClient is nil.
	Timeout time.Duration

	// MaxBytes caps the downloaded document size.
	MaxBytes int64

	// UserAgent is sent with each download.
	UserAgent string
}

// DefaultPackConfig returns default pack configuration.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		Timeout:   config.DefaultHTTPTimeout,
		MaxBytes:  config.DefaultPDFMaxBytes,
		UserAgent: config.DefaultPDFUserAgent,
	}
}

// ConfigFrom maps the resolved toolkit configuration onto PackConfig.
func ConfigFrom(c config.PDFConfig) PackConfig {
	return PackConfig{
		Timeout:   c.Timeout.Duration(),
		MaxBytes:  c.MaxBytes,
		UserAgent: c.UserAgent,
	}
}

// New creates a new PDF pack with the given configuration.
func New(cfg PackConfig) *pack.Pack {
	return pack.NewBuilder("pdf").
		WithDescription("Read and extract text content from PDF files").
		WithVersion("1.0.0").
		AddTool(NewTool(cfg)).
		Build()
}

// NewTool creates the pdf-operations tool.
func NewTool(cfg PackConfig) tool.Tool {
	defaults := DefaultPackConfig()
	if cfg.Provider == nil {
		cfg.Provider = NewTextProvider()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaults.MaxBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	r := &reader{cfg: cfg}

	return tool.NewBuilder(ToolName).
		WithDescription("Read and extract text content from PDF files via URL").
		WithInputSchema(inputSchema).
		WithOutputSchema(outputSchema).
		ReadOnly().
		Idempotent().
		OpenWorld().
		WithTags("pdf", "document").
		WithHandler(r.handle).
		MustBuild()
}

var inputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"action": {Type: "string", Enum: []any{"read_pdf"}},
		"url":    {Type: "string", Description: "URL of the PDF file to read"},
	},
	Required: []string{"action", "url"},
})

var outputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"success": {Type: "boolean"},
		"data": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {Type: "string"},
				"url":  {Type: "string"},
				"metadata": {
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"pages": {Type: "integer"},
						"size":  {Type: "integer"},
					},
				},
			},
			Required: []string{"text", "url"},
		},
		"message":    {Type: "string"},
		"error_kind": {Type: "string"},
	},
	Required: []string{"success"},
})

// Extraction is the read_pdf payload.
type Extraction struct {
	Text     string   `json:"text"`
	URL      string   `json:"url"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes the downloaded document.
type Metadata struct {
	Pages int   `json:"pages"`
	Size  int64 `json:"size"`
}

type readInput struct {
	Action string `json:"action"`
	URL    string `json:"url"`
}

type reader struct {
	cfg PackConfig
}

func (r *reader) handle(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	start := time.Now()
	outcome := r.read(ctx, input)
	result := tool.Respond(ToolName, outputSchema, outcome)
	result.Duration = time.Since(start)
	return result, nil
}

func (r *reader) read(ctx context.Context, input json.RawMessage) tool.Outcome {
	var in readInput
	if err := tool.DecodeInput(ToolName, inputSchema, input, &in); err != nil {
		return tool.Fail(err)
	}
	if !isWebURL(in.URL) {
		return tool.Fail(tool.ValidationFailed(ToolName, "url: Invalid url"))
	}

	data, err := r.fetch(ctx, in.URL)
	if err != nil {
		return tool.Fail(err)
	}

	doc, err := r.cfg.Provider.Extract(ctx, data)
	if err != nil {
		return tool.Fail(tool.NewValidationError(errorPrefix + err.Error()))
	}

	return tool.Succeed(Extraction{
		Text: doc.Text,
		URL:  in.URL,
		Metadata: Metadata{
			Pages: doc.Pages,
			Size:  int64(len(data)),
		},
	}, "PDF content extracted successfully")
}

// fetch downloads the document, enforcing status, content type and size.
func (r *reader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, tool.NewValidationError(errorPrefix + err.Error())
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := r.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, tool.NewAPIError(fmt.Sprintf("%sFailed to fetch PDF: %d %s", errorPrefix, resp.StatusCode, reason(resp)))
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/pdf") {
		return nil, tool.NewValidationError(errorPrefix + "URL does not point to a PDF file")
	}

	tooLarge := tool.NewValidationError(fmt.Sprintf("%sPDF exceeds maximum size of %d bytes", errorPrefix, r.cfg.MaxBytes))
	if resp.ContentLength > r.cfg.MaxBytes {
		return nil, tooLarge
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, r.cfg.MaxBytes+1))
	if err != nil {
		return nil, transportError(err)
	}
	if int64(len(data)) > r.cfg.MaxBytes {
		return nil, tooLarge
	}
	return data, nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func transportError(err error) *tool.Error {
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}
	return tool.NewTransportError(errorPrefix+cause.Error(), err)
}

func reason(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
