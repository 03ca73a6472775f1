package application

import (
	"net/http"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/observability"
	"github.com/felixgeelhaar/agent-toolkit/pack/pdf"
	"github.com/felixgeelhaar/agent-toolkit/pack/search"
)

// Option configures the toolkit.
type Option func(*options)

type options struct {
	httpClient     *http.Client
	pdfProvider    pdf.Provider
	searchProvider search.Provider
	telemetry      *observability.Provider
	logger         *bolt.Logger
	middleware     []middleware.Middleware
}

// WithHTTPClient sets the client used for GitHub and PDF requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithPDFProvider sets the PDF text extractor.
func WithPDFProvider(p pdf.Provider) Option {
	return func(o *options) {
		o.pdfProvider = p
	}
}

// WithSearchProvider sets the web search provider.
func WithSearchProvider(p search.Provider) Option {
	return func(o *options) {
		o.searchProvider = p
	}
}

// WithTelemetry sets the tracer and meter source for tool middleware.
func WithTelemetry(p *observability.Provider) Option {
	return func(o *options) {
		o.telemetry = p
	}
}

// WithLogger sets the logger used for invocation and startup logs.
func WithLogger(l *bolt.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMiddleware appends middleware after the built-in chain.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mws...)
	}
}
