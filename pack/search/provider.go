package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Provider produces web search results for a query.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Search returns ranked results for q.
	Search(ctx context.Context, q Query) ([]Result, error)
}

// Query is a normalized search request.
type Query struct {
	// Text is the raw query string.
	Text string

	// BaseURL targets a specific search site. Empty means Google.
	BaseURL string
}

// Result is one ranked search hit.
type Result struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Snippet   string  `json:"snippet"`
	Platform  string  `json:"platform"`
	Relevance float64 `json:"relevance"`
}

const googleSearchURL = "https://www.google.com/search"

// TemplateProvider builds result links from URL templates without calling
// any search backend.
type TemplateProvider struct{}

// NewTemplateProvider creates a TemplateProvider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// Name returns the provider name.
func (p *TemplateProvider) Name() string {
	return "template"
}

type platform struct {
	name, url, title, snippet string
}

// Search returns one result for the requested site, or Google.
func (p *TemplateProvider) Search(ctx context.Context, q Query) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var platforms []platform
	if q.BaseURL != "" {
		u, err := url.Parse(q.BaseURL)
		if err != nil {
			return nil, err
		}
		host := u.Hostname()
		platforms = append(platforms, platform{
			name:    host,
			url:     withQuery(q.BaseURL, q.Text),
			title:   fmt.Sprintf("%s - %s", q.Text, host),
			snippet: `Search results for "` + q.Text + `" on ` + host,
		})
	} else {
		platforms = append(platforms, platform{
			name:    "Google",
			url:     withQuery(googleSearchURL, q.Text),
			title:   q.Text + " - Google Search",
			snippet: `General web search results for "` + q.Text + `"`,
		})
	}

	results := make([]Result, len(platforms))
	for i, pl := range platforms {
		results[i] = Result{
			Title:     pl.title,
			URL:       pl.url,
			Snippet:   pl.snippet,
			Platform:  pl.name,
			Relevance: 1 - float64(i)*0.15,
		}
	}
	return results, nil
}

// withQuery appends q=<text> using "&" when base already has a query.
func withQuery(base, text string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "q=" + escapeComponent(text)
}

// escapeComponent percent-encodes everything except the unreserved marks
// that browsers leave intact in a URI component. Spaces become %20.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

var _ Provider = (*TemplateProvider)(nil)
