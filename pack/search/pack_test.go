package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/pack/search"
)

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

func TestNew(t *testing.T) {
	t.Parallel()

	p := search.New(search.Config{})

	if p.Name != "search" {
		t.Errorf("Name = %s, want search", p.Name)
	}
	tl, ok := p.GetTool(search.ToolName)
	if !ok {
		t.Fatal("pack should contain web-search")
	}
	if !tl.Annotations().ReadOnly {
		t.Error("web-search should be read-only")
	}
}

func TestWebSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      search.Config
		input    string
		url      string
		title    string
		snippet  string
		platform string
	}{
		{
			name:     "google",
			input:    `{"query":"jane doe golang"}`,
			url:      "https://www.google.com/search?q=jane%20doe%20golang",
			title:    "jane doe golang - Google Search",
			snippet:  `General web search results for "jane doe golang"`,
			platform: "Google",
		},
		{
			name:     "custom base url",
			input:    `{"query":"jane doe","base_url":"https://www.linkedin.com/search/results/all/"}`,
			url:      "https://www.linkedin.com/search/results/all/?q=jane%20doe",
			title:    "jane doe - www.linkedin.com",
			snippet:  `Search results for "jane doe" on www.linkedin.com`,
			platform: "www.linkedin.com",
		},
		{
			name:     "base url with query",
			input:    `{"query":"go&rust","base_url":"https://github.com/search?type=users"}`,
			url:      "https://github.com/search?type=users&q=go%26rust",
			title:    "go&rust - github.com",
			snippet:  `Search results for "go&rust" on github.com`,
			platform: "github.com",
		},
		{
			name:     "configured default",
			cfg:      search.Config{DefaultBaseURL: "https://search.example.test/find"},
			input:    `{"query":"it's (fine)!"}`,
			url:      "https://search.example.test/find?q=it's%20(fine)!",
			title:    "it's (fine)! - search.example.test",
			snippet:  `Search results for "it's (fine)!" on search.example.test`,
			platform: "search.example.test",
		},
		{
			name:     "quotes and tab kept verbatim",
			input:    `{"query":"say \"hi\"\tnow","base_url":"https://example.com/s"}`,
			url:      "https://example.com/s?q=say%20%22hi%22%09now",
			title:    "say \"hi\"\tnow - example.com",
			snippet:  "Search results for \"say \"hi\"\tnow\" on example.com",
			platform: "example.com",
		},
		{
			name:     "google with phrase",
			input:    `{"query":"\"Jane Doe\" resume"}`,
			url:      "https://www.google.com/search?q=%22Jane%20Doe%22%20resume",
			title:    "\"Jane Doe\" resume - Google Search",
			snippet:  "General web search results for \"\"Jane Doe\" resume\"",
			platform: "Google",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, outcome := invoke(t, search.NewTool(tt.cfg), tt.input)
			if !outcome.Success {
				t.Fatalf("Success = false, message %q", outcome.Message)
			}

			var data search.Results
			if err := result.DecodeData(&data); err != nil {
				t.Fatalf("DecodeData() error = %v", err)
			}
			if data.TotalMatches != 1 || len(data.Results) != 1 {
				t.Fatalf("TotalMatches = %d, results = %d, want 1", data.TotalMatches, len(data.Results))
			}

			got := data.Results[0]
			if got.URL != tt.url {
				t.Errorf("URL = %s, want %s", got.URL, tt.url)
			}
			if got.Title != tt.title {
				t.Errorf("Title = %q, want %q", got.Title, tt.title)
			}
			if got.Snippet != tt.snippet {
				t.Errorf("Snippet = %q, want %q", got.Snippet, tt.snippet)
			}
			if got.Platform != tt.platform {
				t.Errorf("Platform = %q, want %q", got.Platform, tt.platform)
			}
			if got.Relevance != 1 {
				t.Errorf("Relevance = %v, want 1", got.Relevance)
			}
		})
	}
}

func TestWebSearch_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"query":"jane"}`, `Found 1 web search results for "jane"`},
		{"quotes and tab", `{"query":"say \"hi\"\tnow"}`, "Found 1 web search results for \"say \"hi\"\tnow\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, outcome := invoke(t, search.NewTool(search.Config{}), tt.input)
			if outcome.Message != tt.want {
				t.Errorf("Message = %q, want %q", outcome.Message, tt.want)
			}
		})
	}
}

type rankedProvider struct{}

func (rankedProvider) Name() string { return "ranked" }

func (rankedProvider) Search(_ context.Context, q search.Query) ([]search.Result, error) {
	results := make([]search.Result, 3)
	for i := range results {
		results[i] = search.Result{
			Title:     q.Text,
			URL:       "https://example.test",
			Platform:  "example",
			Relevance: 1 - float64(i)*0.15,
		}
	}
	return results, nil
}

func TestWebSearch_CustomProvider(t *testing.T) {
	t.Parallel()

	result, outcome := invoke(t, search.NewTool(search.Config{Provider: rankedProvider{}}), `{"query":"go"}`)
	if !outcome.Success {
		t.Fatalf("Success = false, message %q", outcome.Message)
	}

	var data search.Results
	if err := result.DecodeData(&data); err != nil {
		t.Fatalf("DecodeData() error = %v", err)
	}
	if data.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3", data.TotalMatches)
	}
	if got := data.Results[2].Relevance; got < 0.69 || got > 0.71 {
		t.Errorf("third Relevance = %v, want 0.7", got)
	}
}

type brokenProvider struct{}

func (brokenProvider) Name() string { return "broken" }

func (brokenProvider) Search(context.Context, search.Query) ([]search.Result, error) {
	return nil, errors.New("backend unavailable")
}

func TestWebSearch_ProviderError(t *testing.T) {
	t.Parallel()

	_, outcome := invoke(t, search.NewTool(search.Config{Provider: brokenProvider{}}), `{"query":"go"}`)

	if outcome.Success {
		t.Fatal("Success = true, want false")
	}
	if outcome.Message != "Web search error: backend unavailable" {
		t.Errorf("Message = %q", outcome.Message)
	}
	if outcome.ErrorKind != tool.KindTransport {
		t.Errorf("ErrorKind = %q, want transport", outcome.ErrorKind)
	}
}

func TestWebSearch_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "bad base url",
			input:   `{"query":"go","base_url":"not a url"}`,
			message: "Tool validation failed for web-search: base_url: Invalid url",
		},
		{
			name:    "not an object",
			input:   `"go"`,
			message: "Tool validation failed for web-search: input must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, outcome := invoke(t, search.NewTool(search.Config{}), tt.input)
			if outcome.Success {
				t.Fatal("Success = true, want false")
			}
			if outcome.Message != tt.message {
				t.Errorf("Message = %q, want %q", outcome.Message, tt.message)
			}
			if outcome.ErrorKind != tool.KindValidation {
				t.Errorf("ErrorKind = %q, want validation", outcome.ErrorKind)
			}
		})
	}
}

func TestWebSearch_MissingQuery(t *testing.T) {
	t.Parallel()

	_, outcome := invoke(t, search.NewTool(search.Config{}), `{}`)

	if outcome.Success {
		t.Fatal("Success = true, want false")
	}
	if outcome.ErrorKind != tool.KindValidation {
		t.Errorf("ErrorKind = %q, want validation", outcome.ErrorKind)
	}
}

func TestTemplateProvider_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.NewTemplateProvider().Search(ctx, search.Query{Text: "go"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Search() error = %v, want context.Canceled", err)
	}
}
