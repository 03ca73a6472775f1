package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
)

// tokenType makes oauth2 emit "Authorization: token <credential>".
const tokenType = "token"

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		raw = config.DefaultGitHubBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// client builds a go-github client for one invocation.
func (o *operations) client(ctx context.Context) *gh.Client {
	base := o.cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: o.cfg.Timeout}
	}

	httpClient := base
	if o.cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.cfg.Token, TokenType: tokenType})
		httpClient = oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), src)
		httpClient.Timeout = base.Timeout
	}

	c := gh.NewClient(httpClient)
	baseURL := *o.baseURL
	c.BaseURL = &baseURL
	c.UserAgent = o.cfg.UserAgent
	return c
}

// getContents fetches a file or a directory listing. It mirrors
// RepositoriesService.GetContents, which rejects any path containing "..".
// A body that is neither an object nor an array yields neither value.
func getContents(ctx context.Context, client *gh.Client, owner, repo, path string) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
	escaped := (&url.URL{Path: strings.TrimSuffix(path, "/")}).String()
	req, err := client.NewRequest(http.MethodGet, fmt.Sprintf("repos/%v/%v/contents/%s", owner, repo, escaped), nil)
	if err != nil {
		return nil, nil, nil, err
	}

	var raw json.RawMessage
	resp, err := client.Do(ctx, req, &raw)
	if err != nil {
		return nil, nil, resp, err
	}

	var file *gh.RepositoryContent
	if err := json.Unmarshal(raw, &file); err == nil {
		return file, nil, resp, nil
	}
	var dir []*gh.RepositoryContent
	if err := json.Unmarshal(raw, &dir); err == nil {
		return nil, dir, resp, nil
	}
	return nil, nil, resp, nil
}
