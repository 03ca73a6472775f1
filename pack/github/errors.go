package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// ErrInvalidBaseURL is returned when the configured API root is unusable.
var ErrInvalidBaseURL = errors.New("invalid GitHub base URL")

// mapError classifies a failed API call. A response with a non-success
// status is an API error; anything else means the call did not complete.
// A 202 is reported as an API error too: the remote answered but has no
// content to return yet.
func mapError(noun string, resp *gh.Response, err error) error {
	var accepted *gh.AcceptedError
	if resp != nil && resp.Response != nil && (!isSuccess(resp.StatusCode) || errors.As(err, &accepted)) {
		return tool.NewAPIError(fmt.Sprintf("Failed to fetch %s: %d %s", noun, resp.StatusCode, reason(resp.Response)))
	}

	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}
	return tool.NewTransportError("GitHub API error: "+cause.Error(), err)
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// reason returns the status text the server sent, e.g. "Not Found".
func reason(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
