package github

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// Action selects the remote operation.
type Action string

// Supported actions, in the order they are reported to callers.
const (
	ActionGetIssue              Action = "get_issue"
	ActionCreateIssue           Action = "create_issue"
	ActionGetFileContent        Action = "get_file_content"
	ActionListDirectoryContents Action = "list_directory_contents"
)

var actionOrder = []Action{
	ActionGetIssue,
	ActionCreateIssue,
	ActionGetFileContent,
	ActionListDirectoryContents,
}

// request is the decoded input common to every action.
type request struct {
	Action      Action   `json:"action"`
	Owner       string   `json:"owner"`
	Repo        string   `json:"repo"`
	IssueNumber *float64 `json:"issue_number,omitempty"`
	Title       string   `json:"title,omitempty"`
	Body        string   `json:"body,omitempty"`
	FilePath    *string  `json:"file_path,omitempty"`
}

// operation is one validated action, ready to call the API.
type operation interface {
	// noun names the remote entity in API failure messages.
	noun() string
	// run performs the call and returns normalized data and a message.
	run(ctx context.Context, client *gh.Client) (any, string, error)
}

type parser func(request) (operation, error)

var parsers = map[Action]parser{
	ActionGetIssue:              parseGetIssue,
	ActionCreateIssue:           parseCreateIssue,
	ActionGetFileContent:        parseGetFileContent,
	ActionListDirectoryContents: parseListDirectory,
}

// parse validates input and routes it to the parser for its action. No
// network access happens here.
func parse(input json.RawMessage) (operation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(input, &fields); err != nil {
		return nil, tool.ValidationFailed(ToolName, "input must be a JSON object")
	}

	rawAction, ok := fields["action"]
	if !ok || string(rawAction) == "null" {
		return nil, tool.ValidationFailed(ToolName, "action: Required")
	}
	var action string
	if err := json.Unmarshal(rawAction, &action); err != nil {
		action = string(rawAction)
	}

	p, ok := parsers[Action(action)]
	if !ok {
		return nil, tool.ValidationFailed(ToolName, invalidActionDetail(action))
	}

	var req request
	if err := tool.DecodeInput(ToolName, inputSchema, input, &req); err != nil {
		return nil, err
	}
	return p(req)
}

func invalidActionDetail(received string) string {
	quoted := make([]string, len(actionOrder))
	for i, a := range actionOrder {
		quoted[i] = "'" + string(a) + "'"
	}
	return "action: Invalid enum value. Expected " + strings.Join(quoted, " | ") + ", received '" + received + "'"
}

func parseGetIssue(r request) (operation, error) {
	if r.IssueNumber == nil {
		return nil, tool.NewValidationError("Issue number is required")
	}
	// JSON Schema accepts 1.0 as an integer.
	n := *r.IssueNumber
	if n != math.Trunc(n) || n < 1 || n > math.MaxInt32 {
		return nil, tool.ValidationFailed(ToolName, "issue_number: Expected a positive integer")
	}
	return getIssue{owner: r.Owner, repo: r.Repo, number: int(n)}, nil
}

func parseCreateIssue(r request) (operation, error) {
	if r.Title == "" || r.Body == "" {
		return nil, tool.NewValidationError("Title and body are required")
	}
	return createIssue{owner: r.Owner, repo: r.Repo, title: r.Title, body: r.Body}, nil
}

func parseGetFileContent(r request) (operation, error) {
	if r.FilePath == nil || *r.FilePath == "" {
		return nil, tool.NewValidationError("File path is required")
	}
	if err := checkPath(*r.FilePath); err != nil {
		return nil, err
	}
	return getFileContent{owner: r.Owner, repo: r.Repo, path: *r.FilePath}, nil
}

func parseListDirectory(r request) (operation, error) {
	var path string
	if r.FilePath != nil {
		path = *r.FilePath
	}
	if err := checkPath(path); err != nil {
		return nil, err
	}
	return listDirectory{owner: r.Owner, repo: r.Repo, path: path}, nil
}

// checkPath rejects ".." segments. Names such as "notes..md" are allowed.
func checkPath(path string) error {
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return tool.NewValidationError("File path must not contain '..' segments")
		}
	}
	return nil
}

type getIssue struct {
	owner, repo string
	number      int
}

func (getIssue) noun() string { return "issue" }

func (op getIssue) run(ctx context.Context, client *gh.Client) (any, string, error) {
	issue, resp, err := client.Issues.Get(ctx, op.owner, op.repo, op.number)
	if err != nil {
		return nil, "", mapError(op.noun(), resp, err)
	}
	return normalizeIssue(issue), "Issue retrieved successfully", nil
}

type createIssue struct {
	owner, repo string
	title, body string
}

// create_issue failures keep the "issue" noun used by get_issue.
func (createIssue) noun() string { return "issue" }

func (op createIssue) run(ctx context.Context, client *gh.Client) (any, string, error) {
	issue, resp, err := client.Issues.Create(ctx, op.owner, op.repo, &gh.IssueRequest{
		Title: gh.Ptr(op.title),
		Body:  gh.Ptr(op.body),
	})
	if err != nil {
		return nil, "", mapError(op.noun(), resp, err)
	}
	return normalizeCreatedIssue(issue), "Issue created successfully", nil
}

type getFileContent struct {
	owner, repo string
	path        string
}

func (getFileContent) noun() string { return "file" }

func (op getFileContent) run(ctx context.Context, client *gh.Client) (any, string, error) {
	file, _, resp, err := getContents(ctx, client, op.owner, op.repo, op.path)
	if err != nil {
		return nil, "", mapError(op.noun(), resp, err)
	}
	data, err := normalizeFile(op.path, file)
	if err != nil {
		return nil, "", err
	}
	return data, "File content retrieved successfully", nil
}

type listDirectory struct {
	owner, repo string
	path        string
}

func (listDirectory) noun() string { return "directory" }

func (op listDirectory) run(ctx context.Context, client *gh.Client) (any, string, error) {
	file, dir, resp, err := getContents(ctx, client, op.owner, op.repo, op.path)
	if err != nil {
		return nil, "", mapError(op.noun(), resp, err)
	}
	data, err := normalizeDirectory(op.path, file, dir)
	if err != nil {
		return nil, "", err
	}
	return data, "Directory contents retrieved successfully", nil
}
