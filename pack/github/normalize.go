package github

import (
	"encoding/base64"
	"time"

	gh "github.com/google/go-github/v68/github"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// Author is the issue author projection.
type Author struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Issue is the get_issue payload.
type Issue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Body      *string  `json:"body"`
	State     string   `json:"state"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Author    Author   `json:"author"`
	Labels    []string `json:"labels"`
	URL       string   `json:"url"`
}

// CreatedIssue is the create_issue payload.
type CreatedIssue struct {
	IssueNumber int    `json:"issue_number"`
	IssueURL    string `json:"issue_url"`
}

// FileContent is the get_file_content payload.
type FileContent struct {
	Content     string  `json:"content"`
	Path        string  `json:"path"`
	Size        int     `json:"size"`
	SHA         string  `json:"sha"`
	DownloadURL *string `json:"download_url"`
}

// DirectoryEntry is one item of a directory listing.
type DirectoryEntry struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Type        string  `json:"type"`
	Size        int     `json:"size"`
	DownloadURL *string `json:"download_url"`
}

// Directory is the list_directory_contents payload.
type Directory struct {
	Path     string           `json:"path"`
	Contents []DirectoryEntry `json:"contents"`
}

func normalizeIssue(issue *gh.Issue) Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	user := issue.GetUser()
	return Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.Body,
		State:     issue.GetState(),
		CreatedAt: formatTime(issue.CreatedAt),
		UpdatedAt: formatTime(issue.UpdatedAt),
		Author: Author{
			Login:     user.GetLogin(),
			AvatarURL: user.GetAvatarURL(),
		},
		Labels: labels,
		URL:    issue.GetHTMLURL(),
	}
}

func normalizeCreatedIssue(issue *gh.Issue) CreatedIssue {
	return CreatedIssue{
		IssueNumber: issue.GetNumber(),
		IssueURL:    issue.GetHTMLURL(),
	}
}

// normalizeFile projects a single file. Listings and non-file objects are
// rejected.
func normalizeFile(requested string, file *gh.RepositoryContent) (FileContent, error) {
	if file == nil || file.GetType() != "file" {
		return FileContent{}, tool.NewValidationError("Path does not point to a file")
	}

	var encoded string
	if file.Content != nil {
		encoded = *file.Content
	}
	// StdEncoding skips the line breaks GitHub inserts every 60 characters.
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return FileContent{}, tool.NewValidationError("File content is not valid base64")
	}

	return FileContent{
		Content:     string(content),
		Path:        requested,
		Size:        file.GetSize(),
		SHA:         file.GetSHA(),
		DownloadURL: file.DownloadURL,
	}, nil
}

// normalizeDirectory projects a listing, preserving remote order.
func normalizeDirectory(requested string, file *gh.RepositoryContent, entries []*gh.RepositoryContent) (Directory, error) {
	if file != nil || entries == nil {
		return Directory{}, tool.NewValidationError("Path does not point to a directory")
	}

	contents := make([]DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		contents = append(contents, DirectoryEntry{
			Name:        e.GetName(),
			Path:        e.GetPath(),
			Type:        e.GetType(),
			Size:        e.GetSize(),
			DownloadURL: e.DownloadURL,
		})
	}

	path := requested
	if path == "" {
		path = "/"
	}
	return Directory{Path: path, Contents: contents}, nil
}

func formatTime(ts *gh.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
