package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// Minimal GitHub API response shapes. Only the fields the governance
// workflow reads; field names match the REST API documentation.

type ghUser struct {
	Login string `json:"login"`
}

type ghIssue struct {
	Number    int       `json:"number"`
	User      ghUser    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type ghComment struct {
	ID        int64     `json:"id"`
	User      ghUser    `json:"user"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ghLabel struct {
	Name string `json:"name"`
}

type ghReaction struct {
	User    ghUser `json:"user"`
	Content string `json:"content"`
}

func (c *Client) repoPath(format string, args ...any) string {
	return fmt.Sprintf("/repos/%s/%s", c.owner, c.repo) + fmt.Sprintf(format, args...)
}

// GetIssue fetches one issue or PR's metadata.
func (c *Client) GetIssue(ctx context.Context, number int) (entities.Issue, error) {
	body, err := c.doRetry(ctx, http.MethodGet, c.repoPath("/issues/%d", number), nil, nil)
	if err != nil {
		return entities.Issue{}, err
	}
	var issue ghIssue
	if err := json.Unmarshal(body, &issue); err != nil {
		return entities.Issue{}, fmt.Errorf("github: parse issue: %w", err)
	}
	return entities.Issue{
		Number:    issue.Number,
		Author:    issue.User.Login,
		CreatedAt: issue.CreatedAt,
	}, nil
}

// ListOpenPullRequests lists the repository's open PRs.
func (c *Client) ListOpenPullRequests(ctx context.Context) ([]entities.Issue, error) {
	query := url.Values{"state": {"open"}}
	body, err := c.doRetry(ctx, http.MethodGet, c.repoPath("/pulls"), nil, query)
	if err != nil {
		return nil, err
	}
	var pulls []ghIssue
	if err := json.Unmarshal(body, &pulls); err != nil {
		return nil, fmt.Errorf("github: parse pulls: %w", err)
	}
	out := make([]entities.Issue, 0, len(pulls))
	for _, pr := range pulls {
		out = append(out, entities.Issue{
			Number:    pr.Number,
			Author:    pr.User.Login,
			CreatedAt: pr.CreatedAt,
		})
	}
	return out, nil
}

// ListComments lists all comments on an issue thread.
func (c *Client) ListComments(ctx context.Context, number int) ([]entities.Comment, error) {
	body, err := c.doRetry(ctx, http.MethodGet, c.repoPath("/issues/%d/comments", number), nil, nil)
	if err != nil {
		return nil, err
	}
	var comments []ghComment
	if err := json.Unmarshal(body, &comments); err != nil {
		return nil, fmt.Errorf("github: parse comments: %w", err)
	}
	out := make([]entities.Comment, 0, len(comments))
	for _, cm := range comments {
		out = append(out, entities.Comment{
			ID:        cm.ID,
			Author:    cm.User.Login,
			Body:      cm.Body,
			HTMLURL:   cm.HTMLURL,
			CreatedAt: cm.CreatedAt,
		})
	}
	return out, nil
}

// CreateComment posts a comment on an issue thread.
func (c *Client) CreateComment(ctx context.Context, number int, body string) error {
	payload := map[string]string{"body": body}
	_, err := c.doRetry(ctx, http.MethodPost, c.repoPath("/issues/%d/comments", number), payload, nil)
	return err
}

// ListLabels lists the label names on an issue.
func (c *Client) ListLabels(ctx context.Context, number int) ([]string, error) {
	body, err := c.doRetry(ctx, http.MethodGet, c.repoPath("/issues/%d/labels", number), nil, nil)
	if err != nil {
		return nil, err
	}
	var labels []ghLabel
	if err := json.Unmarshal(body, &labels); err != nil {
		return nil, fmt.Errorf("github: parse labels: %w", err)
	}
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.Name)
	}
	return names, nil
}

// AddLabels adds labels to an issue.
func (c *Client) AddLabels(ctx context.Context, number int, labels []string) error {
	payload := map[string][]string{"labels": labels}
	_, err := c.doRetry(ctx, http.MethodPost, c.repoPath("/issues/%d/labels", number), payload, nil)
	return err
}

// RemoveLabel removes one label from an issue. A 404 means the label
// was already gone; label removal is idempotent so that is not an
// error.
func (c *Client) RemoveLabel(ctx context.Context, number int, label string) error {
	path := c.repoPath("/issues/%d/labels/%s", number, url.PathEscape(label))
	_, err := c.doRetry(ctx, http.MethodDelete, path, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

// ListReactions lists reactions on a specific comment.
func (c *Client) ListReactions(ctx context.Context, commentID int64) ([]entities.Reaction, error) {
	body, err := c.doRetry(ctx, http.MethodGet, c.repoPath("/issues/comments/%d/reactions", commentID), nil, nil)
	if err != nil {
		return nil, err
	}
	var reactions []ghReaction
	if err := json.Unmarshal(body, &reactions); err != nil {
		return nil, fmt.Errorf("github: parse reactions: %w", err)
	}
	out := make([]entities.Reaction, 0, len(reactions))
	for _, r := range reactions {
		out = append(out, entities.Reaction{User: r.User.Login, Content: r.Content})
	}
	return out, nil
}

// AddAssignees assigns users to an issue.
func (c *Client) AddAssignees(ctx context.Context, number int, assignees []string) error {
	payload := map[string][]string{"assignees": assignees}
	_, err := c.doRetry(ctx, http.MethodPost, c.repoPath("/issues/%d/assignees", number), payload, nil)
	return err
}
