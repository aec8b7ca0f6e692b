package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nwspk/politech-awards-2026/config"
	"github.com/nwspk/politech-awards-2026/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GitHub: config.GitHubConfig{
			Token:      "test-token",
			Repository: "nwspk/politech-awards",
			APIBaseURL: server.URL,
			BotLogin:   "github-actions[bot]",
		},
		HTTP: config.HTTPConfig{
			RequestTimeout: 5 * time.Second,
			MaxAttempts:    3,
		},
	}

	client, err := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	return client
}

func TestNewRequiresToken(t *testing.T) {
	cfg := &config.Config{GitHub: config.GitHubConfig{Repository: "a/b"}}
	_, err := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.Error(t, err)
}

func TestNewRejectsBadRepositorySlug(t *testing.T) {
	cfg := &config.Config{GitHub: config.GitHubConfig{Token: "x", Repository: "no-slash"}}
	_, err := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.Error(t, err)
}

func TestGetIssue(t *testing.T) {
	var gotPath, gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"number": 7, "user": {"login": "carol"}, "created_at": "2026-08-30T12:00:00Z"}`))
	}))

	issue, err := client.GetIssue(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "/repos/nwspk/politech-awards/issues/7", gotPath)
	require.Equal(t, "Bearer test-token", gotAuth)
	require.Equal(t, entities.Issue{
		Number:    7,
		Author:    "carol",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, issue)
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListOpenPullRequests(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "Resource not accessible by integration"}`))
	}))

	err := client.CreateComment(context.Background(), 7, "hi")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "Resource not accessible")
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListLabels(context.Background(), 7)
	require.Error(t, err)
	require.Equal(t, int32(3), calls.Load())
}

func TestRemoveLabelMissingIsNotAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	require.NoError(t, client.RemoveLabel(context.Background(), 7, "vote:pending"))
}

func TestRemoveLabelEscapesName(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))

	require.NoError(t, client.RemoveLabel(context.Background(), 7, "vote:pending"))
	require.Equal(t, "/repos/nwspk/politech-awards/issues/7/labels/vote:pending", gotPath)
}

func TestListReactions(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"user": {"login": "alice"}, "content": "+1"}, {"user": {"login": "bob"}, "content": "heart"}]`))
	}))

	reactions, err := client.ListReactions(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "/repos/nwspk/politech-awards/issues/comments/42/reactions", gotPath)
	require.Equal(t, []entities.Reaction{
		{User: "alice", Content: "+1"},
		{User: "bob", Content: "heart"},
	}, reactions)
}
