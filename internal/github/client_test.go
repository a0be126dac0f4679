package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlens/internal/github"
	"prlens/internal/models"
)

// setupTestClient points a Client at a mock GitHub server.
func setupTestClient(t *testing.T, handler http.HandlerFunc, opts github.Options) *github.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseURL = server.URL
	client, err := github.NewClient(opts)
	require.NoError(t, err)
	return client
}

var helloWorld = github.Repository{Owner: "octocat", Name: "Hello-World"}

func TestClient_ListPulls_Success(t *testing.T) {
	client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/Hello-World/pulls", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"html_url": "https://github.com/octocat/Hello-World/pull/1", "title": "Open one", "state": "open",
			 "user": {"login": "alice"}, "created_at": "2024-03-01T10:00:00Z"},
			{"html_url": "https://github.com/octocat/Hello-World/pull/2", "title": "Closed one", "state": "closed",
			 "user": {"login": "bob"}},
			{"html_url": "https://github.com/octocat/Hello-World/pull/3", "title": "Merged one", "state": "closed",
			 "merged_at": "2024-03-02T10:00:00Z"},
			{"title": "no url", "state": "open"}
		]`)
	}, github.Options{})

	pulls, err := client.ListPulls(context.Background(), helloWorld)
	require.NoError(t, err)
	require.Len(t, pulls, 3)

	assert.Equal(t, "https://github.com/octocat/Hello-World/pull/1", pulls[0].URL)
	assert.Equal(t, "Open one", pulls[0].Title)
	assert.Equal(t, models.StateOpen, pulls[0].State)
	assert.Equal(t, "alice", pulls[0].Author)
	require.NotNil(t, pulls[0].OpenedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), pulls[0].OpenedAt.UTC())

	assert.Equal(t, models.StateClosed, pulls[1].State)
	assert.Nil(t, pulls[1].OpenedAt)

	assert.Equal(t, models.StateMerged, pulls[2].State)
	assert.Equal(t, models.UnknownAuthor, pulls[2].Author)
}

func TestClient_ListPulls_PageSizeAndToken(t *testing.T) {
	client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[]`)
	}, github.Options{Token: "secret-token", PageSize: 20})

	pulls, err := client.ListPulls(context.Background(), helloWorld)
	require.NoError(t, err)
	assert.Empty(t, pulls)
}

func TestClient_ListPulls_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		handlerFunc http.HandlerFunc
		opts        github.Options
		wantErr     error
	}{
		{
			name: "object instead of array",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"message": "Moved Permanently"}`)
			},
			wantErr: github.ErrMalformedResponse,
		},
		{
			name: "null body",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `null`)
			},
			wantErr: github.ErrMalformedResponse,
		},
		{
			name:        "empty body",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {},
			wantErr:     github.ErrMalformedResponse,
		},
		{
			name: "not json at all",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>oops</html>`)
			},
			wantErr: github.ErrMalformedResponse,
		},
		{
			name: "not found",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			wantErr: github.ErrUpstream,
		},
		{
			name: "server error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			wantErr: github.ErrUpstream,
		},
		{
			name: "hung upstream hits the timeout",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			opts:    github.Options{Timeout: 50 * time.Millisecond},
			wantErr: github.ErrUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := setupTestClient(t, tc.handlerFunc, tc.opts)

			pulls, err := client.ListPulls(context.Background(), helloWorld)
			assert.Nil(t, pulls)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_ListPulls_EmptyRepository(t *testing.T) {
	client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}, github.Options{})

	pulls, err := client.ListPulls(context.Background(), helloWorld)
	require.NoError(t, err)
	assert.NotNil(t, pulls)
	assert.Empty(t, pulls)
}
