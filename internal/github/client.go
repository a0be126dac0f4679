// Package github is a thin adapter over the GitHub REST pulls endpoint.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"prlens/internal/models"
)

const (
	DefaultPageSize = 5
	maxPageSize     = 100
	defaultTimeout  = 5 * time.Second
)

var (
	ErrUpstream          = errors.New("github request failed")
	ErrMalformedResponse = errors.New("malformed github response")
)

type Options struct {
	BaseURL  string
	Token    string
	PageSize int
	Timeout  time.Duration
}

type Client struct {
	gh       *gogithub.Client
	pageSize int
}

func NewClient(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.Token != "" {
		httpClient.Transport = &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}

	gh := gogithub.NewClient(httpClient)
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parse github base url: %w", err)
		}
		gh.BaseURL = u
	}

	pageSize := opts.PageSize
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	return &Client{gh: gh, pageSize: pageSize}, nil
}

// ListPulls fetches a single page of pull requests in every state.
func (c *Client) ListPulls(ctx context.Context, repo Repository) ([]models.RemotePull, error) {
	const op = "github.ListPulls"

	pulls, _, err := c.gh.PullRequests.List(ctx, repo.Owner, repo.Name, &gogithub.PullRequestListOptions{
		State:       "all",
		ListOptions: gogithub.ListOptions{PerPage: c.pageSize},
	})
	if err != nil {
		return nil, classify(op, err)
	}
	// go-github accepts a null or empty body as a nil slice; "[]" decodes to a non-nil one
	if pulls == nil {
		return nil, fmt.Errorf("%s: %w: body is not a json array", op, ErrMalformedResponse)
	}

	out := make([]models.RemotePull, 0, len(pulls))
	for _, p := range pulls {
		// url is the storage key, an entry without one can't be kept
		if p.GetHTMLURL() == "" {
			continue
		}
		out = append(out, toRemotePull(p))
	}

	return out, nil
}

func classify(op string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

func toRemotePull(p *gogithub.PullRequest) models.RemotePull {
	author := p.GetUser().GetLogin()
	if author == "" {
		author = models.UnknownAuthor
	}

	state := p.GetState()
	if state == models.StateClosed && p.MergedAt != nil {
		state = models.StateMerged
	}

	var openedAt *time.Time
	if p.CreatedAt != nil {
		t := p.CreatedAt.Time
		openedAt = &t
	}

	return models.RemotePull{
		URL:      p.GetHTMLURL(),
		Title:    p.GetTitle(),
		State:    state,
		Author:   author,
		OpenedAt: openedAt,
	}
}
