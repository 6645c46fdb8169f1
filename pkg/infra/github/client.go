package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/model"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

const (
	// apiTimeout bounds every API call, including body transfer
	apiTimeout = 10 * time.Second

	// commentsPerPage is the page size for comment listing. A page shorter
	// than this ends the pagination loop.
	commentsPerPage = 100
)

type client struct {
	gh    *github.Client
	owner string
	repo  string
}

// New creates a RepositoryClient for the repository named in settings,
// authenticated with the settings token. The API base URL from settings is
// used as-is, so GitHub Enterprise and test servers work without path
// rewriting.
func New(settings interfaces.Settings) (interfaces.RepositoryClient, error) {
	owner, repo, ok := strings.Cut(settings.Repository(), "/")
	if !ok || owner == "" || repo == "" {
		return nil, goerr.New("repository name must be owner/name",
			goerr.V("repository", settings.Repository()),
			goerr.T(types.ErrTagConfig),
		)
	}

	baseURL, err := url.Parse(settings.APIURL())
	if err != nil {
		return nil, goerr.Wrap(err, "invalid API URL",
			goerr.V("url", settings.APIURL()),
			goerr.T(types.ErrTagConfig),
		)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	gh := github.NewClient(&http.Client{Timeout: apiTimeout}).WithAuthToken(settings.Token())
	gh.BaseURL = baseURL

	return &client{
		gh:    gh,
		owner: owner,
		repo:  repo,
	}, nil
}

// GetFileAtRef fetches the raw content of a repository file as of ref via
// the contents API with the raw media type.
func (c *client) GetFileAtRef(ctx context.Context, path, ref string) ([]byte, error) {
	escapedPath := (&url.URL{Path: path}).String()
	u := fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s", c.owner, c.repo, escapedPath, url.QueryEscape(ref))

	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build contents request",
			goerr.V("path", path),
			goerr.V("ref", ref),
			goerr.T(types.ErrTagGitHub),
		)
	}
	req.Header.Set("Accept", "application/vnd.github.raw")

	var buf bytes.Buffer
	if _, err := c.gh.Do(ctx, req, &buf); err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrLockfileNotFound, "file does not exist at ref",
				goerr.V("path", path),
				goerr.V("ref", ref),
			)
		}
		return nil, goerr.Wrap(err, "failed to fetch file content",
			goerr.V("path", path),
			goerr.V("ref", ref),
			goerr.T(types.ErrTagGitHub),
		)
	}

	return buf.Bytes(), nil
}

// ListTrackingComments returns the pull request comments whose body starts
// with the tracking marker. Pages are requested in increasing order until
// the API returns a short page.
func (c *client) ListTrackingComments(ctx context.Context, prNumber int) ([]model.TrackingComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{Page: 1, PerPage: commentsPerPage},
	}

	var tracking []model.TrackingComment
	for {
		comments, _, err := c.gh.Issues.ListComments(ctx, c.owner, c.repo, prNumber, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request comments",
				goerr.V("pr_number", prNumber),
				goerr.V("page", opts.Page),
				goerr.T(types.ErrTagGitHub),
			)
		}

		for _, comment := range comments {
			body := comment.GetBody()
			if !strings.HasPrefix(body, model.TrackingMarker) {
				continue
			}
			tracking = append(tracking, model.TrackingComment{
				ID:       comment.GetID(),
				Body:     body,
				AuthorID: comment.GetUser().GetID(),
			})
		}

		if len(comments) < commentsPerPage {
			return tracking, nil
		}
		opts.Page++
	}
}

// CreateComment posts a new comment on the pull request
func (c *client) CreateComment(ctx context.Context, prNumber int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, prNumber, comment); err != nil {
		return goerr.Wrap(err, "failed to create comment",
			goerr.V("pr_number", prNumber),
			goerr.T(types.ErrTagGitHub),
		)
	}
	return nil
}

// UpdateComment replaces the body of an existing comment
func (c *client) UpdateComment(ctx context.Context, commentID int64, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := c.gh.Issues.EditComment(ctx, c.owner, c.repo, commentID, comment); err != nil {
		return goerr.Wrap(err, "failed to update comment",
			goerr.V("comment_id", commentID),
			goerr.T(types.ErrTagGitHub),
		)
	}
	return nil
}

// DeleteComment removes an existing comment
func (c *client) DeleteComment(ctx context.Context, commentID int64) error {
	if _, err := c.gh.Issues.DeleteComment(ctx, c.owner, c.repo, commentID); err != nil {
		return goerr.Wrap(err, "failed to delete comment",
			goerr.V("comment_id", commentID),
			goerr.T(types.ErrTagGitHub),
		)
	}
	return nil
}

// FindOpenPullRequest returns the number of the first open pull request
// whose head branch matches branchRef, or 0 when there is none.
func (c *client) FindOpenPullRequest(ctx context.Context, branchRef string) (int, error) {
	branch := strings.TrimPrefix(branchRef, "refs/heads/")

	prs, _, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		State: "open",
		Head:  c.owner + ":" + branch,
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("branch", branch),
			goerr.T(types.ErrTagGitHub),
		)
	}

	if len(prs) == 0 {
		return 0, nil
	}
	return prs[0].GetNumber(), nil
}
