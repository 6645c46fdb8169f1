package interfaces

import (
	"context"

	"github.com/m-mizutani/lockdiff/pkg/domain/model"
)

// RepositoryClient defines the repository API operations needed to diff a
// lockfile between two refs and maintain the tracking comment on a pull
// request.
type RepositoryClient interface {
	// GetFileAtRef returns the raw content of the file at path as of ref.
	// A missing file yields types.ErrLockfileNotFound.
	GetFileAtRef(ctx context.Context, path, ref string) ([]byte, error)

	// ListTrackingComments returns the comments on the pull request that
	// carry the tracking marker, in the order the API returned them.
	ListTrackingComments(ctx context.Context, prNumber int) ([]model.TrackingComment, error)

	// CreateComment posts a new comment on the pull request.
	CreateComment(ctx context.Context, prNumber int, body string) error

	// UpdateComment replaces the body of an existing comment.
	UpdateComment(ctx context.Context, commentID int64, body string) error

	// DeleteComment removes an existing comment.
	DeleteComment(ctx context.Context, commentID int64) error

	// FindOpenPullRequest returns the number of the open pull request whose
	// head is branchRef, or 0 when there is none.
	FindOpenPullRequest(ctx context.Context, branchRef string) (int, error)
}
