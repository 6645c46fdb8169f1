package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/lockdiff/pkg/domain/model"
)

// reconcileComment makes the tracking comment on the pull request match the
// summary: create when missing, update when stale, delete when the summary
// is empty, and leave it alone when nothing changed.
func (uc *diffUseCase) reconcileComment(ctx context.Context, prNumber int, summary string) error {
	logger := ctxlog.From(ctx)

	comments, err := uc.client.ListTrackingComments(ctx, prNumber)
	if err != nil {
		return err
	}

	var existing *model.TrackingComment
	if len(comments) > 0 {
		if len(comments) > 1 {
			logger.Warn("Found multiple tracking comments, keeping the first",
				"pr_number", prNumber,
				"comment_count", len(comments),
			)
		}
		existing = &comments[0]
	}

	action := model.PlanCommentAction(existing, summary)
	switch action.Op {
	case model.OpCreate:
		logger.Info("Posting diff to new comment", "pr_number", prNumber)
		return uc.client.CreateComment(ctx, prNumber, action.Body)

	case model.OpUpdate:
		logger.Info("Updating existing comment",
			"pr_number", prNumber,
			"comment_id", action.CommentID,
		)
		return uc.client.UpdateComment(ctx, action.CommentID, action.Body)

	case model.OpDelete:
		logger.Info("Deleting existing comment",
			"pr_number", prNumber,
			"comment_id", action.CommentID,
		)
		return uc.client.DeleteComment(ctx, action.CommentID)

	default:
		if existing != nil {
			logger.Debug("Content did not change, not updating existing comment",
				"pr_number", prNumber,
				"comment_id", existing.ID,
			)
		}
		return nil
	}
}
