package model

// TrackingMarker is the fixed literal prefix stamped onto every comment this
// bot posts, and the only means of recognizing comments posted by earlier
// runs. Changing it orphans comments written by older versions.
const TrackingMarker = "<!-- lockdiff:dependency-report -->\n\n"

// TrackingComment is a previously posted bot comment on the pull request.
// The body includes the TrackingMarker prefix as fetched from the API.
type TrackingComment struct {
	ID       int64
	Body     string
	AuthorID int64
}

// CommentOp enumerates the mutations the reconciler can apply to the
// pull request's tracking comment.
type CommentOp string

const (
	OpNone   CommentOp = "none"
	OpCreate CommentOp = "create"
	OpUpdate CommentOp = "update"
	OpDelete CommentOp = "delete"
)

// CommentAction is the reconciler's decision: the mutation to apply, the
// target comment for update/delete, and the full marker-prefixed body for
// create/update.
type CommentAction struct {
	Op        CommentOp
	CommentID int64
	Body      string
}

// ComposeBody prefixes a summary with the TrackingMarker, producing the
// exact body sent to the API. Fetched tracking comments already carry the
// prefix, so the idempotence comparison goes through this same composition.
func ComposeBody(summary string) string {
	return TrackingMarker + summary
}

// PlanCommentAction decides how to move the pull request's tracking comment
// to the desired state. existing is the current tracking comment, nil when
// none exists; summary is the desired report, "" when there is nothing to
// report. Every combination maps to exactly one action:
//
//	existing / summary    -> action
//	nil      / ""         -> none
//	nil      / present    -> create
//	set      / ""         -> delete
//	set      / same body  -> none
//	set      / other body -> update
func PlanCommentAction(existing *TrackingComment, summary string) CommentAction {
	switch {
	case existing == nil && summary == "":
		return CommentAction{Op: OpNone}
	case existing == nil:
		return CommentAction{Op: OpCreate, Body: ComposeBody(summary)}
	case summary == "":
		return CommentAction{Op: OpDelete, CommentID: existing.ID}
	case existing.Body == ComposeBody(summary):
		return CommentAction{Op: OpNone}
	default:
		return CommentAction{Op: OpUpdate, CommentID: existing.ID, Body: ComposeBody(summary)}
	}
}
