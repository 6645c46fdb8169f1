package interfaces

import (
	"context"
)

// DiffUseCase defines the lockfile diff pipeline for one CI run
type DiffUseCase interface {
	// Run fetches the lockfile at the base and head refs, diffs them and
	// reconciles the tracking comment on the pull request
	Run(ctx context.Context, settings Settings) error
}
