package interfaces

import (
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

// Settings is the run configuration resolved from one CI environment.
// Each supported CI system provides its own implementation; the pipeline
// only ever sees this interface.
type Settings interface {
	// CI identifies the environment the settings were resolved from
	CI() types.CIKind

	// EventName is the CI event that triggered the build, e.g. "pull_request"
	EventName() string

	// Repository returns the full repository name as "owner/name"
	Repository() string

	// BaseRef is the ref the lockfile is compared against
	BaseRef() string

	// HeadRef is the ref carrying the proposed change
	HeadRef() string

	// PRNumber returns the pull request number when the environment knows
	// it. ok is false when the number must be looked up via the API.
	PRNumber() (num int, ok bool)

	// Token is the API token used for all repository calls
	Token() string

	// LockfilePath is the repository-relative path of the lockfile
	LockfilePath() string

	// APIURL is the base URL of the repository API
	APIURL() string
}
