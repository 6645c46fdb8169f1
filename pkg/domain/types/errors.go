package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures by stage so CI logs show where a run died:
// settings resolution, lockfile retrieval/parsing, or the GitHub API layer.
var (
	ErrTagConfig   = goerr.NewTag("config")
	ErrTagLockfile = goerr.NewTag("lockfile")
	ErrTagGitHub   = goerr.NewTag("github")
)

var (
	// ErrNoCISupported means no recognized CI environment variable set was
	// found. Fatal before any network I/O.
	ErrNoCISupported = goerr.New("unable to determine CI environment", goerr.T(ErrTagConfig))

	// ErrRunNotApplicable means the CI environment was recognized but this
	// invocation is not one the bot should act on (e.g. a GitHub Actions
	// event other than pull_request). Callers treat it as a clean no-op,
	// not a failure.
	ErrRunNotApplicable = goerr.New("run does not apply to this CI event", goerr.T(ErrTagConfig))

	// ErrLockfileNotFound means the lockfile path does not exist at the
	// requested ref.
	ErrLockfileNotFound = goerr.New("lockfile not found at ref", goerr.T(ErrTagLockfile))

	// ErrLockfileMalformed means the fetched lockfile could not be parsed.
	ErrLockfileMalformed = goerr.New("malformed lockfile", goerr.T(ErrTagLockfile))
)
