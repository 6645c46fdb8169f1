package config

import (
	"context"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sethvargo/go-envconfig"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

// sigilGitHubActions is always present in a GitHub Actions environment
const sigilGitHubActions = "GITHUB_REPOSITORY"

// githubActionsSettings resolves the run configuration from the variables
// GitHub Actions exports, plus the action inputs (INPUT_*).
type githubActionsSettings struct {
	Event    string `env:"GITHUB_EVENT_NAME"`
	Repo     string `env:"GITHUB_REPOSITORY, required"`
	Head     string `env:"GITHUB_REF, required"`
	Base     string `env:"GITHUB_BASE_REF, required"`
	APIToken string `env:"INPUT_GITHUB_TOKEN, required" masq:"secret"`
	Path     string `env:"INPUT_LOCKFILE_PATH, default=poetry.lock"`
	API      string `env:"GITHUB_API_URL, default=https://api.github.com"`

	prNumber int
}

func newGitHubActionsSettings(ctx context.Context, env map[string]string) (interfaces.Settings, error) {
	// The event decides applicability before anything else is validated, so
	// a push build exits cleanly even when pull request variables are absent
	if event := env["GITHUB_EVENT_NAME"]; event != "pull_request" {
		return nil, goerr.Wrap(types.ErrRunNotApplicable, "build event is not a pull request",
			goerr.V("event_name", event),
		)
	}

	var s githubActionsSettings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to load GitHub Actions settings",
			goerr.T(types.ErrTagConfig),
		)
	}

	num, err := parsePullRef(s.Head)
	if err != nil {
		return nil, err
	}
	s.prNumber = num

	return &s, nil
}

// parsePullRef extracts the pull request number from a merge ref of the
// form refs/pull/<number>/merge
func parsePullRef(ref string) (int, error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 3 || parts[0] != "refs" || parts[1] != "pull" {
		return 0, goerr.New("head ref is not a pull request merge ref",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagConfig),
		)
	}

	num, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, goerr.Wrap(err, "pull request number in head ref is not numeric",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagConfig),
		)
	}
	return num, nil
}

func (s *githubActionsSettings) CI() types.CIKind      { return types.CIGitHubActions }
func (s *githubActionsSettings) EventName() string     { return s.Event }
func (s *githubActionsSettings) Repository() string    { return s.Repo }
func (s *githubActionsSettings) BaseRef() string       { return s.Base }
func (s *githubActionsSettings) HeadRef() string       { return s.Head }
func (s *githubActionsSettings) PRNumber() (int, bool) { return s.prNumber, true }
func (s *githubActionsSettings) Token() string         { return s.APIToken }
func (s *githubActionsSettings) LockfilePath() string  { return s.Path }
func (s *githubActionsSettings) APIURL() string        { return s.API }
