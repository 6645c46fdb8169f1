package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sethvargo/go-envconfig"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

// sigilVela is always present in a Vela build environment
const sigilVela = "VELA_REPO_FULL_NAME"

// velaSettings resolves the run configuration from the variables a Vela
// build exports, plus the plugin parameters (PARAMETER_*). Vela does not
// export a pull request number, so PRNumber reports it as unknown and the
// pipeline looks it up through the API.
type velaSettings struct {
	Event    string `env:"VELA_BUILD_EVENT"`
	Repo     string `env:"VELA_REPO_FULL_NAME, required"`
	Head     string `env:"VELA_BUILD_REF, required"`
	Branch   string `env:"VELA_REPO_BRANCH, required"`
	APIToken string `env:"PARAMETER_GITHUB_TOKEN, required" masq:"secret"`
	Path     string `env:"PARAMETER_LOCKFILE_PATH, default=poetry.lock"`
	API      string `env:"PARAMETER_GITHUB_API_URL, default=https://api.github.com"`
}

func newVelaSettings(ctx context.Context, env map[string]string) (interfaces.Settings, error) {
	if event := env["VELA_BUILD_EVENT"]; event != "pull_request" {
		return nil, goerr.Wrap(types.ErrRunNotApplicable, "build event is not a pull request",
			goerr.V("event_name", event),
		)
	}

	var s velaSettings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to load Vela settings",
			goerr.T(types.ErrTagConfig),
		)
	}

	return &s, nil
}

func (s *velaSettings) CI() types.CIKind      { return types.CIVela }
func (s *velaSettings) EventName() string     { return s.Event }
func (s *velaSettings) Repository() string    { return s.Repo }
func (s *velaSettings) BaseRef() string       { return "refs/heads/" + s.Branch }
func (s *velaSettings) HeadRef() string       { return s.Head }
func (s *velaSettings) PRNumber() (int, bool) { return 0, false }
func (s *velaSettings) Token() string         { return s.APIToken }
func (s *velaSettings) LockfilePath() string  { return s.Path }
func (s *velaSettings) APIURL() string        { return s.API }
