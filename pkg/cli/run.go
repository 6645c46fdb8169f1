package cli

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/lockdiff/pkg/cli/config"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
	githubinfra "github.com/m-mizutani/lockdiff/pkg/infra/github"
	"github.com/m-mizutani/lockdiff/pkg/infra/lockfile"
	"github.com/m-mizutani/lockdiff/pkg/usecase"
)

func cmdRun() *cli.Command {
	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Diff the lockfile for the current CI build and comment on the pull request",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			settings, err := config.DetectSettings(ctx, config.Snapshot())
			if err != nil {
				// Builds for other events are not failures, they just have
				// nothing to do
				if errors.Is(err, types.ErrRunNotApplicable) {
					logger.Info("Build is not for a pull request, nothing to do",
						"reason", err.Error(),
					)
					return nil
				}
				return goerr.Wrap(err, "failed to resolve CI settings")
			}

			logger.Info("Resolved CI settings",
				"ci", settings.CI(),
				"repository", settings.Repository(),
				"base_ref", settings.BaseRef(),
				"head_ref", settings.HeadRef(),
				"lockfile_path", settings.LockfilePath(),
			)

			client, err := githubinfra.New(settings)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			return usecase.NewDiff(client, lockfile.New()).Run(ctx, settings)
		},
	}
}
