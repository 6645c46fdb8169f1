package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/model"
)

type diffUseCase struct {
	client interfaces.RepositoryClient
	parser interfaces.LockfileParser
}

// NewDiff creates the lockfile diff pipeline
func NewDiff(client interfaces.RepositoryClient, parser interfaces.LockfileParser) interfaces.DiffUseCase {
	return &diffUseCase{
		client: client,
		parser: parser,
	}
}

// Run executes one diff run: load the lockfile at the base and head refs,
// compute the package diff, and reconcile the tracking comment on the pull
// request.
func (uc *diffUseCase) Run(ctx context.Context, settings interfaces.Settings) error {
	logger := ctxlog.From(ctx)

	logger.Info("Starting lockfile diff",
		"repository", settings.Repository(),
		"lockfile_path", settings.LockfilePath(),
		"base_ref", settings.BaseRef(),
		"head_ref", settings.HeadRef(),
	)

	oldPkgs, err := uc.loadPackages(ctx, settings, settings.BaseRef())
	if err != nil {
		return goerr.Wrap(err, "failed to load base lockfile", goerr.V("ref", settings.BaseRef()))
	}

	newPkgs, err := uc.loadPackages(ctx, settings, settings.HeadRef())
	if err != nil {
		return goerr.Wrap(err, "failed to load head lockfile", goerr.V("ref", settings.HeadRef()))
	}

	diffs := model.DiffPackages(oldPkgs, newPkgs)
	summary, err := model.FormatSummary(diffs)
	if err != nil {
		return goerr.Wrap(err, "failed to format diff summary")
	}

	if summary == "" {
		logger.Info("No lockfile changes detected", "package_count", len(diffs))
	}

	prNumber, err := uc.resolvePullRequest(ctx, settings)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve pull request")
	}
	if prNumber == 0 {
		if summary != "" {
			logger.Info("No open pull request for head ref, logging diff instead",
				"head_ref", settings.HeadRef(),
				"summary", summary,
			)
		} else {
			logger.Info("No open pull request for head ref, nothing to do",
				"head_ref", settings.HeadRef(),
			)
		}
		return nil
	}

	// Reconcile even when the summary is empty: a push that reverts all
	// changes must delete the stale comment left by an earlier push.
	if err := uc.reconcileComment(ctx, prNumber, summary); err != nil {
		return goerr.Wrap(err, "failed to reconcile pull request comment", goerr.V("pr_number", prNumber))
	}

	return nil
}

// loadPackages fetches the lockfile at ref and parses its package list
func (uc *diffUseCase) loadPackages(ctx context.Context, settings interfaces.Settings, ref string) ([]model.Package, error) {
	data, err := uc.client.GetFileAtRef(ctx, settings.LockfilePath(), ref)
	if err != nil {
		return nil, err
	}

	pkgs, err := uc.parser.Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse lockfile",
			goerr.V("path", settings.LockfilePath()),
			goerr.V("ref", ref),
		)
	}

	ctxlog.From(ctx).Debug("Loaded lockfile",
		"ref", ref,
		"package_count", len(pkgs),
	)
	return pkgs, nil
}

// resolvePullRequest returns the pull request number for this run. When the
// CI environment does not provide one, the open pull request whose head is
// the head ref is looked up; 0 means there is no target.
func (uc *diffUseCase) resolvePullRequest(ctx context.Context, settings interfaces.Settings) (int, error) {
	if num, ok := settings.PRNumber(); ok {
		return num, nil
	}

	ctxlog.From(ctx).Debug("Pull request number not provided by CI, looking it up",
		"head_ref", settings.HeadRef(),
	)
	return uc.client.FindOpenPullRequest(ctx, settings.HeadRef())
}
