package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/model"
	"github.com/m-mizutani/lockdiff/pkg/infra/lockfile"
)

// cmdDiff diffs two lockfiles on disk and prints the summary. It exists to
// inspect a lockfile pair without a CI environment or network access.
func cmdDiff() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Aliases:   []string{"d"},
		Usage:     "Diff two local lockfiles and print the summary",
		ArgsUsage: "<old-lockfile> <new-lockfile>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.New("expected exactly two lockfile paths",
					goerr.V("args", c.Args().Slice()),
				)
			}

			parser := lockfile.New()
			oldPkgs, err := readLockfile(parser, c.Args().Get(0))
			if err != nil {
				return err
			}
			newPkgs, err := readLockfile(parser, c.Args().Get(1))
			if err != nil {
				return err
			}

			summary, err := model.FormatSummary(model.DiffPackages(oldPkgs, newPkgs))
			if err != nil {
				return err
			}

			if summary == "" {
				fmt.Fprintln(c.Root().Writer, "No changes to dependencies detected")
				return nil
			}
			fmt.Fprintln(c.Root().Writer, summary)
			return nil
		},
	}
}

func readLockfile(parser interfaces.LockfileParser, path string) ([]model.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read lockfile", goerr.V("path", path))
	}

	pkgs, err := parser.Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse lockfile", goerr.V("path", path))
	}
	return pkgs, nil
}
