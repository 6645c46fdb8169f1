package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string

	enabled bool
}

// Flags returns CLI flags for error reporting configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (empty to disable)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("LOCKDIFF_SENTRY_DSN"),
		},
	}
}

// Configure initializes the Sentry SDK when a DSN is configured
func (c *Sentry) Configure() error {
	if c.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     c.DSN,
		Release: types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry",
			goerr.T(types.ErrTagConfig),
		)
	}

	c.enabled = true
	return nil
}

// CaptureException reports the error and flushes the event queue. It is a
// no-op when no DSN was configured.
func (c *Sentry) CaptureException(err error) {
	if !c.enabled {
		return
	}

	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
