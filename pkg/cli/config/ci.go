package config

import (
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

// Snapshot captures the process environment as a map. Settings detection
// works on the snapshot only, never on os.Getenv, so a run resolves its
// configuration from one consistent view.
func Snapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// DetectSettings resolves run settings from an environment snapshot. Each
// supported CI system is recognized by its sigil variable; candidates are
// tried in fixed order and the first match wins.
func DetectSettings(ctx context.Context, env map[string]string) (interfaces.Settings, error) {
	if _, ok := env[sigilGitHubActions]; ok {
		return newGitHubActionsSettings(ctx, env)
	}
	if _, ok := env[sigilVela]; ok {
		return newVelaSettings(ctx, env)
	}

	return nil, goerr.Wrap(types.ErrNoCISupported, "your CI may be unsupported",
		goerr.V("looked_for", []string{sigilGitHubActions, sigilVela}),
	)
}
