package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/lockdiff/pkg/cli/config"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

func githubActionsEnv() map[string]string {
	return map[string]string{
		"GITHUB_REPOSITORY":  "octocat/demo",
		"GITHUB_EVENT_NAME":  "pull_request",
		"GITHUB_REF":         "refs/pull/123/merge",
		"GITHUB_BASE_REF":    "main",
		"INPUT_GITHUB_TOKEN": "ghs_secret",
	}
}

func velaEnv() map[string]string {
	return map[string]string{
		"VELA_REPO_FULL_NAME":    "octocat/demo",
		"VELA_BUILD_EVENT":       "pull_request",
		"VELA_REPO_BRANCH":       "main",
		"VELA_BUILD_REF":         "refs/heads/deps-update",
		"PARAMETER_GITHUB_TOKEN": "vela_secret",
	}
}

func TestDetectSettings_GitHubActions(t *testing.T) {
	s, err := config.DetectSettings(context.Background(), githubActionsEnv())
	if err != nil {
		t.Fatalf("DetectSettings() error = %v", err)
	}

	if got := s.CI(); got != types.CIGitHubActions {
		t.Errorf("CI() = %v, want %v", got, types.CIGitHubActions)
	}
	if got := s.EventName(); got != "pull_request" {
		t.Errorf("EventName() = %q, want %q", got, "pull_request")
	}
	if got := s.Repository(); got != "octocat/demo" {
		t.Errorf("Repository() = %q, want %q", got, "octocat/demo")
	}
	if got := s.BaseRef(); got != "main" {
		t.Errorf("BaseRef() = %q, want %q", got, "main")
	}
	if got := s.HeadRef(); got != "refs/pull/123/merge" {
		t.Errorf("HeadRef() = %q, want %q", got, "refs/pull/123/merge")
	}
	if num, ok := s.PRNumber(); !ok || num != 123 {
		t.Errorf("PRNumber() = (%d, %v), want (123, true)", num, ok)
	}
	if got := s.Token(); got != "ghs_secret" {
		t.Errorf("Token() = %q, want %q", got, "ghs_secret")
	}
	if got := s.LockfilePath(); got != "poetry.lock" {
		t.Errorf("LockfilePath() = %q, want default %q", got, "poetry.lock")
	}
	if got := s.APIURL(); got != "https://api.github.com" {
		t.Errorf("APIURL() = %q, want default %q", got, "https://api.github.com")
	}
}

func TestDetectSettings_GitHubActionsOverrides(t *testing.T) {
	env := githubActionsEnv()
	env["INPUT_LOCKFILE_PATH"] = "services/api/poetry.lock"
	env["GITHUB_API_URL"] = "https://ghe.example.com/api/v3"

	s, err := config.DetectSettings(context.Background(), env)
	if err != nil {
		t.Fatalf("DetectSettings() error = %v", err)
	}

	if got := s.LockfilePath(); got != "services/api/poetry.lock" {
		t.Errorf("LockfilePath() = %q, want %q", got, "services/api/poetry.lock")
	}
	if got := s.APIURL(); got != "https://ghe.example.com/api/v3" {
		t.Errorf("APIURL() = %q, want %q", got, "https://ghe.example.com/api/v3")
	}
}

func TestDetectSettings_GitHubActionsNotApplicable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(env map[string]string)
	}{
		{
			name:   "push event",
			mutate: func(env map[string]string) { env["GITHUB_EVENT_NAME"] = "push" },
		},
		{
			name:   "missing event name",
			mutate: func(env map[string]string) { delete(env, "GITHUB_EVENT_NAME") },
		},
		{
			// A push build does not set the pull request variables. The
			// event decides applicability before the rest is validated.
			name: "push event without base ref",
			mutate: func(env map[string]string) {
				env["GITHUB_EVENT_NAME"] = "push"
				delete(env, "GITHUB_BASE_REF")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := githubActionsEnv()
			tt.mutate(env)

			_, err := config.DetectSettings(context.Background(), env)
			if !errors.Is(err, types.ErrRunNotApplicable) {
				t.Errorf("DetectSettings() error = %v, want ErrRunNotApplicable", err)
			}
		})
	}
}

func TestDetectSettings_GitHubActionsMissingToken(t *testing.T) {
	env := githubActionsEnv()
	delete(env, "INPUT_GITHUB_TOKEN")

	_, err := config.DetectSettings(context.Background(), env)
	if err == nil {
		t.Fatal("DetectSettings() expected error for missing token")
	}
	if errors.Is(err, types.ErrRunNotApplicable) {
		t.Error("missing token must be a failure, not a clean no-op")
	}
}

func TestDetectSettings_GitHubActionsInvalidHeadRef(t *testing.T) {
	for _, ref := range []string{"refs/heads/main", "refs/pull/abc/merge", "main"} {
		env := githubActionsEnv()
		env["GITHUB_REF"] = ref

		if _, err := config.DetectSettings(context.Background(), env); err == nil {
			t.Errorf("DetectSettings() expected error for head ref %q", ref)
		}
	}
}

func TestDetectSettings_Vela(t *testing.T) {
	s, err := config.DetectSettings(context.Background(), velaEnv())
	if err != nil {
		t.Fatalf("DetectSettings() error = %v", err)
	}

	if got := s.CI(); got != types.CIVela {
		t.Errorf("CI() = %v, want %v", got, types.CIVela)
	}
	if got := s.BaseRef(); got != "refs/heads/main" {
		t.Errorf("BaseRef() = %q, want %q", got, "refs/heads/main")
	}
	if got := s.HeadRef(); got != "refs/heads/deps-update" {
		t.Errorf("HeadRef() = %q, want %q", got, "refs/heads/deps-update")
	}
	if num, ok := s.PRNumber(); ok || num != 0 {
		t.Errorf("PRNumber() = (%d, %v), want unknown", num, ok)
	}
	if got := s.Token(); got != "vela_secret" {
		t.Errorf("Token() = %q, want %q", got, "vela_secret")
	}
	if got := s.LockfilePath(); got != "poetry.lock" {
		t.Errorf("LockfilePath() = %q, want default %q", got, "poetry.lock")
	}
	if got := s.APIURL(); got != "https://api.github.com" {
		t.Errorf("APIURL() = %q, want default %q", got, "https://api.github.com")
	}
}

func TestDetectSettings_VelaNotApplicable(t *testing.T) {
	env := velaEnv()
	env["VELA_BUILD_EVENT"] = "push"

	_, err := config.DetectSettings(context.Background(), env)
	if !errors.Is(err, types.ErrRunNotApplicable) {
		t.Errorf("DetectSettings() error = %v, want ErrRunNotApplicable", err)
	}
}

func TestDetectSettings_NoSupportedCI(t *testing.T) {
	env := map[string]string{"PATH": "/usr/bin", "HOME": "/home/ci"}

	_, err := config.DetectSettings(context.Background(), env)
	if !errors.Is(err, types.ErrNoCISupported) {
		t.Errorf("DetectSettings() error = %v, want ErrNoCISupported", err)
	}
}

func TestDetectSettings_FixedCandidateOrder(t *testing.T) {
	// When both sigils are present the GitHub Actions variant wins
	env := githubActionsEnv()
	for k, v := range velaEnv() {
		env[k] = v
	}

	s, err := config.DetectSettings(context.Background(), env)
	if err != nil {
		t.Fatalf("DetectSettings() error = %v", err)
	}
	if got := s.CI(); got != types.CIGitHubActions {
		t.Errorf("CI() = %v, want %v", got, types.CIGitHubActions)
	}
}
