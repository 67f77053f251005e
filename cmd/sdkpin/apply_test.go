package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sdkpin/internal/reconcile"
	"github.com/conn-castle/sdkpin/internal/rules"
	"github.com/conn-castle/sdkpin/internal/sdkman"
	"github.com/conn-castle/sdkpin/internal/testutil"
)

func kotlinResponses() map[string]testutil.FakeCommand {
	return map[string]testutil.FakeCommand{
		"sdk list kotlin":            {Stdout: kotlinListing},
		"sdk uninstall kotlin 1.8.0": {Stdout: "Removed kotlin 1.8.0."},
		"sdk install kotlin 1.9.0":   {Stdout: "Done installing!"},
		"sdk install kotlin 2.0.0":   {Stderr: "network down", ExitCode: 1},
		"sdk default kotlin 2.0.0":   {Stdout: "Default kotlin version set to 2.0.0"},
	}
}

func TestApplyReconcilesAndReportsFailures(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.8.0")

	stdout, _, err := runCLI("apply", "-f", env.rules)
	require.ErrorIs(t, err, reconcile.ErrActionsFailed)

	assert.Equal(t, "sdk uninstall kotlin 1.8.0: OK\n"+
		"sdk install kotlin 1.9.0: OK\n"+
		"sdk install kotlin 2.0.0: Error: network down\n"+
		"sdk default kotlin 2.0.0: OK\n"+
		"1 candidate(s), 4 action(s), 1 failed\n", stdout)
	assert.Equal(t, []string{
		"sdk list kotlin",
		"sdk uninstall kotlin 1.8.0",
		"sdk install kotlin 1.9.0",
		"sdk install kotlin 2.0.0",
		"sdk default kotlin 2.0.0",
	}, env.commands(t))
	assert.FileExists(t, filepath.Join(env.dir, "var", "sdkpin.lock"))
}

func TestApplyDryRun(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.8.0")

	stdout, _, err := runCLI("apply", "--dry-run", "--file", env.rules)
	require.NoError(t, err)

	assert.Contains(t, stdout, "sdk uninstall kotlin 1.8.0: DRY-RUN\n")
	assert.Contains(t, stdout, "sdk default kotlin 2.0.0: DRY-RUN\n")
	assert.Equal(t, []string{"sdk list kotlin"}, env.commands(t))
	assert.NoFileExists(t, filepath.Join(env.dir, "var", "sdkpin.lock"))
}

func TestApplyNoUninstall(t *testing.T) {
	responses := kotlinResponses()
	responses["sdk install kotlin 2.0.0"] = testutil.FakeCommand{Stdout: "Done installing!"}
	env := newSdkmanEnv(t, kotlinRules, responses)
	testutil.MkInstalled(t, env.dir, "kotlin", "1.8.0")

	stdout, _, err := runCLI("apply", "-n", "--no-lock", "-f", env.rules)
	require.NoError(t, err)

	assert.Contains(t, stdout, "sdk uninstall kotlin 1.8.0: NO-UNINSTALL\n")
	assert.Contains(t, stdout, "1 candidate(s), 4 action(s), 0 failed\n")
	assert.NotContains(t, env.commands(t), "sdk uninstall kotlin 1.8.0")
	assert.NoFileExists(t, filepath.Join(env.dir, "var", "sdkpin.lock"))
}

func TestApplyUpToDateStillAssertsDefault(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.9.0", "2.0.0")

	stdout, _, err := runCLI("apply", "--no-lock", "-f", env.rules)
	require.NoError(t, err)
	assert.Equal(t, "sdk default kotlin 2.0.0: OK\n1 candidate(s), 1 action(s), 0 failed\n", stdout)
}

func TestApplyUnmanagedCandidate(t *testing.T) {
	content := "candidates:\n  kotlin:\n    versions:\n      - pattern: '^3\\.'\n"
	env := newSdkmanEnv(t, content, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.8.0")

	stdout, _, err := runCLI("apply", "--no-lock", "-f", env.rules)
	require.NoError(t, err)
	assert.Contains(t, stdout, "kotlin: no rule matched an available version; 1 installed version(s) left untouched\n")
	assert.Equal(t, []string{"sdk list kotlin"}, env.commands(t))
}

func TestApplyInvalidPatternRunsNothing(t *testing.T) {
	content := "candidates:\n  kotlin:\n    versions:\n      - pattern: '('\n"
	env := newSdkmanEnv(t, content, kotlinResponses())

	_, _, err := runCLI("apply", "-f", env.rules)
	require.ErrorIs(t, err, rules.ErrInvalidPattern)
	assert.Empty(t, env.commands(t))
}

func TestApplyListingFailureAborts(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, map[string]testutil.FakeCommand{
		"sdk list kotlin": {Stderr: "Stop! kotlin is not a valid candidate.", ExitCode: 1},
	})

	_, _, err := runCLI("apply", "--no-lock", "-f", env.rules)
	require.ErrorIs(t, err, sdkman.ErrListFailed)
	assert.Contains(t, err.Error(), "Stop! kotlin is not a valid candidate.")
}

func TestApplyRequiresFile(t *testing.T) {
	_, _, err := runCLI("apply")
	require.EqualError(t, err, "a rule file is required; pass it with --file")
}

func TestApplyUnknownCandidateFilter(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())

	_, _, err := runCLI("apply", "-f", env.rules, "-c", "groovy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groovy")
	assert.Empty(t, env.commands(t))
}

func TestApplyCandidateFilter(t *testing.T) {
	content := kotlinRules + "  gradle:\n    versions:\n      - pattern: '^8'\n"
	env := newSdkmanEnv(t, content, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.9.0", "2.0.0")

	_, _, err := runCLI("apply", "--no-lock", "-f", env.rules, "--candidate", "kotlin")
	require.NoError(t, err)
	assert.Equal(t, []string{"sdk list kotlin", "sdk default kotlin 2.0.0"}, env.commands(t))
}

func TestApplyTakesLockInSdkmanDir(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.9.0", "2.0.0")

	orig := withLock
	t.Cleanup(func() { withLock = orig })
	var lockedPath string
	withLock = func(path string, fn func() error) error {
		lockedPath = path
		return fn()
	}

	_, _, err := runCLI("apply", "-f", env.rules)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.dir, "var", "sdkpin.lock"), lockedPath)
}

func TestApplyLockFailure(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())

	orig := withLock
	t.Cleanup(func() { withLock = orig })
	withLock = func(string, func() error) error { return errors.New("locked") }

	_, _, err := runCLI("apply", "-f", env.rules)
	require.EqualError(t, err, "locked")
	assert.Empty(t, env.commands(t))
}

func stubConfirm(t *testing.T, interactive bool, answer bool) *[]string {
	t.Helper()
	origInteractive, origConfirm := isInteractive, confirmFunc
	t.Cleanup(func() {
		isInteractive = origInteractive
		confirmFunc = origConfirm
	})
	prompts := []string{}
	isInteractive = func() bool { return interactive }
	confirmFunc = func(title string) (bool, error) {
		prompts = append(prompts, title)
		return answer, nil
	}
	return &prompts
}

func TestApplyConfirmDeclined(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.8.0")
	prompts := stubConfirm(t, true, false)

	stdout, _, err := runCLI("apply", "--confirm", "--no-lock", "-f", env.rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apply 4 action(s) for kotlin?"}, *prompts)
	assert.Contains(t, stdout, "kotlin: skipped (not confirmed)\n")
	assert.Equal(t, []string{"sdk list kotlin"}, env.commands(t))
}

func TestApplyConfirmRequiresTerminal(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	stubConfirm(t, false, true)

	_, _, err := runCLI("apply", "--confirm", "-f", env.rules)
	require.EqualError(t, err, "--confirm requires an interactive terminal")
	assert.Empty(t, env.commands(t))
}

func TestApplyMissingSdkmanDir(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	require.NoError(t, os.Unsetenv("SDKMAN_DIR"))

	_, _, err := runCLI("apply", "--no-lock", "-f", env.rules)
	require.ErrorIs(t, err, sdkman.ErrNoSdkmanDir)
}

func TestApplyVerboseLogsToStderr(t *testing.T) {
	env := newSdkmanEnv(t, kotlinRules, kotlinResponses())
	testutil.MkInstalled(t, env.dir, "kotlin", "1.9.0", "2.0.0")

	_, stderr, err := runCLI("apply", "--dry-run", "-v", "-f", env.rules)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "candidate=kotlin")
}
