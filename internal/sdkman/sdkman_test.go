package sdkman

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sdkpin/internal/reconcile"
	"github.com/conn-castle/sdkpin/internal/testutil"
)

type runCall struct {
	name string
	args []string
}

type fakeSystem struct {
	RealSystem
	env    map[string]string
	calls  []runCall
	result RunResult
	err    error
}

func (f *fakeSystem) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f *fakeSystem) Run(_ context.Context, name string, args []string) (RunResult, error) {
	f.calls = append(f.calls, runCall{name: name, args: args})
	return f.result, f.err
}

func newFake(t *testing.T) (*fakeSystem, string) {
	t.Helper()
	dir := t.TempDir()
	return &fakeSystem{env: map[string]string{EnvSdkmanDir: dir, EnvShell: "/bin/zsh"}}, dir
}

func TestListInstalled(t *testing.T) {
	sys, dir := newFake(t)
	testutil.MkInstalled(t, dir, "java", "21-tem", "17-tem")
	require.NoError(t, os.Symlink(filepath.Join(dir, "candidates", "java", "21-tem"), filepath.Join(dir, "candidates", "java", "current")))
	testutil.WriteFile(t, filepath.Join(dir, "candidates", "java"), "notes.txt", "x")

	got, err := New(sys, false, false).ListInstalled(context.Background(), "java")
	require.NoError(t, err)
	assert.Equal(t, []string{"17-tem", "21-tem"}, got)
}

func TestListInstalledNothingInstalled(t *testing.T) {
	sys, _ := newFake(t)
	got, err := New(sys, false, false).ListInstalled(context.Background(), "kotlin")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListInstalledRequiresSdkmanDir(t *testing.T) {
	sys := &fakeSystem{env: map[string]string{}}
	_, err := New(sys, false, false).ListInstalled(context.Background(), "java")
	assert.ErrorIs(t, err, ErrNoSdkmanDir)
}

func TestListAvailableRunsLoginShell(t *testing.T) {
	sys, _ := newFake(t)
	sys.result = RunResult{Stdout: []byte("listing")}

	out, err := New(sys, false, false).ListAvailable(context.Background(), "java")
	require.NoError(t, err)
	assert.Equal(t, "listing", out)
	require.Len(t, sys.calls, 1)
	assert.Equal(t, "/bin/zsh", sys.calls[0].name)
	assert.Equal(t, []string{"-l", "-i", "-c", "sdk list java"}, sys.calls[0].args)
}

func TestListAvailableFailureSurfacesOutput(t *testing.T) {
	sys, _ := newFake(t)
	sys.result = RunResult{Stdout: []byte("Stop! nope is not a valid candidate.\n"), Stderr: []byte("stderr text")}
	sys.err = errors.New("exit status 1")

	_, err := New(sys, false, false).ListAvailable(context.Background(), "nope")
	require.ErrorIs(t, err, ErrListFailed)
	assert.Contains(t, err.Error(), "Stop! nope is not a valid candidate.")
	assert.Contains(t, err.Error(), "stderr text")
}

func TestListAvailableRequiresShell(t *testing.T) {
	sys, _ := newFake(t)
	delete(sys.env, EnvShell)
	_, err := New(sys, false, false).ListAvailable(context.Background(), "java")
	assert.ErrorIs(t, err, ErrNoShell)
}

func TestPerformOutcomes(t *testing.T) {
	install := action(reconcile.ActionInstall, "java", "21-tem")
	uninstall := action(reconcile.ActionUninstall, "java", "17-tem")
	setDefault := action(reconcile.ActionSetDefault, "java", "21-tem")

	cases := []struct {
		name        string
		dryRun      bool
		noUninstall bool
		action      reconcile.Action
		runErr      error
		want        reconcile.Outcome
		wantRuns    int
	}{
		{name: "install ok", action: install, want: reconcile.OutcomeOK, wantRuns: 1},
		{name: "install dry run", dryRun: true, action: install, want: reconcile.OutcomeDryRun},
		{name: "default dry run", dryRun: true, action: setDefault, want: reconcile.OutcomeDryRun},
		{name: "uninstall skipped", noUninstall: true, action: uninstall, want: reconcile.OutcomeSkipped},
		{name: "no-uninstall wins over dry run", dryRun: true, noUninstall: true, action: uninstall, want: reconcile.OutcomeSkipped},
		{name: "no-uninstall leaves install alone", noUninstall: true, action: install, want: reconcile.OutcomeOK, wantRuns: 1},
		{name: "failure", action: uninstall, runErr: errors.New("exit status 1"), want: reconcile.OutcomeError, wantRuns: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys, _ := newFake(t)
			sys.err = tc.runErr
			result := New(sys, tc.dryRun, tc.noUninstall).Perform(context.Background(), tc.action)
			assert.Equal(t, tc.want, result.Outcome)
			assert.Equal(t, tc.action, result.Action)
			assert.Len(t, sys.calls, tc.wantRuns)
		})
	}
}

func action(kind reconcile.ActionKind, candidate string, version string) reconcile.Action {
	return reconcile.Action{Kind: kind, Candidate: candidate, Version: version}
}

func TestPerformCommandLines(t *testing.T) {
	sys, _ := newFake(t)
	client := New(sys, false, false)
	ctx := context.Background()

	client.Perform(ctx, action(reconcile.ActionInstall, "java", "21-tem"))
	client.Perform(ctx, action(reconcile.ActionUninstall, "java", "17-tem"))
	client.Perform(ctx, action(reconcile.ActionSetDefault, "java", "21-tem"))

	require.Len(t, sys.calls, 3)
	assert.Equal(t, "sdk install java 21-tem", sys.calls[0].args[3])
	assert.Equal(t, "sdk uninstall java 17-tem", sys.calls[1].args[3])
	assert.Equal(t, "sdk default java 21-tem", sys.calls[2].args[3])
}

func TestPerformQuotesUnsafeVersions(t *testing.T) {
	sys, _ := newFake(t)
	New(sys, false, false).Perform(context.Background(), action(reconcile.ActionInstall, "java", "21;reboot"))

	require.Len(t, sys.calls, 1)
	assert.NotEqual(t, "sdk install java 21;reboot", sys.calls[0].args[3])
	assert.Contains(t, sys.calls[0].args[3], "'21;reboot'")
}

func TestFailureDetail(t *testing.T) {
	err := errors.New("exit status 2")
	assert.Equal(t, "out err", failureDetail(RunResult{Stdout: []byte(" out\n"), Stderr: []byte("err\n")}, err))
	assert.Equal(t, "err", failureDetail(RunResult{Stderr: []byte("err")}, err))
	assert.Equal(t, "exit status 2", failureDetail(RunResult{}, err))
}

func TestLockPath(t *testing.T) {
	sys, dir := newFake(t)
	path, err := New(sys, false, false).LockPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "var", "sdkpin.lock"), path)
}

func TestClientAgainstFakeShell(t *testing.T) {
	dir := t.TempDir()
	log := filepath.Join(dir, "commands.log")
	shell := testutil.WriteFakeShell(t, dir, log, map[string]testutil.FakeCommand{
		"sdk list kotlin":          {Stdout: "===\n===\n 2.0.0 1.9.0\n===\n"},
		"sdk install kotlin 2.0.0": {Stdout: "Done installing!"},
		"sdk default kotlin 2.0.0": {Stderr: "Stop! kotlin 2.0.0 is not installed.", ExitCode: 1},
	})
	sys := &fakeSystem{env: map[string]string{EnvSdkmanDir: dir, EnvShell: shell}}
	client := &Client{System: envOnly{sys}}
	ctx := context.Background()

	out, err := client.ListAvailable(ctx, "kotlin")
	require.NoError(t, err)
	assert.Contains(t, out, "2.0.0 1.9.0")

	assert.Equal(t, reconcile.OutcomeOK, client.Perform(ctx, action(reconcile.ActionInstall, "kotlin", "2.0.0")).Outcome)
	failed := client.Perform(ctx, action(reconcile.ActionSetDefault, "kotlin", "2.0.0"))
	assert.Equal(t, reconcile.OutcomeError, failed.Outcome)
	assert.Equal(t, "Stop! kotlin 2.0.0 is not installed.", failed.Detail)

	_, err = client.ListAvailable(ctx, "groovy")
	require.ErrorIs(t, err, ErrListFailed)
	assert.Contains(t, err.Error(), "unexpected command: sdk list groovy")

	assert.Equal(t, []string{
		"sdk list kotlin",
		"sdk install kotlin 2.0.0",
		"sdk default kotlin 2.0.0",
		"sdk list groovy",
	}, testutil.ReadLog(t, log))
}

// envOnly takes environment lookups from a fake and everything else from the OS.
type envOnly struct {
	fake *fakeSystem
}

func (e envOnly) LookupEnv(key string) (string, bool) { return e.fake.LookupEnv(key) }

func (envOnly) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

func (envOnly) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (envOnly) Run(ctx context.Context, name string, args []string) (RunResult, error) {
	return RealSystem{}.Run(ctx, name, args)
}
