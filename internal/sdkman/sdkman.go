// Package sdkman drives the sdk shell function: it reads installed versions from
// SDKMAN_DIR and runs sdk list, install, uninstall and default through a login
// shell.
package sdkman

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"mvdan.cc/sh/v3/syntax"

	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/reconcile"
)

const (
	// EnvSdkmanDir names the SDKMAN installation directory.
	EnvSdkmanDir = "SDKMAN_DIR"
	// EnvShell names the login shell sdk commands run through.
	EnvShell = "SHELL"

	lockFileName = "sdkpin.lock"
)

var (
	// ErrNoSdkmanDir is returned when SDKMAN_DIR is unset.
	ErrNoSdkmanDir = errors.New(messages.SdkmanDirUnset)
	// ErrNoShell is returned when SHELL is unset.
	ErrNoShell = errors.New(messages.SdkmanShellUnset)
	// ErrListFailed is returned when sdk list exits unsuccessfully.
	ErrListFailed = errors.New("sdk list failed")
)

// Client runs sdk commands. In DryRun mode side-effecting commands are only
// reported; with NoUninstall set, uninstalls are reported as skipped.
type Client struct {
	System      System
	DryRun      bool
	NoUninstall bool
}

// New returns a Client backed by sys.
func New(sys System, dryRun bool, noUninstall bool) *Client {
	return &Client{System: sys, DryRun: dryRun, NoUninstall: noUninstall}
}

// Dir returns SDKMAN_DIR.
func (c *Client) Dir() (string, error) {
	dir, ok := c.System.LookupEnv(EnvSdkmanDir)
	if !ok || strings.TrimSpace(dir) == "" {
		return "", ErrNoSdkmanDir
	}
	return dir, nil
}

// CandidatesDir returns the directory holding one subdirectory per candidate.
func (c *Client) CandidatesDir() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "candidates"), nil
}

// LockPath returns the run lock file inside SDKMAN_DIR.
func (c *Client) LockPath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "var", lockFileName), nil
}

// ListInstalled returns the installed versions of candidate: the directories
// under candidates/<candidate>. The "current" symlink is not a directory entry
// of type dir and is skipped. Nothing installed yields an empty list.
func (c *Client) ListInstalled(_ context.Context, candidate string) ([]string, error) {
	base, err := c.CandidatesDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, candidate)
	entries, err := c.System.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf(messages.SdkmanReadInstalledFmt, candidate, dir, err)
	}
	versions := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions = append(versions, norm.NFC.String(entry.Name()))
	}
	return versions, nil
}

// ListAvailable returns the raw output of sdk list candidate.
func (c *Client) ListAvailable(ctx context.Context, candidate string) (string, error) {
	result, err := c.sdk(ctx, "list", candidate)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.SdkmanListFailedFmt, ErrListFailed, candidate,
			strings.TrimSpace(string(result.Stdout)), strings.TrimSpace(string(result.Stderr)), err)
	}
	return string(result.Stdout), nil
}

// Perform runs the sdk command for action, honoring NoUninstall and DryRun
// in that order.
func (c *Client) Perform(ctx context.Context, action reconcile.Action) reconcile.Result {
	if action.Kind == reconcile.ActionUninstall && c.NoUninstall {
		return reconcile.Result{Action: action, Outcome: reconcile.OutcomeSkipped}
	}
	if c.DryRun {
		return reconcile.Result{Action: action, Outcome: reconcile.OutcomeDryRun}
	}
	result, err := c.sdk(ctx, action.Kind.String(), action.Candidate, action.Version)
	if err != nil {
		return reconcile.Result{Action: action, Outcome: reconcile.OutcomeError, Detail: failureDetail(result, err)}
	}
	return reconcile.Result{Action: action, Outcome: reconcile.OutcomeOK}
}

// sdk runs `sdk args...` through an interactive login shell; sdk is a shell
// function defined by sdkman-init.sh, not an executable.
func (c *Client) sdk(ctx context.Context, args ...string) (RunResult, error) {
	shell, ok := c.System.LookupEnv(EnvShell)
	if !ok || strings.TrimSpace(shell) == "" {
		return RunResult{}, ErrNoShell
	}
	words := make([]string, 0, len(args)+1)
	words = append(words, "sdk")
	for _, arg := range args {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return RunResult{}, fmt.Errorf(messages.SdkmanQuoteArgFmt, arg, err)
		}
		words = append(words, quoted)
	}
	return c.System.Run(ctx, shell, []string{"-l", "-i", "-c", strings.Join(words, " ")})
}

// failureDetail joins captured stdout and stderr, falling back to err.
func failureDetail(result RunResult, err error) string {
	parts := []string{}
	for _, out := range [][]byte{result.Stdout, result.Stderr} {
		if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, " ")
}

var _ reconcile.Executor = (*Client)(nil)
