package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/conn-castle/sdkpin/internal/testutil"
)

const kotlinRules = `candidates:
  kotlin:
    versions:
      - pattern: '^2\.'
        default: true
      - pattern: '^1\.9'
`

const kotlinListing = "================\nAvailable Kotlin Versions\n================\n     2.0.0          1.9.0\n================\n"

// sdkmanEnv is a temporary SDKMAN_DIR with a fake login shell.
type sdkmanEnv struct {
	dir   string
	log   string
	rules string
}

// newSdkmanEnv points SDKMAN_DIR and SHELL at a temp installation whose shell
// answers responses, and writes content as the rule file.
func newSdkmanEnv(t *testing.T, content string, responses map[string]testutil.FakeCommand) sdkmanEnv {
	t.Helper()
	dir := t.TempDir()
	bin := t.TempDir()
	log := filepath.Join(bin, "shell.log")
	shell := testutil.WriteFakeShell(t, bin, log, responses)
	t.Setenv("SDKMAN_DIR", dir)
	t.Setenv("SHELL", shell)
	return sdkmanEnv{
		dir:   dir,
		log:   log,
		rules: testutil.WriteFile(t, bin, "rules.yaml", content),
	}
}

func (e sdkmanEnv) commands(t *testing.T) []string {
	t.Helper()
	return testutil.ReadLog(t, e.log)
}

// runCLI executes the root command and returns stdout and stderr.
func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"sdkpin", "--no-color"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
