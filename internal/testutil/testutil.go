package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mvdan.cc/sh/v3/syntax"
)

// FakeCommand is one canned response of a fake login shell.
type FakeCommand struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// WriteFakeShell writes an executable stand-in for $SHELL. It is invoked as
// `shell -l -i -c "<command>"`, appends each command to log, and answers the
// commands listed in responses. Unknown commands exit 127. Response output is
// stored next to the script and replayed with cat.
// t is the active test; dir is the output directory; log is the command log path.
func WriteFakeShell(t *testing.T, dir string, log string, responses map[string]FakeCommand) string {
	t.Helper()
	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	script.WriteString("cmd=\"$4\"\n")
	fmt.Fprintf(&script, "printf '%%s\\n' \"$cmd\" >> %s\n", quote(t, log))
	script.WriteString("case \"$cmd\" in\n")
	n := 0
	for command, response := range responses {
		n++
		fmt.Fprintf(&script, "  %s)\n", quote(t, command))
		if response.Stdout != "" {
			out := WriteFile(t, dir, fmt.Sprintf("fakeshell.%d.out", n), response.Stdout)
			fmt.Fprintf(&script, "    cat %s\n", quote(t, out))
		}
		if response.Stderr != "" {
			errOut := WriteFile(t, dir, fmt.Sprintf("fakeshell.%d.err", n), response.Stderr)
			fmt.Fprintf(&script, "    cat %s >&2\n", quote(t, errOut))
		}
		fmt.Fprintf(&script, "    exit %d\n    ;;\n", response.ExitCode)
	}
	script.WriteString("  *)\n    echo \"unexpected command: $cmd\" >&2\n    exit 127\n    ;;\nesac\n")

	path := filepath.Join(dir, "fakeshell")
	if err := os.WriteFile(path, []byte(script.String()), 0o755); err != nil {
		t.Fatalf("write fake shell: %v", err)
	}
	return path
}

// ReadLog returns the commands recorded by a fake shell, in order.
func ReadLog(t *testing.T, log string) []string {
	t.Helper()
	data, err := os.ReadFile(log)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read fake shell log: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// MkInstalled creates candidates/<candidate>/<version> directories under sdkmanDir.
func MkInstalled(t *testing.T, sdkmanDir string, candidate string, versions ...string) {
	t.Helper()
	for _, version := range versions {
		if err := os.MkdirAll(filepath.Join(sdkmanDir, "candidates", candidate, version), 0o755); err != nil {
			t.Fatalf("mkdir installed version: %v", err)
		}
	}
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// quote renders s as a single POSIX shell word.
func quote(t *testing.T, s string) string {
	t.Helper()
	quoted, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		t.Fatalf("quote %q: %v", s, err)
	}
	return quoted
}
