package sdkman

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// RunResult holds the captured output of a process.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// System abstracts the environment, filesystem and process operations the
// client needs, so tests can run without SDKMAN installed.
type System interface {
	LookupEnv(key string) (string, bool)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Run(ctx context.Context, name string, args []string) (RunResult, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookupEnv returns the value and presence of an environment variable.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ReadDir reads the named directory and returns all directory entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Run executes name with args and captures stdout and stderr. Stdin is empty,
// so sdk prompts take their default answer.
func (RealSystem) Run(ctx context.Context, name string, args []string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return RunResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

var _ System = RealSystem{}
