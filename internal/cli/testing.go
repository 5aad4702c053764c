package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"taskwheel/internal/clock"
)

// CLI runs commands in tests against a temp directory with a frozen clock.
type CLI struct {
	t     *testing.T
	Dir   string
	Env   []string
	Clock *clock.Fake
}

// NewCLI creates a test CLI rooted in a temp directory. XDG_CONFIG_HOME is
// pointed at an empty directory so the developer's global config cannot
// leak into tests. The clock starts at Tue 2024-03-05 09:00 UTC.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	dir := t.TempDir()

	return &CLI{
		t:     t,
		Dir:   dir,
		Env:   []string{"XDG_CONFIG_HOME=" + filepath.Join(dir, "xdg")},
		Clock: clock.NewFake(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)),
	}
}

// Run executes the CLI with the given args and returns stdout, stderr and
// exit code. Args should not include "tw" or "--cwd"; those are added.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput executes the CLI with the given stdin content.
func (r *CLI) RunWithInput(stdin string, args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	var in io.Reader = strings.NewReader(stdin)

	fullArgs := append([]string{"tw", "--cwd", r.Dir}, args...)
	code := Run(in, &outBuf, &errBuf, fullArgs, r.Env, r.Clock)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test on a non-zero exit code.
// Returns trimmed stdout.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// DataDir returns the default data directory under the test root.
func (r *CLI) DataDir() string {
	return filepath.Join(r.Dir, ".taskwheel")
}
