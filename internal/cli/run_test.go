package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskwheel/internal/cli"
)

func TestNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.Run()
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout, "Usage: tw") {
		t.Errorf("usage output missing, got:\n%s", stdout)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("frobnicate")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "unknown command") {
		t.Errorf("stderr = %q, want unknown command error", stderr)
	}
}

func TestPrintConfigDefaults(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("print-config")

	if !strings.Contains(stdout, "data_dir="+c.DataDir()) {
		t.Errorf("print-config output:\n%s\nwant data_dir=%s", stdout, c.DataDir())
	}

	if !strings.Contains(stdout, "(defaults only)") {
		t.Errorf("print-config should report defaults only, got:\n%s", stdout)
	}
}

func TestProjectConfigFileWithComments(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	cfg := `{
  // data lives in a custom spot
  "data_dir": "my-tasks",
}`

	err := os.WriteFile(filepath.Join(c.Dir, ".tw.json"), []byte(cfg), 0o600)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout := c.MustRun("print-config")

	want := filepath.Join(c.Dir, "my-tasks")
	if !strings.Contains(stdout, "data_dir="+want) {
		t.Errorf("print-config output:\n%s\nwant data_dir=%s", stdout, want)
	}

	c.MustRun("add", "task in custom dir")

	if _, statErr := os.Stat(filepath.Join(want, "tasks.json")); statErr != nil {
		t.Errorf("tasks.json not written under configured data dir: %v", statErr)
	}
}

func TestDataDirFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("--data-dir", "elsewhere", "print-config")

	want := filepath.Join(c.Dir, "elsewhere")
	if !strings.Contains(stdout, "data_dir="+want) {
		t.Errorf("print-config output:\n%s\nwant data_dir=%s", stdout, want)
	}
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("--config", "nope.json", "ls")

	if !strings.Contains(stderr, "nope.json") {
		t.Errorf("stderr = %q, want mention of the missing file", stderr)
	}
}

func TestVerboseLogsReminderScheduling(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "call dentist", "--due", "2024-03-06")

	_, stderr, code := c.Run("--verbose", "remind", id[:8], "14:15")
	if code != 0 {
		t.Fatalf("remind failed: %s", stderr)
	}

	if !strings.Contains(stderr, "reminder scheduled") {
		t.Errorf("verbose run should log the scheduling, stderr:\n%s", stderr)
	}

	// Without --verbose the one-shot notifier is silent.
	_, stderr, code = c.Run("remind", id[:8], "15:00")
	if code != 0 {
		t.Fatalf("remind failed: %s", stderr)
	}

	if strings.Contains(stderr, "reminder scheduled") {
		t.Errorf("quiet run should not log scheduling, stderr:\n%s", stderr)
	}
}
