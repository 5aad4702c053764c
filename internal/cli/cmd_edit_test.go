package cli_test

import (
	"strings"
	"testing"

	"taskwheel/internal/cli"
)

func TestMoveChangesDueDayAndDragsReminder(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "dentist", "--due", "2024-03-12", "--remind", "14:30")

	out := c.MustRun("move", id[:8], "2024-03-18")
	if !strings.Contains(out, "due 2024-03-18") {
		t.Errorf("move output = %q", out)
	}

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "reminder:  2024-03-18 14:30") {
		t.Errorf("show after move:\n%s\nwant reminder dragged to new day", show)
	}
}

func TestRemindSetAndClear(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")

	out := c.MustRun("remind", id[:8], "08:15")
	if !strings.Contains(out, "reminder at 2024-03-05 08:15") {
		t.Errorf("remind output = %q", out)
	}

	c.MustRun("remind", id[:8], "--clear")

	if show := c.MustRun("show", id[:8]); strings.Contains(show, "reminder:") {
		t.Errorf("show after clear:\n%s\nwant no reminder line", show)
	}
}

func TestRemindRejectsBadTime(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")

	stderr := c.MustFail("remind", id[:8], "25:99")
	if !strings.Contains(stderr, "invalid time") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRmDeletesTask(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "oops")

	out := c.MustRun("rm", id[:8])
	if !strings.Contains(out, "deleted: oops") {
		t.Errorf("rm output = %q", out)
	}

	stderr := c.MustFail("show", id[:8])
	if !strings.Contains(stderr, "task not found") {
		t.Errorf("show after rm stderr = %q", stderr)
	}
}

func TestAmbiguousPrefixFails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "one")
	c.MustRun("add", "two")

	// The empty prefix matches every task.
	stderr := c.MustFail("show", "")
	if !strings.Contains(stderr, "ambiguous") {
		t.Errorf("stderr = %q", stderr)
	}
}
