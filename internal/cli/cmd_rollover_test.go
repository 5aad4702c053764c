package cli_test

import (
	"strings"
	"testing"
	"time"

	"taskwheel/internal/cli"
)

func TestRolloverMovesOverdueToToday(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "old chore", "--due", "2024-03-01")
	c.MustRun("add", "future", "--due", "2024-03-20")

	out := c.MustRun("rollover")
	if !strings.Contains(out, "rolled over 1 task") {
		t.Errorf("rollover output = %q", out)
	}

	list := c.MustRun("ls")
	if !strings.Contains(list, "old chore") || strings.Contains(list, "due 2024-03-01") {
		t.Errorf("ls after rollover:\n%s", list)
	}

	if strings.Contains(list, "OVERDUE") {
		t.Errorf("no task should remain overdue:\n%s", list)
	}
}

func TestRolloverIsIdempotentAcrossRuns(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "old chore", "--due", "2024-03-01")
	c.MustRun("rollover")

	out := c.MustRun("rollover")
	if !strings.Contains(out, "nothing to roll over") {
		t.Errorf("second rollover output = %q", out)
	}
}

func TestRolloverStepsScheduledRecurrence(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "daily run", "--due", "2024-02-29", "--every", "1d")
	c.MustRun("rollover")

	list := c.MustRun("ls")
	if !strings.Contains(list, "due 2024-03-05") {
		t.Errorf("ls after rollover:\n%s\nwant daily run stepped to today", list)
	}
}

func TestLsOverdueFilter(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "late", "--due", "2024-03-01")
	c.MustRun("add", "on time", "--due", "2024-03-06")

	list := c.MustRun("ls", "--overdue")
	if !strings.Contains(list, "late") || strings.Contains(list, "on time") {
		t.Errorf("ls --overdue:\n%s", list)
	}

	if !strings.Contains(list, "OVERDUE") {
		t.Errorf("overdue marker missing:\n%s", list)
	}
}

func TestRolloverAfterDaysPass(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "daily run", "--due", "today", "--every", "1d")
	c.Clock.Advance(48 * time.Hour)

	out := c.MustRun("rollover")
	if !strings.Contains(out, "rolled over 1 task") {
		t.Errorf("rollover output = %q", out)
	}

	list := c.MustRun("ls")
	if !strings.Contains(list, "due 2024-03-07") {
		t.Errorf("ls two days later:\n%s\nwant daily run stepped to the new today", list)
	}
}
