package cli_test

import (
	"strings"
	"testing"

	"taskwheel/internal/cli"
)

func TestDoneAwardsPointsAndHidesFromLs(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")

	out := c.MustRun("done", id[:8])
	if !strings.Contains(out, "done: buy milk (+20 pts)") {
		t.Errorf("done output = %q", out)
	}

	if list := c.MustRun("ls"); !strings.Contains(list, "no tasks") {
		t.Errorf("ls after done:\n%s\nwant empty list", list)
	}

	doneList := c.MustRun("ls", "--done")
	if !strings.Contains(doneList, "buy milk") || !strings.Contains(doneList, "20 pts") {
		t.Errorf("ls --done:\n%s", doneList)
	}
}

func TestDoneTwiceReopens(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")
	c.MustRun("done", id[:8])

	out := c.MustRun("done", id[:8])
	if !strings.Contains(out, "reopened: buy milk") {
		t.Errorf("second done output = %q", out)
	}

	if list := c.MustRun("ls"); !strings.Contains(list, "buy milk") {
		t.Errorf("ls after reopen:\n%s", list)
	}
}

func TestUndoneRequiresCompletedTask(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")

	stderr := c.MustFail("undone", id[:8])
	if !strings.Contains(stderr, "task is not done") {
		t.Errorf("stderr = %q", stderr)
	}

	c.MustRun("done", id[:8])

	out := c.MustRun("undone", id[:8])
	if !strings.Contains(out, "reopened: buy milk") {
		t.Errorf("undone output = %q", out)
	}
}

func TestDoneRecurringYesStoresNextOccurrence(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")

	out := c.MustRun("done", id[:8], "--yes")
	if !strings.Contains(out, "next: water plants due 2024-03-08") {
		t.Errorf("done --yes output = %q", out)
	}

	list := c.MustRun("ls")
	if !strings.Contains(list, "water plants") || !strings.Contains(list, "due 2024-03-08") {
		t.Errorf("ls after confirm:\n%s", list)
	}
}

func TestDoneRecurringSkipEndsSeries(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")
	c.MustRun("done", id[:8], "--skip")

	if list := c.MustRun("ls"); !strings.Contains(list, "no tasks") {
		t.Errorf("ls after skip:\n%s\nwant no next occurrence", list)
	}

	if pending := c.MustRun("pending"); !strings.Contains(pending, "no pending proposals") {
		t.Errorf("pending after skip:\n%s", pending)
	}
}

func TestDoneLaterKeepsProposalAcrossInvocations(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")
	c.MustRun("done", id[:8], "--later")

	// The queue survives the process boundary: each Run is a fresh load
	// from disk.
	pending := c.MustRun("pending")
	if !strings.Contains(pending, "water plants") || !strings.Contains(pending, "due 2024-03-08") {
		t.Errorf("pending:\n%s", pending)
	}

	out := c.MustRun("confirm", id[:8])
	if !strings.Contains(out, "due 2024-03-08") {
		t.Errorf("confirm output = %q", out)
	}

	if pending := c.MustRun("pending"); !strings.Contains(pending, "no pending proposals") {
		t.Errorf("pending after confirm:\n%s", pending)
	}
}

func TestConfirmWithDueOverride(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")
	c.MustRun("done", id[:8], "--later")

	out := c.MustRun("confirm", id[:8], "--due", "2024-03-10")
	if !strings.Contains(out, "due 2024-03-10") {
		t.Errorf("confirm --due output = %q", out)
	}
}

func TestDiscardEndsSeriesLater(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")
	c.MustRun("done", id[:8], "--later")

	out := c.MustRun("discard", id[:8])
	if !strings.Contains(out, "series ended: water plants") {
		t.Errorf("discard output = %q", out)
	}

	stderr := c.MustFail("confirm", id[:8])
	if !strings.Contains(stderr, "no pending occurrence") {
		t.Errorf("confirm after discard stderr = %q", stderr)
	}
}

func TestDoneInteractiveConfirm(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")

	stdout, stderr, code := c.RunWithInput("y\n", "done", id[:8])
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if !strings.Contains(stdout, "next occurrence: water plants due 2024-03-08") {
		t.Errorf("prompt output:\n%s", stdout)
	}

	if !strings.Contains(stdout, "next: water plants due 2024-03-08") {
		t.Errorf("confirmation output:\n%s", stdout)
	}
}

func TestDoneInteractiveEditDate(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d", "--remind", "09:30")

	stdout, stderr, code := c.RunWithInput("e\n2024-03-15\n", "done", id[:8])
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if !strings.Contains(stdout, "due 2024-03-15") {
		t.Errorf("edited confirmation output:\n%s", stdout)
	}

	list := c.MustRun("ls")
	if !strings.Contains(list, "due 2024-03-15") {
		t.Errorf("ls after edited confirm:\n%s", list)
	}
}

func TestDoneInteractiveSkip(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")

	_, stderr, code := c.RunWithInput("s\n", "done", id[:8])
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if list := c.MustRun("ls"); !strings.Contains(list, "no tasks") {
		t.Errorf("ls after interactive skip:\n%s", list)
	}
}

func TestDoneCountLimitEndsSeries(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "course", "--every", "1d", "--limit", "1")

	out := c.MustRun("done", id[:8], "--yes")
	if strings.Contains(out, "next:") {
		t.Errorf("exhausted series proposed an occurrence: %q", out)
	}

	if pending := c.MustRun("pending"); !strings.Contains(pending, "no pending proposals") {
		t.Errorf("pending:\n%s", pending)
	}
}
