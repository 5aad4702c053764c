package cli_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"taskwheel/internal/cli"
)

func TestAddPrintsTaskID(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun("add", "buy milk")

	if _, err := uuid.Parse(out); err != nil {
		t.Fatalf("add output %q is not a task ID: %v", out, err)
	}

	list := c.MustRun("ls")
	if !strings.Contains(list, "buy milk") || !strings.Contains(list, "due 2024-03-05") {
		t.Errorf("ls output:\n%s\nwant buy milk due today", list)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("add", "   ")
	if !strings.Contains(stderr, "title is required") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAddWithDueAndReminder(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "dentist", "--due", "2024-03-12", "--remind", "14:30")

	show := c.MustRun("show", id[:8])

	if !strings.Contains(show, "due:       2024-03-12") {
		t.Errorf("show output:\n%s\nwant due 2024-03-12", show)
	}

	if !strings.Contains(show, "reminder:  2024-03-12 14:30") {
		t.Errorf("show output:\n%s\nwant reminder at 14:30", show)
	}
}

func TestAddTomorrowShorthand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("add", "pack bags", "--due", "tomorrow")

	list := c.MustRun("ls")
	if !strings.Contains(list, "due 2024-03-06") {
		t.Errorf("ls output:\n%s\nwant due tomorrow (2024-03-06)", list)
	}
}

func TestAddRecurring(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "water plants", "--every", "3d")

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "every 3 days, scheduled basis") {
		t.Errorf("show output:\n%s\nwant recurrence description", show)
	}
}

func TestAddRecurringWeekdaysWithLimit(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "standup", "--every", "1d", "--scope", "weekdays", "--limit", "10")

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "weekdays only") || !strings.Contains(show, "0/10 done") {
		t.Errorf("show output:\n%s\nwant weekdays-only rule with limit", show)
	}
}

func TestAddRejectsBadEvery(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("add", "x", "--every", "3fortnights")
	if !strings.Contains(stderr, "invalid --every") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAddRejectsUnknownProject(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("add", "x", "--project", "home")
	if !strings.Contains(stderr, "project not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAddToProject(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("project", "add", "home", "--emoji", "🏠")
	c.MustRun("add", "fix faucet", "--project", "home")

	list := c.MustRun("ls", "--project", "home")
	if !strings.Contains(list, "fix faucet") {
		t.Errorf("ls --project output:\n%s", list)
	}

	projects := c.MustRun("project", "ls")
	if !strings.Contains(projects, "🏠home") || !strings.Contains(projects, "(1 tasks)") {
		t.Errorf("project ls output:\n%s", projects)
	}
}

func TestAddGrades(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "refactor billing", "--difficulty", "hard", "--resistance", "high", "--estimate", "long")

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "hard/high/long (50 pts)") {
		t.Errorf("show output:\n%s\nwant 50 pts grade line", show)
	}

	stderr := c.MustFail("add", "x", "--difficulty", "brutal")
	if !strings.Contains(stderr, "invalid difficulty") {
		t.Errorf("stderr = %q", stderr)
	}
}
