package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskwheel/internal/recur"
	"taskwheel/internal/task"
)

const dayFormat = "2006-01-02"

// parseDay parses a calendar day. Accepts YYYY-MM-DD plus the shorthands
// "today" and "tomorrow" relative to now.
func parseDay(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return recur.StartOfDay(now), nil
	case "tomorrow":
		return recur.StartOfDay(now).AddDate(0, 0, 1), nil
	}

	t, err := time.ParseInLocation(dayFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, s)
	}

	return t, nil
}

// parseClockTime parses an HH:MM wall-clock time.
func parseClockTime(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTime, s)
	}

	hour, hourErr := strconv.Atoi(hh)
	minute, minErr := strconv.Atoi(mm)

	if hourErr != nil || minErr != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTime, s)
	}

	return hour, minute, nil
}

// everySuffixes maps --every suffixes to recurrence units. Longer
// suffixes first so "mo" wins over "m".
var everySuffixes = []struct {
	suffix string
	unit   recur.Unit
}{
	{"min", recur.Minutes},
	{"mo", recur.Months},
	{"m", recur.Minutes},
	{"h", recur.Hours},
	{"d", recur.Days},
	{"w", recur.Weeks},
	{"y", recur.Years},
}

// parseEvery parses interval shorthand like "30m", "2h", "3d", "1w",
// "2mo", "1y" into a unit and interval.
func parseEvery(s string) (recur.Unit, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, e := range everySuffixes {
		num, found := strings.CutSuffix(s, e.suffix)
		if !found {
			continue
		}

		n, err := strconv.Atoi(num)
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("%w: %q", errInvalidEvery, s)
		}

		return e.unit, n, nil
	}

	return "", 0, fmt.Errorf("%w: %q", errInvalidEvery, s)
}

// parseScope maps the CLI spelling to the stored scope value.
func parseScope(s string) (recur.Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return recur.AllDays, nil
	case "weekdays":
		return recur.WeekdaysOnly, nil
	case "weekends":
		return recur.WeekendsOnly, nil
	}

	return "", fmt.Errorf("%w: %q", errInvalidScope, s)
}

func parseBasis(s string) (recur.Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scheduled":
		return recur.Scheduled, nil
	case "completion":
		return recur.Completion, nil
	}

	return "", fmt.Errorf("%w: %q", errInvalidBasis, s)
}

// shortID returns the 8-character display prefix of a task ID.
func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}

// formatTaskLine renders one task for list output.
func formatTaskLine(t task.Item, now time.Time) string {
	var b strings.Builder

	mark := "[ ]"
	if t.Done {
		mark = "[x]"
	}

	fmt.Fprintf(&b, "%s %s  %-30s due %s", shortID(t.ID), mark, t.Title, t.DueDate.Format(dayFormat))

	if t.Overdue(now) && !t.Done {
		b.WriteString("  OVERDUE")
	}

	if t.Project != nil {
		fmt.Fprintf(&b, "  %s%s", t.Project.Emoji, t.Project.Name)
	}

	if t.Tag != "" {
		fmt.Fprintf(&b, "  #%s", t.Tag)
	}

	if t.Recurrence != nil {
		fmt.Fprintf(&b, "  (every %d %s)", t.Recurrence.Interval, t.Recurrence.Unit)
	}

	return b.String()
}

// describeRule renders a recurrence rule for show output.
func describeRule(r recur.Rule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "every %d %s, %s basis", r.Interval, r.Unit, r.Basis)

	switch r.Scope {
	case recur.WeekdaysOnly:
		b.WriteString(", weekdays only")
	case recur.WeekendsOnly:
		b.WriteString(", weekends only")
	case recur.AllDays:
	}

	if r.CountLimit != nil {
		fmt.Fprintf(&b, ", %d/%d done", r.OccurrencesDone, *r.CountLimit)
	}

	return b.String()
}
