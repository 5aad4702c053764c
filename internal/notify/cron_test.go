package notify_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"taskwheel/internal/clock"
	"taskwheel/internal/notify"
	"taskwheel/internal/task"
)

func newTestCron(t *testing.T, now time.Time) *notify.Cron {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return notify.NewCron(time.UTC, clock.NewFake(now), logger)
}

func TestScheduleReminderSkipsPastAndMissing(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := newTestCron(t, now)

	noReminder, err := task.NewItem("no reminder", now)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}

	c.ScheduleReminder(noReminder)

	past, err := task.NewItem("past reminder", now)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}

	pastAt := now.Add(-time.Hour)
	past.ReminderAt = &pastAt

	c.ScheduleReminder(past)

	if got := c.Pending(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}

func TestScheduleAndCancelReminder(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := newTestCron(t, now)

	item, err := task.NewItem("with reminder", now)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}

	at := now.Add(2 * time.Hour)
	item.ReminderAt = &at

	c.ScheduleReminder(item)

	if got := c.Pending(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}

	// Rescheduling the same task replaces the entry instead of stacking.
	c.ScheduleReminder(item)

	if got := c.Pending(); got != 1 {
		t.Errorf("pending after reschedule = %d, want 1", got)
	}

	c.CancelReminder(item.ID)

	if got := c.Pending(); got != 0 {
		t.Errorf("pending after cancel = %d, want 0", got)
	}
}

func TestScheduleDailyRejectsBadSpec(t *testing.T) {
	t.Parallel()

	c := newTestCron(t, time.Now())

	for _, bad := range []string{"", "25:00", "12:61", "noon", "1:2:3"} {
		if _, err := c.ScheduleDaily(bad, func() {}); err == nil {
			t.Errorf("ScheduleDaily(%q) should fail", bad)
		}
	}

	if _, err := c.ScheduleDaily("00:05", func() {}); err != nil {
		t.Errorf("ScheduleDaily(00:05) = %v, want nil", err)
	}
}
