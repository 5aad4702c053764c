package notify

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"taskwheel/internal/clock"
	"taskwheel/internal/task"
)

// Cron is a cron-backed Notifier for the daemon mode. Each reminder becomes
// a one-shot cron entry that fires at the reminder's wall-clock time and
// removes itself; a daily maintenance job can be registered alongside.
type Cron struct {
	cron   *cron.Cron
	clock  clock.Clock
	logger *slog.Logger

	// Deliver is invoked when a reminder fires. Defaults to logging the
	// reminder; tests and future desktop integrations replace it.
	Deliver func(item task.Item)

	mu      sync.Mutex
	entries map[uuid.UUID]cron.EntryID
}

// NewCron builds a Cron notifier in the given location.
func NewCron(loc *time.Location, clk clock.Clock, logger *slog.Logger) *Cron {
	c := &Cron{
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		clock:   clk,
		logger:  logger,
		entries: make(map[uuid.UUID]cron.EntryID),
	}

	c.Deliver = func(item task.Item) {
		logger.Info("reminder", "task", item.ID, "title", item.Title)
	}

	return c
}

// Start begins firing scheduled entries.
func (c *Cron) Start() {
	c.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (c *Cron) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

// ScheduleReminder registers a one-shot entry at the task's reminder time.
// A reminder in the past is skipped. Replaces any existing entry for the
// same task.
func (c *Cron) ScheduleReminder(item task.Item) {
	if item.ReminderAt == nil || !item.ReminderAt.After(c.clock.Now()) {
		return
	}

	c.CancelReminder(item.ID)

	spec := oneShotSpec(*item.ReminderAt)
	taskID := item.ID

	entryID, err := c.cron.AddFunc(spec, func() {
		c.Deliver(item)
		c.remove(taskID)
	})
	if err != nil {
		// Best-effort: a reminder that cannot be scheduled is logged
		// and dropped, task state is untouched.
		c.logger.Warn("schedule reminder failed", "task", item.ID, "err", err)

		return
	}

	c.mu.Lock()
	c.entries[item.ID] = entryID
	c.mu.Unlock()
}

// CancelReminder drops the task's pending entry, if any.
func (c *Cron) CancelReminder(id uuid.UUID) {
	c.mu.Lock()
	entryID, ok := c.entries[id]

	if ok {
		delete(c.entries, id)
	}
	c.mu.Unlock()

	if ok {
		c.cron.Remove(entryID)
	}
}

// Pending returns the number of scheduled reminder entries.
func (c *Cron) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// ScheduleDaily registers a job every day at the given HH:MM time string.
// The daemon uses this for the midnight rollover sweep.
func (c *Cron) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}

	return c.cron.AddFunc(spec, job)
}

func (c *Cron) remove(id uuid.UUID) {
	c.mu.Lock()
	entryID, ok := c.entries[id]

	if ok {
		delete(c.entries, id)
	}
	c.mu.Unlock()

	if ok {
		c.cron.Remove(entryID)
	}
}

// oneShotSpec pins a cron entry to the exact second of t. The entry would
// recur yearly, but the job removes itself after the first fire.
func oneShotSpec(t time.Time) string {
	return fmt.Sprintf("%d %d %d %d %d *", t.Second(), t.Minute(), t.Hour(), t.Day(), int(t.Month()))
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidDailyTime, timeStr)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: bad hour in %q", ErrInvalidDailyTime, timeStr)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: bad minute in %q", ErrInvalidDailyTime, timeStr)
	}

	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
