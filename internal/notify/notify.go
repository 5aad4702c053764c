// Package notify delivers reminder notifications. Delivery is best-effort
// and fire-and-forget: a reminder that fails to schedule is logged, never
// surfaced into task state.
package notify

import (
	"log/slog"

	"github.com/google/uuid"

	"taskwheel/internal/task"
)

// Notifier schedules and cancels reminder notifications for tasks.
type Notifier interface {
	// ScheduleReminder registers a notification at the task's reminder
	// time. Tasks without a reminder, or with one in the past, are
	// ignored.
	ScheduleReminder(item task.Item)

	// CancelReminder drops any pending notification for the task.
	CancelReminder(id uuid.UUID)
}

// Nop is a Notifier that does nothing. One-shot CLI invocations use it:
// they exit before any reminder could fire.
type Nop struct{}

// ScheduleReminder does nothing.
func (Nop) ScheduleReminder(task.Item) {}

// CancelReminder does nothing.
func (Nop) CancelReminder(uuid.UUID) {}

// Log is a Notifier that only records schedule/cancel calls to the logger.
// One-shot commands run in verbose mode use it to show what a resident
// daemon would have scheduled.
type Log struct {
	Logger *slog.Logger
}

// ScheduleReminder logs the reminder registration.
func (l Log) ScheduleReminder(item task.Item) {
	if item.ReminderAt == nil {
		return
	}

	l.Logger.Info("reminder scheduled", "task", item.ID, "title", item.Title, "at", item.ReminderAt)
}

// CancelReminder logs the cancellation.
func (l Log) CancelReminder(id uuid.UUID) {
	l.Logger.Info("reminder canceled", "task", id)
}
