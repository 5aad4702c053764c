package planner

import (
	"time"

	"taskwheel/internal/recur"
	"taskwheel/internal/task"
)

// maxRolloverSteps bounds the per-task rule stepping so a pathological rule
// cannot spin. If the cap is hit the due date is left at whatever was
// reached.
const maxRolloverSteps = 512

// RolloverOverdue advances every incomplete task whose due day is before
// today. Non-recurring tasks, completion-based recurrences and sub-day
// rules snap straight to today; day-and-up scheduled recurrences step
// forward along their own cadence until they reach today or later,
// honoring the rule's scope. Reminders keep their time-of-day on the moved
// day.
//
// The sweep is idempotent: a second call on the same day mutates nothing.
// Returns the number of tasks that moved.
func (c *Controller) RolloverOverdue() int {
	c.mu.Lock()

	today := recur.StartOfDay(c.clock.Now())

	var (
		moved       int
		rescheduled []task.Item
	)

	for i := range c.tasks {
		t := &c.tasks[i]
		if t.Done || !t.DueDate.Before(today) {
			continue
		}

		rule := t.Recurrence
		if rule != nil && rule.Basis == recur.Scheduled && !rule.Unit.SubDay() {
			t.DueDate = stepScheduledForward(t.DueDate, *rule, today)
		} else {
			// No recurrence, completion-based cadence, or a sub-day
			// rule whose steps never cross a day boundary: the task
			// stays visible today and the cadence advances only when
			// the user actually completes it.
			t.DueDate = today
		}

		if t.ReminderAt != nil {
			aligned := AlignReminderTime(t.DueDate, *t.ReminderAt)
			t.ReminderAt = &aligned
			rescheduled = append(rescheduled, *t)
		}

		moved++
	}

	if moved > 0 {
		c.persistTasks()
	}

	c.mu.Unlock()

	for _, item := range rescheduled {
		c.notifier.ScheduleReminder(item)
	}

	return moved
}

// stepScheduledForward walks a scheduled-basis due date one rule step at a
// time until its scope-adjusted day reaches today. The scope adjustment is
// folded into the loop condition: a weekend-scoped Sunday landing snaps
// back to Saturday, which can sit before today, and stopping there would
// break the sweep's idempotence.
func stepScheduledForward(due time.Time, rule recur.Rule, today time.Time) time.Time {
	adjusted := recur.ApplyScope(due, rule.Scope)

	for steps := 0; adjusted.Before(today) && steps < maxRolloverSteps; steps++ {
		next := recur.NextOccurrence(due, rule)
		if !next.After(due) {
			// Rule makes no forward progress; leave the date where it
			// reached rather than spin.
			break
		}

		due = next
		adjusted = recur.ApplyScope(due, rule.Scope)
	}

	if adjusted.Before(today) {
		return due
	}

	return adjusted
}
