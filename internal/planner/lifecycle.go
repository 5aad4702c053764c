package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskwheel/internal/recur"
	"taskwheel/internal/store"
	"taskwheel/internal/task"
)

// ToggleDone flips a task's done state.
//
// Marking done stamps the completion time, cancels the reminder, records
// the completion in the ledger, and - for a recurring task whose series is
// not exhausted - generates exactly one next-occurrence proposal. The
// proposal is held pending until ConfirmNextOccurrence or DiscardProposal;
// it is not stored as a task yet.
//
// Marking not-done clears the completion timestamp and retracts any
// proposal the completion generated; an overdue due date snaps to today,
// the reminder keeps its time-of-day on the new day, and the reminder is
// rescheduled since the task is active again.
//
// The collection is persisted exactly once per call.
func (c *Controller) ToggleDone(id uuid.UUID) error {
	c.mu.Lock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()

		return task.ErrTaskNotFound
	}

	now := c.clock.Now()
	t := &c.tasks[idx]

	var (
		emitted  *Proposal
		snapshot task.Item
	)

	if !t.Done {
		t.Done = true
		completedAt := now
		t.CompletedAt = &completedAt

		c.recordCompletion(*t, now)

		if rule := t.Recurrence; rule != nil && !rule.Exhausted() {
			next := buildNextOccurrence(*t, *rule, rule.OccurrencesDone+1, now)

			if _, exists := c.pending[t.ID]; !exists {
				c.order = append(c.order, t.ID)
			}

			c.pending[t.ID] = next
			c.persistPending()
			emitted = &Proposal{SourceID: t.ID, Task: next}
		}
	} else {
		t.Done = false
		t.CompletedAt = nil

		// Reopening retracts the completion, so the proposal it generated
		// goes with it.
		if c.dropPending(t.ID) {
			c.persistPending()
		}

		today := recur.StartOfDay(now)
		if t.DueDate.Before(today) {
			t.DueDate = today

			if t.ReminderAt != nil {
				aligned := AlignReminderTime(today, *t.ReminderAt)
				t.ReminderAt = &aligned
			}
		}
	}

	snapshot = *t
	wasDone := snapshot.Done

	c.persistTasks()
	c.mu.Unlock()

	if wasDone {
		c.notifier.CancelReminder(snapshot.ID)
	} else {
		c.notifier.ScheduleReminder(snapshot)
	}

	if emitted != nil && c.onProposal != nil {
		c.onProposal(*emitted)
	}

	return nil
}

// PendingProposals returns the unconfirmed proposals in the order their
// source tasks were completed.
func (c *Controller) PendingProposals() []Proposal {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Proposal, 0, len(c.order))

	for _, id := range c.order {
		out = append(out, Proposal{SourceID: id, Task: c.pending[id]})
	}

	return out
}

// ConfirmNextOccurrence commits the pending proposal generated by sourceID
// as a stored task. A non-nil edited task replaces the proposed one (the
// user reviewed and changed it). Returns the stored task.
func (c *Controller) ConfirmNextOccurrence(sourceID uuid.UUID, edited *task.Item) (task.Item, error) {
	c.mu.Lock()

	proposed, ok := c.pending[sourceID]
	if !ok {
		c.mu.Unlock()

		return task.Item{}, task.ErrProposalNotFound
	}

	if edited != nil {
		proposed = *edited
	}

	c.dropPending(sourceID)
	c.persistPending()
	c.tasks = append(c.tasks, proposed)
	c.persistTasks()
	c.mu.Unlock()

	if proposed.ReminderAt != nil {
		c.notifier.ScheduleReminder(proposed)
	}

	return proposed, nil
}

// DiscardProposal drops the pending proposal generated by sourceID.
func (c *Controller) DiscardProposal(sourceID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[sourceID]; !ok {
		return task.ErrProposalNotFound
	}

	c.dropPending(sourceID)
	c.persistPending()

	return nil
}

// buildNextOccurrence computes the proposed next occurrence of a completed
// recurring task. Sub-day rules base off the completion instant regardless
// of basis; day-and-up rules pick the base day from the rule's basis. A
// reminder keeps its wall-clock time on the computed day.
func buildNextOccurrence(src task.Item, rule recur.Rule, doneCount int, now time.Time) task.Item {
	next := src
	next.ID = uuid.New()
	next.Done = false
	next.CompletedAt = nil
	next.Note = ""
	next.NoteUpdatedAt = nil

	nextRule := rule.WithOccurrenceDone(doneCount)
	next.Recurrence = &nextRule

	if rule.Unit.SubDay() {
		at := now.Add(rule.SubDayDuration())
		next.DueDate = recur.StartOfDay(at)

		if src.ReminderAt != nil {
			next.ReminderAt = &at
		} else {
			next.ReminderAt = nil
		}

		return next
	}

	base := src.DueDate
	if rule.Basis == recur.Completion {
		base = recur.StartOfDay(now)
	}

	next.DueDate = recur.NextOccurrence(base, rule)

	if src.ReminderAt != nil {
		aligned := AlignReminderTime(next.DueDate, *src.ReminderAt)
		next.ReminderAt = &aligned
	} else {
		next.ReminderAt = nil
	}

	return next
}

// recordCompletion appends the completed occurrence to the points ledger.
// Ledger failures are logged and swallowed: history must never block the
// task list. Callers must hold the lock.
func (c *Controller) recordCompletion(t task.Item, now time.Time) {
	if c.ledger == nil {
		return
	}

	err := c.ledger.AppendCompletion(context.Background(), store.Completion{
		TaskID:      t.ID,
		Title:       t.Title,
		Points:      t.Points(),
		CompletedAt: now,
	})
	if err != nil {
		c.logger.Error("record completion failed", "task", t.ID, "err", err)
	}
}

// AlignReminderTime combines the hour and minute of sourceTime with the
// calendar day of day, keeping a reminder's wall-clock time stable while
// its day moves. Pure and total.
func AlignReminderTime(day, sourceTime time.Time) time.Time {
	year, month, dom := day.Date()

	return time.Date(year, month, dom, sourceTime.Hour(), sourceTime.Minute(), 0, 0, day.Location())
}
