// Package planner owns the in-memory task and project collections and
// implements the task lifecycle: completion with recurrence proposals, the
// overdue rollover sweep, and reminder alignment. It is the single writer;
// external readers only ever get snapshots.
package planner

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskwheel/internal/clock"
	"taskwheel/internal/notify"
	"taskwheel/internal/recur"
	"taskwheel/internal/store"
	"taskwheel/internal/task"
)

// Persister saves the collections and the proposal queue to durable
// storage.
type Persister interface {
	SaveTasks(tasks []task.Item) error
	SaveProjects(projects []task.Project) error
	SaveProposals(proposals []store.Proposal) error
}

// CompletionLog records completed occurrences for the points ledger.
type CompletionLog interface {
	AppendCompletion(ctx context.Context, c store.Completion) error
}

// Proposal is a tentative next occurrence generated when a recurring task
// is completed, pending user confirmation.
type Proposal = store.Proposal

// Controller is the task lifecycle controller. All methods are safe for
// concurrent use; mutations happen under a single writer lock and are
// persisted before the method returns.
type Controller struct {
	mu       sync.Mutex
	tasks    []task.Item
	projects []task.Project

	// pending holds the latest unconfirmed proposal per originating task.
	// Keyed by source ID so completing two recurring tasks back to back
	// cannot drop a proposal; order keeps listing stable.
	pending map[uuid.UUID]task.Item
	order   []uuid.UUID

	persist  Persister
	ledger   CompletionLog
	notifier notify.Notifier
	clock    clock.Clock
	logger   *slog.Logger

	onProposal func(Proposal)
}

// Option configures a Controller.
type Option func(*Controller)

// WithCompletionLog records every completion in the given ledger.
func WithCompletionLog(l CompletionLog) Option {
	return func(c *Controller) { c.ledger = l }
}

// WithProposalHandler registers the single subscriber notified when a
// completion generates a next-occurrence proposal.
func WithProposalHandler(handler func(Proposal)) Option {
	return func(c *Controller) { c.onProposal = handler }
}

// New builds a controller. The persister, notifier, clock and logger are
// required collaborators.
func New(persist Persister, notifier notify.Notifier, clk clock.Clock, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		pending:  make(map[uuid.UUID]task.Item),
		persist:  persist,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load seeds the controller's collections and proposal queue, replacing
// any current state.
func (c *Controller) Load(tasks []task.Item, projects []task.Project, proposals []Proposal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tasks = slices.Clone(tasks)
	c.projects = slices.Clone(projects)

	c.pending = make(map[uuid.UUID]task.Item, len(proposals))
	c.order = c.order[:0]

	for _, p := range proposals {
		if _, ok := c.pending[p.SourceID]; !ok {
			c.order = append(c.order, p.SourceID)
		}

		c.pending[p.SourceID] = p.Task
	}
}

// Tasks returns a snapshot of the task collection.
func (c *Controller) Tasks() []task.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.tasks)
}

// Projects returns a snapshot of the project collection.
func (c *Controller) Projects() []task.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.projects)
}

// Find returns the task with the given ID.
func (c *Controller) Find(id uuid.UUID) (task.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return task.Item{}, false
	}

	return c.tasks[idx], true
}

// FindByPrefix resolves a task by a unique prefix of its ID string.
func (c *Controller) FindByPrefix(prefix string) (task.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		found task.Item
		count int
	)

	for _, t := range c.tasks {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(prefix)) {
			found = t
			count++
		}
	}

	switch count {
	case 0:
		return task.Item{}, task.ErrTaskNotFound
	case 1:
		return found, nil
	default:
		return task.Item{}, ErrAmbiguousID
	}
}

// AddTask appends a task, schedules its reminder and persists.
func (c *Controller) AddTask(item task.Item) error {
	c.mu.Lock()
	c.tasks = append(c.tasks, item)
	c.persistTasks()
	c.mu.Unlock()

	c.notifier.ScheduleReminder(item)

	return nil
}

// AddProject appends a project and persists the project collection.
func (c *Controller) AddProject(p task.Project) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.projects = append(c.projects, p)

	err := c.persist.SaveProjects(slices.Clone(c.projects))
	if err != nil {
		c.logger.Error("persist projects failed", "err", err)
	}

	return nil
}

// FindProjectByName returns the project with the given (case-insensitive)
// name.
func (c *Controller) FindProjectByName(name string) (task.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.projects {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return task.Project{}, false
}

// Delete removes a task, cancels its reminder and persists. Any pending
// proposal generated by the task is discarded with it.
func (c *Controller) Delete(id uuid.UUID) error {
	c.mu.Lock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()

		return task.ErrTaskNotFound
	}

	c.tasks = slices.Delete(c.tasks, idx, idx+1)

	if c.dropPending(id) {
		c.persistPending()
	}

	c.persistTasks()
	c.mu.Unlock()

	c.notifier.CancelReminder(id)

	return nil
}

// SetDueDate moves a task to a new day. The day is normalized and an
// existing reminder keeps its time-of-day on the new day.
func (c *Controller) SetDueDate(id uuid.UUID, day time.Time) error {
	c.mu.Lock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()

		return task.ErrTaskNotFound
	}

	t := &c.tasks[idx]
	t.DueDate = recur.StartOfDay(day)

	if t.ReminderAt != nil {
		aligned := AlignReminderTime(t.DueDate, *t.ReminderAt)
		t.ReminderAt = &aligned
	}

	updated := *t

	c.persistTasks()
	c.mu.Unlock()

	if updated.ReminderAt != nil {
		c.notifier.ScheduleReminder(updated)
	}

	return nil
}

// SetReminder sets a task's reminder timestamp and schedules it.
func (c *Controller) SetReminder(id uuid.UUID, at time.Time) error {
	c.mu.Lock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()

		return task.ErrTaskNotFound
	}

	c.tasks[idx].ReminderAt = &at
	updated := c.tasks[idx]

	c.persistTasks()
	c.mu.Unlock()

	c.notifier.ScheduleReminder(updated)

	return nil
}

// ClearReminder removes a task's reminder and cancels the notification.
func (c *Controller) ClearReminder(id uuid.UUID) error {
	c.mu.Lock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()

		return task.ErrTaskNotFound
	}

	c.tasks[idx].ReminderAt = nil

	c.persistTasks()
	c.mu.Unlock()

	c.notifier.CancelReminder(id)

	return nil
}

// SetNote replaces a task's note text and stamps the edit time. An empty
// note clears both.
func (c *Controller) SetNote(id uuid.UUID, note string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return task.ErrTaskNotFound
	}

	t := &c.tasks[idx]
	t.Note = note

	if note == "" {
		t.NoteUpdatedAt = nil
	} else {
		now := c.clock.Now()
		t.NoteUpdatedAt = &now
	}

	c.persistTasks()

	return nil
}

// indexOf returns the position of the task with the given ID, or -1.
// Callers must hold the lock.
func (c *Controller) indexOf(id uuid.UUID) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}

	return -1
}

// persistTasks saves the task collection. Failures are logged, never
// propagated: the in-memory collection stays the source of truth for the
// session and the next successful save wins. Callers must hold the lock.
func (c *Controller) persistTasks() {
	err := c.persist.SaveTasks(slices.Clone(c.tasks))
	if err != nil {
		c.logger.Error("persist tasks failed", "err", err)
	}
}

// persistPending saves the proposal queue. Same failure policy as
// persistTasks. Callers must hold the lock.
func (c *Controller) persistPending() {
	proposals := make([]Proposal, 0, len(c.order))

	for _, id := range c.order {
		proposals = append(proposals, Proposal{SourceID: id, Task: c.pending[id]})
	}

	err := c.persist.SaveProposals(proposals)
	if err != nil {
		c.logger.Error("persist proposals failed", "err", err)
	}
}

// dropPending removes any proposal keyed by id, reporting whether one was
// present. Callers must hold the lock.
func (c *Controller) dropPending(id uuid.UUID) bool {
	if _, ok := c.pending[id]; !ok {
		return false
	}

	delete(c.pending, id)

	c.order = slices.DeleteFunc(c.order, func(other uuid.UUID) bool {
		return other == id
	})

	return true
}
