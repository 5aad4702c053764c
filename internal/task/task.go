// Package task defines the task and project records and their scoring,
// plus taskwheel's configuration loading.
package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskwheel/internal/recur"
)

// Difficulty grades how hard a task is.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Resistance grades how much the user dreads starting the task.
type Resistance string

// Resistance levels.
const (
	ResistanceLow    Resistance = "low"
	ResistanceMedium Resistance = "medium"
	ResistanceHigh   Resistance = "high"
)

// Estimate grades the expected time investment.
type Estimate string

// Estimate levels.
const (
	EstimateShort  Estimate = "short"
	EstimateMedium Estimate = "medium"
	EstimateLong   Estimate = "long"
)

// Project groups tasks under a name and an emoji.
type Project struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Emoji string    `json:"emoji"`
}

// NewProject builds a project with a fresh ID.
func NewProject(name, emoji string) (Project, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Project{}, ErrTitleRequired
	}

	return Project{ID: uuid.New(), Name: trimmed, Emoji: emoji}, nil
}

// Item is a single task. DueDate is always normalized to a calendar day;
// ReminderAt carries day plus time-of-day.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Project     *Project   `json:"project,omitempty"`

	// Tag is a single optional label scoped to the task's project.
	Tag string `json:"tag,omitempty"`

	Difficulty Difficulty `json:"difficulty"`
	Resistance Resistance `json:"resistance"`
	Estimate   Estimate   `json:"estimate"`

	DueDate    time.Time   `json:"due_date"`
	Recurrence *recur.Rule `json:"recurrence,omitempty"`
	ReminderAt *time.Time  `json:"reminder_at,omitempty"`

	Note          string     `json:"note,omitempty"`
	NoteUpdatedAt *time.Time `json:"note_updated_at,omitempty"`
}

// NewItem builds an open task due on the given day. The due date is
// normalized to start-of-day.
func NewItem(title string, dueDate time.Time) (Item, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return Item{}, ErrTitleRequired
	}

	return Item{
		ID:         uuid.New(),
		Title:      trimmed,
		Difficulty: DifficultyEasy,
		Resistance: ResistanceLow,
		Estimate:   EstimateShort,
		DueDate:    recur.StartOfDay(dueDate),
	}, nil
}

// Overdue reports whether the task's due day is strictly before the day
// containing now.
func (i Item) Overdue(now time.Time) bool {
	return i.DueDate.Before(recur.StartOfDay(now))
}

// Point weights per grade level.
const (
	pointsBase   = 5
	pointsWeight = 5
)

// Points returns the gamification score awarded for completing the task.
// Each grade contributes one to three weight steps; the all-easy default
// scores 20.
func (i Item) Points() int {
	return pointsBase + pointsWeight*(difficultySteps(i.Difficulty)+resistanceSteps(i.Resistance)+estimateSteps(i.Estimate))
}

func difficultySteps(d Difficulty) int {
	switch d {
	case DifficultyHard:
		return 3
	case DifficultyMedium:
		return 2
	default:
		return 1
	}
}

func resistanceSteps(r Resistance) int {
	switch r {
	case ResistanceHigh:
		return 3
	case ResistanceMedium:
		return 2
	default:
		return 1
	}
}

func estimateSteps(e Estimate) int {
	switch e {
	case EstimateLong:
		return 3
	case EstimateMedium:
		return 2
	default:
		return 1
	}
}

// IsValidDifficulty checks if the difficulty is one of the known levels.
func IsValidDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// IsValidResistance checks if the resistance is one of the known levels.
func IsValidResistance(r Resistance) bool {
	return r == ResistanceLow || r == ResistanceMedium || r == ResistanceHigh
}

// IsValidEstimate checks if the estimate is one of the known levels.
func IsValidEstimate(e Estimate) bool {
	return e == EstimateShort || e == EstimateMedium || e == EstimateLong
}
