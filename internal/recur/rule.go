// Package recur implements the recurrence engine: given a rule describing
// "repeat every N units", it computes the next occurrence date with
// calendar-aware arithmetic (month-length clamping, weekday/weekend
// restrictions, day normalization).
package recur

import (
	"fmt"
	"time"
)

// Unit is the granularity of a recurrence interval.
type Unit string

// Recurrence units.
const (
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
	Weeks   Unit = "weeks"
	Months  Unit = "months"
	Years   Unit = "years"
)

// validUnits are the allowed recurrence units.
var validUnits = []Unit{Minutes, Hours, Days, Weeks, Months, Years}

// SubDay reports whether the unit is finer than a calendar day.
// Sub-day recurrences always base off the completion instant.
func (u Unit) SubDay() bool {
	return u == Minutes || u == Hours
}

// Basis selects the date the next occurrence is computed from.
type Basis string

// Recurrence bases.
const (
	// Scheduled computes from the prior due date: the cadence marches
	// forward on its own schedule regardless of when the task is done.
	Scheduled Basis = "scheduled"
	// Completion computes from the actual completion timestamp.
	Completion Basis = "completion"
)

// Scope restricts which calendar days are eligible occurrence targets.
type Scope string

// Recurrence scopes.
const (
	AllDays      Scope = "allDays"
	WeekdaysOnly Scope = "weekdaysOnly"
	WeekendsOnly Scope = "weekendsOnly"
)

// Rule describes a recurrence series. Values are immutable once built
// except OccurrencesDone, which counts completed occurrences.
type Rule struct {
	Unit     Unit  `json:"unit"`
	Interval int   `json:"interval"`
	Basis    Basis `json:"basis"`
	Scope    Scope `json:"scope"`

	// CountLimit caps the number of generated occurrences. Nil means
	// unlimited.
	CountLimit *int `json:"count_limit,omitempty"`

	// OccurrencesDone is incremented each time an occurrence is completed.
	// Never exceeds CountLimit when one is set.
	OccurrencesDone int `json:"occurrences_done"`

	// Anchor is the original reference date of the series. Stable across
	// edits unless explicitly reset.
	Anchor time.Time `json:"anchor"`
}

// NewRule validates and builds a rule. Interval and countLimit (when
// non-nil) must be >= 1; letting an invalid interval through would make the
// engine's day-walking loops spin forever, so it is rejected here.
func NewRule(unit Unit, interval int, basis Basis, scope Scope, countLimit *int, anchor time.Time) (Rule, error) {
	if !IsValidUnit(unit) {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}

	if basis != Scheduled && basis != Completion {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidBasis, basis)
	}

	if scope != AllDays && scope != WeekdaysOnly && scope != WeekendsOnly {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	if interval < 1 {
		return Rule{}, fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
	}

	if countLimit != nil && *countLimit < 1 {
		return Rule{}, fmt.Errorf("%w: %d", ErrInvalidCountLimit, *countLimit)
	}

	return Rule{
		Unit:       unit,
		Interval:   interval,
		Basis:      basis,
		Scope:      scope,
		CountLimit: countLimit,
		Anchor:     anchor,
	}, nil
}

// IsValidUnit checks if the unit is one of the allowed recurrence units.
func IsValidUnit(unit Unit) bool {
	for _, u := range validUnits {
		if u == unit {
			return true
		}
	}

	return false
}

// Exhausted reports whether completing one more occurrence would reach the
// rule's count limit, ending the series.
func (r Rule) Exhausted() bool {
	return r.CountLimit != nil && r.OccurrencesDone+1 >= *r.CountLimit
}

// WithOccurrenceDone returns a copy of the rule with the done-counter set to
// doneCount. Used when spawning the next occurrence of a series.
func (r Rule) WithOccurrenceDone(doneCount int) Rule {
	next := r
	next.OccurrencesDone = doneCount

	return next
}
