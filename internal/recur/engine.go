package recur

import "time"

// NextOccurrence computes the next occurrence after base according to the
// rule. The result is normalized to start-of-day in base's location.
//
// For Scheduled rules base is typically the prior due date; for Completion
// rules it is the completion timestamp. The function is total: it never
// fails, and a malformed interval is clamped to 1 rather than looping.
func NextOccurrence(base time.Time, rule Rule) time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	candidate := base

	switch rule.Unit {
	case Minutes:
		candidate = base.Add(time.Duration(interval) * time.Minute)
	case Hours:
		candidate = base.Add(time.Duration(interval) * time.Hour)
	case Days:
		candidate = addDaysScoped(interval, base, rule.Scope)
	case Weeks:
		candidate = ApplyScope(base.AddDate(0, 0, interval*daysPerWeek), rule.Scope)
	case Months:
		candidate = ApplyScope(addMonthsClamped(interval, base), rule.Scope)
	case Years:
		candidate = ApplyScope(addYearsClamped(interval, base), rule.Scope)
	}

	return StartOfDay(candidate)
}

const daysPerWeek = 7

// StartOfDay normalizes t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SubDayDuration returns the rule's interval as a wall-clock duration.
// Only meaningful for minute/hour rules.
func (r Rule) SubDayDuration() time.Duration {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}

	if r.Unit == Hours {
		return time.Duration(interval) * time.Hour
	}

	return time.Duration(interval) * time.Minute
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// addDaysScoped adds count days respecting the scope: plain addition for
// allDays, weekday-only walking for weekdaysOnly, Saturday-anchored weekend
// walking for weekendsOnly.
func addDaysScoped(count int, t time.Time, scope Scope) time.Time {
	switch scope {
	case WeekdaysOnly:
		return addWeekdays(count, t)
	case WeekendsOnly:
		return addWeekends(count, t)
	default:
		return t.AddDate(0, 0, count)
	}
}

// addWeekdays walks forward one day at a time, counting only Mon-Fri.
func addWeekdays(count int, t time.Time) time.Time {
	d := t
	added := 0

	for added < count {
		d = d.AddDate(0, 0, 1)
		if !IsWeekend(d) {
			added++
		}
	}

	return d
}

// addWeekends walks forward counting only Sat/Sun days. Saturday is the
// canonical weekend anchor: a non-weekend base first snaps to the next
// Saturday, and the result snaps back to its weekend's Saturday.
func addWeekends(count int, t time.Time) time.Time {
	d := t
	if !IsWeekend(d) {
		d = nextSaturday(d)
	}

	added := 0
	for added < count {
		d = d.AddDate(0, 0, 1)
		if IsWeekend(d) {
			added++
		}
	}

	return sameWeekendSaturday(d)
}

// nextSaturday returns the first Saturday strictly after t, or t+7d when t
// is itself a Saturday.
func nextSaturday(t time.Time) time.Time {
	diff := int(time.Saturday - t.Weekday())
	if diff <= 0 {
		diff += daysPerWeek
	}

	return t.AddDate(0, 0, diff)
}

// sameWeekendSaturday maps a weekend day onto its weekend's Saturday: a
// Sunday moves back one day, a Saturday stays. Non-weekend input (which the
// callers never produce) falls back to the previous Saturday.
func sameWeekendSaturday(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t
	case time.Sunday:
		return t.AddDate(0, 0, -1)
	default:
		return t.AddDate(0, 0, -int(t.Weekday())-1)
	}
}

// addMonthsClamped adds months with day-of-month clamping: when the target
// month is shorter than the original day-of-month, the result lands on the
// target month's last day (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(months int, t time.Time) time.Time {
	year, month, day := t.Date()

	// Add months to the first of the month so Go's date normalization
	// cannot spill into the following month.
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	target := first.AddDate(0, months, 0)
	targetYear, targetMonth, _ := target.Date()

	clamped := min(max(1, day), lastDayOfMonth(targetYear, targetMonth, t.Location()))

	return time.Date(targetYear, targetMonth, clamped, 0, 0, 0, 0, t.Location())
}

// addYearsClamped adds years with the same day clamping; Feb 29 on a
// non-leap target year clamps to Feb 28.
func addYearsClamped(years int, t time.Time) time.Time {
	year, month, day := t.Date()

	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	target := first.AddDate(years, 0, 0)
	targetYear, targetMonth, _ := target.Date()

	clamped := min(max(1, day), lastDayOfMonth(targetYear, targetMonth, t.Location()))

	return time.Date(targetYear, targetMonth, clamped, 0, 0, 0, 0, t.Location())
}

// lastDayOfMonth returns the number of days in the given month. Day zero of
// the following month is the last day of this one.
func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// ApplyScope snaps a computed date onto an eligible day for the scope:
// weekdaysOnly advances weekend landings to the next weekday, weekendsOnly
// maps any landing onto a Saturday (forward to the next Saturday from a
// weekday, back to the weekend's own Saturday from a Sunday).
func ApplyScope(t time.Time, scope Scope) time.Time {
	switch scope {
	case WeekdaysOnly:
		d := t
		for IsWeekend(d) {
			d = d.AddDate(0, 0, 1)
		}

		return d
	case WeekendsOnly:
		if IsWeekend(t) {
			return sameWeekendSaturday(t)
		}

		return nextSaturday(t)
	default:
		return t
	}
}
