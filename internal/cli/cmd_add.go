package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskwheel/internal/recur"
	"taskwheel/internal/task"

	flag "github.com/spf13/pflag"
)

// AddCmd creates a new task.
func AddCmd(app *App) *Command {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)

	due := flags.StringP("due", "d", "today", "Due day (YYYY-MM-DD, today, tomorrow)")
	remind := flags.StringP("remind", "r", "", "Reminder time on the due day (HH:MM)")
	project := flags.StringP("project", "p", "", "Project name")
	tag := flags.String("tag", "", "Tag label")
	note := flags.String("note", "", "Note text")
	difficulty := flags.String("difficulty", string(task.DifficultyEasy), "Difficulty: easy|medium|hard")
	resistance := flags.String("resistance", string(task.ResistanceLow), "Resistance: low|medium|high")
	estimate := flags.String("estimate", string(task.EstimateShort), "Estimate: short|medium|long")
	every := flags.String("every", "", "Recurrence interval (30m, 2h, 3d, 1w, 2mo, 1y)")
	basis := flags.String("basis", "", "Recurrence basis: scheduled|completion")
	scope := flags.String("scope", "", "Recurrence scope: all|weekdays|weekends")
	limit := flags.Int("limit", 0, "Stop the series after N occurrences")

	return &Command{
		Flags: flags,
		Usage: "add <title> [flags]",
		Short: "Create a task, prints its ID",
		Long: "Create a task due on a given day, optionally recurring.\n" +
			"Recurrence flags other than --every are ignored unless --every is set.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return errTitleRequired
			}

			now := app.Clock.Now()

			dueDay, err := parseDay(*due, now)
			if err != nil {
				return err
			}

			item, err := task.NewItem(title, dueDay)
			if err != nil {
				return err
			}

			item.Tag = strings.TrimSpace(*tag)
			item.Note = *note

			if item.Note != "" {
				item.NoteUpdatedAt = &now
			}

			err = applyGrades(&item, *difficulty, *resistance, *estimate)
			if err != nil {
				return err
			}

			if *project != "" {
				p, ok := app.Control.FindProjectByName(*project)
				if !ok {
					return fmt.Errorf("%w: %q", task.ErrProjectNotFound, *project)
				}

				item.Project = &p
			}

			if *remind != "" {
				at, remindErr := reminderOn(item.DueDate, *remind)
				if remindErr != nil {
					return remindErr
				}

				item.ReminderAt = &at
			}

			if *every != "" {
				rule, ruleErr := buildRule(*every, *basis, *scope, *limit, item.DueDate)
				if ruleErr != nil {
					return ruleErr
				}

				item.Recurrence = &rule
			}

			err = app.Control.AddTask(item)
			if err != nil {
				return err
			}

			o.Println(item.ID)

			return nil
		},
	}
}

func applyGrades(item *task.Item, difficulty, resistance, estimate string) error {
	d := task.Difficulty(difficulty)
	if !task.IsValidDifficulty(d) {
		return fmt.Errorf("%w: %q", task.ErrInvalidDifficulty, difficulty)
	}

	r := task.Resistance(resistance)
	if !task.IsValidResistance(r) {
		return fmt.Errorf("%w: %q", task.ErrInvalidResistance, resistance)
	}

	e := task.Estimate(estimate)
	if !task.IsValidEstimate(e) {
		return fmt.Errorf("%w: %q", task.ErrInvalidEstimate, estimate)
	}

	item.Difficulty = d
	item.Resistance = r
	item.Estimate = e

	return nil
}

func buildRule(every, basis, scope string, limit int, anchor time.Time) (recur.Rule, error) {
	unit, interval, err := parseEvery(every)
	if err != nil {
		return recur.Rule{}, err
	}

	b, err := parseBasis(basis)
	if err != nil {
		return recur.Rule{}, err
	}

	s, err := parseScope(scope)
	if err != nil {
		return recur.Rule{}, err
	}

	var countLimit *int

	if limit != 0 {
		if limit < 1 {
			return recur.Rule{}, errLimitTooSmall
		}

		countLimit = &limit
	}

	return recur.NewRule(unit, interval, b, s, countLimit, anchor)
}

// reminderOn builds a reminder instant from a day and an HH:MM string.
func reminderOn(day time.Time, clockTime string) (time.Time, error) {
	hour, minute, err := parseClockTime(clockTime)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
