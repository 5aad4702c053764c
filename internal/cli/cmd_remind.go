package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// RemindCmd sets or clears a task's reminder. The time applies on the
// task's due day.
func RemindCmd(app *App) *Command {
	flags := flag.NewFlagSet("remind", flag.ContinueOnError)

	clear := flags.Bool("clear", false, "Remove the reminder")

	return &Command{
		Flags: flags,
		Usage: "remind <id> <HH:MM>",
		Short: "Set a reminder on the task's due day",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			if *clear {
				return app.Control.ClearReminder(t.ID)
			}

			if len(args) < 2 {
				return errInvalidTime
			}

			at, err := reminderOn(t.DueDate, args[1])
			if err != nil {
				return err
			}

			err = app.Control.SetReminder(t.ID, at)
			if err != nil {
				return err
			}

			o.Printf("%s reminder at %s\n", shortID(t.ID), at.Format("2006-01-02 15:04"))

			return nil
		},
	}
}

// MoveCmd reschedules a task to a different day, dragging any reminder's
// wall-clock time along with it.
func MoveCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("move", flag.ContinueOnError),
		Usage: "move <id> <day>",
		Short: "Change a task's due day",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			if len(args) < 2 {
				return errInvalidDate
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			day, err := parseDay(args[1], app.Clock.Now())
			if err != nil {
				return err
			}

			err = app.Control.SetDueDate(t.ID, day)
			if err != nil {
				return err
			}

			o.Printf("%s due %s\n", shortID(t.ID), day.Format(dayFormat))

			return nil
		},
	}
}
