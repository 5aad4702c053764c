package cli

import (
	"context"
	"time"

	flag "github.com/spf13/pflag"
)

// ShowCmd prints the full details of a single task.
func ShowCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <id>",
		Short: "Show task details",
		Long:  "Show task details. <id> may be any unique prefix of the task ID.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			o.Printf("id:        %s\n", t.ID)
			o.Printf("title:     %s\n", t.Title)
			o.Printf("due:       %s\n", t.DueDate.Format(dayFormat))
			o.Printf("done:      %t\n", t.Done)

			if t.CompletedAt != nil {
				o.Printf("completed: %s\n", t.CompletedAt.Format(time.RFC3339))
			}

			if t.Project != nil {
				o.Printf("project:   %s%s\n", t.Project.Emoji, t.Project.Name)
			}

			if t.Tag != "" {
				o.Printf("tag:       %s\n", t.Tag)
			}

			o.Printf("grade:     %s/%s/%s (%d pts)\n", t.Difficulty, t.Resistance, t.Estimate, t.Points())

			if t.ReminderAt != nil {
				o.Printf("reminder:  %s\n", t.ReminderAt.Format("2006-01-02 15:04"))
			}

			if t.Recurrence != nil {
				o.Printf("repeats:   %s\n", describeRule(*t.Recurrence))
			}

			if t.Note != "" {
				o.Printf("note:      %s\n", t.Note)
			}

			return nil
		},
	}
}
