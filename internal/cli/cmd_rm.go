package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// RmCmd deletes a task. Pending proposals sourced from it are dropped too.
func RmCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rm", flag.ContinueOnError),
		Usage: "rm <id>",
		Short: "Delete a task",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			err = app.Control.Delete(t.ID)
			if err != nil {
				return err
			}

			o.Printf("%s deleted: %s\n", shortID(t.ID), t.Title)

			return nil
		},
	}
}
