package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// RolloverCmd carries incomplete past-due tasks forward to today. Safe to
// run repeatedly; a second run changes nothing.
func RolloverCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rollover", flag.ContinueOnError),
		Usage: "rollover",
		Short: "Move incomplete overdue tasks to today",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			moved := app.Control.RolloverOverdue()

			switch moved {
			case 0:
				o.Println("nothing to roll over")
			case 1:
				o.Println("rolled over 1 task")
			default:
				o.Printf("rolled over %d tasks\n", moved)
			}

			return nil
		},
	}
}
