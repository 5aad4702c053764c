package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// LogCmd prints the completion history from the ledger, newest first.
func LogCmd(app *App) *Command {
	flags := flag.NewFlagSet("log", flag.ContinueOnError)

	limit := flags.IntP("limit", "n", 20, "Maximum entries to show")

	return &Command{
		Flags: flags,
		Usage: "log [flags]",
		Short: "Show completion history and total points",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if app.Ledger == nil {
				return errLedgerUnavailable
			}

			completions, err := app.Ledger.Recent(ctx, *limit)
			if err != nil {
				return err
			}

			for _, c := range completions {
				o.Printf("%s  %-30s %3d pts  %s\n",
					shortID(c.TaskID), c.Title, c.Points, c.CompletedAt.Format("2006-01-02 15:04"))
			}

			total, err := app.Ledger.TotalPoints(ctx)
			if err != nil {
				return err
			}

			o.Printf("total: %d pts\n", total)

			return nil
		},
	}
}
