package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
)

// DaemonCmd runs the reminder scheduler in the foreground. It fires
// reminders for open tasks and sweeps overdue tasks forward once a day.
func DaemonCmd(app *App) *Command {
	flags := flag.NewFlagSet("daemon", flag.ContinueOnError)

	sweepAt := flags.String("sweep-at", "00:05", "Daily rollover time (HH:MM)")

	return &Command{
		Flags: flags,
		Usage: "daemon [flags]",
		Short: "Run the reminder and rollover scheduler",
		Long: "Run in the foreground, firing reminders for open tasks and rolling\n" +
			"incomplete overdue tasks forward to today once per day. Stops on\n" +
			"SIGINT or SIGTERM.",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			// Catch up before scheduling anything: days may have passed
			// since the daemon last ran.
			moved := app.Control.RolloverOverdue()
			if moved > 0 {
				o.Printf("rolled over %d overdue tasks\n", moved)
			}

			_, err := app.Cron.ScheduleDaily(*sweepAt, func() {
				n := app.Control.RolloverOverdue()
				if n > 0 {
					o.Printf("rolled over %d overdue tasks\n", n)
				}
			})
			if err != nil {
				return err
			}

			for _, t := range app.Control.Tasks() {
				if !t.Done {
					app.Cron.ScheduleReminder(t)
				}
			}

			app.Cron.Start()
			defer app.Cron.Stop()

			o.Printf("daemon running, %d reminders scheduled\n", app.Cron.Pending())

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()

			o.Println("daemon stopped")

			return nil
		},
	}
}
