package cli

import (
	"context"

	"taskwheel/internal/planner"
	"taskwheel/internal/task"

	flag "github.com/spf13/pflag"
)

// DoneCmd toggles a task's completion state. Completing a recurring task
// queues a proposed next occurrence, which this command resolves inline
// unless told to leave it pending.
func DoneCmd(app *App) *Command {
	flags := flag.NewFlagSet("done", flag.ContinueOnError)

	yes := flags.BoolP("yes", "y", false, "Accept the proposed next occurrence without asking")
	skip := flags.Bool("skip", false, "Discard the proposed next occurrence, ending the series")
	later := flags.Bool("later", false, "Leave the proposal pending (resolve with confirm/discard)")

	return &Command{
		Flags: flags,
		Usage: "done <id> [flags]",
		Short: "Toggle task completion",
		Long: "Toggle a task between done and open. Completing a recurring task\n" +
			"proposes its next occurrence; confirm, edit or skip it here, or keep\n" +
			"it pending for later.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			wasDone := t.Done

			err = app.Control.ToggleDone(t.ID)
			if err != nil {
				return err
			}

			if wasDone {
				o.Printf("%s reopened: %s\n", shortID(t.ID), t.Title)

				return nil
			}

			o.Printf("%s done: %s (+%d pts)\n", shortID(t.ID), t.Title, t.Points())

			proposal, ok := pendingFor(app, t.ID.String())
			if !ok {
				return nil
			}

			switch {
			case *skip:
				return app.Control.DiscardProposal(proposal.SourceID)
			case *yes:
				return confirmProposal(app, o, proposal, nil)
			case *later:
				o.Printf("next occurrence pending, resolve with: tw confirm %s\n", shortID(proposal.SourceID))

				return nil
			}

			return resolveInteractively(app, o, proposal)
		},
	}
}

// UndoneCmd reopens a completed task. Unlike done it refuses to flip an
// already-open task, so it is safe in scripts.
func UndoneCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("undone", flag.ContinueOnError),
		Usage: "undone <id>",
		Short: "Reopen a completed task",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			if !t.Done {
				return errNotDone
			}

			err = app.Control.ToggleDone(t.ID)
			if err != nil {
				return err
			}

			o.Printf("%s reopened: %s\n", shortID(t.ID), t.Title)

			return nil
		},
	}
}

// resolveInteractively walks the user through the proposed next occurrence.
func resolveInteractively(app *App, o *IO, proposal planner.Proposal) error {
	o.Printf("next occurrence: %s due %s\n", proposal.Task.Title, proposal.Task.DueDate.Format(dayFormat))

	for {
		answer, ok := app.promptLine(o, "confirm? [y]es / [e]dit date / [s]kip / [l]ater: ")
		if !ok {
			// Input exhausted; keep the proposal pending.
			return nil
		}

		switch answer {
		case "y", "yes", "":
			return confirmProposal(app, o, proposal, nil)
		case "s", "skip":
			return app.Control.DiscardProposal(proposal.SourceID)
		case "l", "later":
			return nil
		case "e", "edit":
			day, dayOK := app.promptLine(o, "new due day (YYYY-MM-DD): ")
			if !dayOK {
				return nil
			}

			due, err := parseDay(day, app.Clock.Now())
			if err != nil {
				o.ErrPrintln("error:", err)

				continue
			}

			edited := proposal.Task
			edited.DueDate = due

			if edited.ReminderAt != nil {
				at := planner.AlignReminderTime(due, *edited.ReminderAt)
				edited.ReminderAt = &at
			}

			return confirmProposal(app, o, proposal, &edited)
		default:
			o.Println("unrecognized answer:", answer)
		}
	}
}

func confirmProposal(app *App, o *IO, proposal planner.Proposal, edited *task.Item) error {
	stored, err := app.Control.ConfirmNextOccurrence(proposal.SourceID, edited)
	if err != nil {
		return err
	}

	o.Printf("%s next: %s due %s\n", shortID(stored.ID), stored.Title, stored.DueDate.Format(dayFormat))

	return nil
}

func pendingFor(app *App, sourceID string) (planner.Proposal, bool) {
	for _, p := range app.Control.PendingProposals() {
		if p.SourceID.String() == sourceID {
			return p, true
		}
	}

	return planner.Proposal{}, false
}
