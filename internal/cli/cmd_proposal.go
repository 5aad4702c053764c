package cli

import (
	"context"
	"fmt"
	"strings"

	"taskwheel/internal/planner"
	"taskwheel/internal/task"

	flag "github.com/spf13/pflag"
)

// PendingCmd lists queued next-occurrence proposals, oldest first.
func PendingCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("pending", flag.ContinueOnError),
		Usage: "pending",
		Short: "List proposed next occurrences awaiting confirmation",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			proposals := app.Control.PendingProposals()
			if len(proposals) == 0 {
				o.Println("no pending proposals")

				return nil
			}

			for _, p := range proposals {
				o.Printf("%s  %-30s due %s\n", shortID(p.SourceID), p.Task.Title, p.Task.DueDate.Format(dayFormat))
			}

			return nil
		},
	}
}

// ConfirmCmd accepts a queued proposal, optionally moving its due day.
func ConfirmCmd(app *App) *Command {
	flags := flag.NewFlagSet("confirm", flag.ContinueOnError)

	due := flags.StringP("due", "d", "", "Override the proposed due day")

	return &Command{
		Flags: flags,
		Usage: "confirm <id> [flags]",
		Short: "Accept a proposed next occurrence",
		Long: "Accept a proposed next occurrence, storing it as a real task.\n" +
			"<id> is a prefix of the completed source task's ID (see pending).",
		Exec: func(_ context.Context, o *IO, args []string) error {
			proposal, err := proposalByPrefix(app, args)
			if err != nil {
				return err
			}

			var edited *planner.Proposal

			if *due != "" {
				day, dayErr := parseDay(*due, app.Clock.Now())
				if dayErr != nil {
					return dayErr
				}

				copied := proposal
				copied.Task.DueDate = day

				if copied.Task.ReminderAt != nil {
					at := planner.AlignReminderTime(day, *copied.Task.ReminderAt)
					copied.Task.ReminderAt = &at
				}

				edited = &copied
			}

			if edited != nil {
				return confirmProposal(app, o, proposal, &edited.Task)
			}

			return confirmProposal(app, o, proposal, nil)
		},
	}
}

// DiscardCmd drops a queued proposal, ending its series.
func DiscardCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("discard", flag.ContinueOnError),
		Usage: "discard <id>",
		Short: "Discard a proposed next occurrence",
		Exec: func(_ context.Context, o *IO, args []string) error {
			proposal, err := proposalByPrefix(app, args)
			if err != nil {
				return err
			}

			err = app.Control.DiscardProposal(proposal.SourceID)
			if err != nil {
				return err
			}

			o.Printf("%s series ended: %s\n", shortID(proposal.SourceID), proposal.Task.Title)

			return nil
		},
	}
}

// proposalByPrefix resolves a source-task ID prefix against the queue.
func proposalByPrefix(app *App, args []string) (planner.Proposal, error) {
	if len(args) == 0 {
		return planner.Proposal{}, errIDRequired
	}

	prefix := strings.ToLower(args[0])

	for _, p := range app.Control.PendingProposals() {
		if strings.HasPrefix(p.SourceID.String(), prefix) {
			return p, nil
		}
	}

	return planner.Proposal{}, fmt.Errorf("%w: %s", task.ErrProposalNotFound, prefix)
}
