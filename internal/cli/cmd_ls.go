package cli

import (
	"context"
	"slices"
	"strings"

	"taskwheel/internal/task"

	flag "github.com/spf13/pflag"
)

// LsCmd lists tasks. Open tasks only by default, sorted by due day.
func LsCmd(app *App) *Command {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)

	all := flags.BoolP("all", "a", false, "Include completed tasks")
	doneOnly := flags.Bool("done", false, "Show only completed tasks, with points")
	overdue := flags.Bool("overdue", false, "Show only overdue tasks")
	project := flags.StringP("project", "p", "", "Filter by project name")

	return &Command{
		Flags: flags,
		Usage: "ls [flags]",
		Short: "List tasks",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			now := app.Clock.Now()
			tasks := app.Control.Tasks()

			slices.SortStableFunc(tasks, func(a, b task.Item) int {
				return a.DueDate.Compare(b.DueDate)
			})

			shown := 0

			for _, t := range tasks {
				switch {
				case *doneOnly && !t.Done:
					continue
				case !*doneOnly && !*all && t.Done:
					continue
				case *overdue && (t.Done || !t.Overdue(now)):
					continue
				case *project != "" && !inProject(t, *project):
					continue
				}

				if *doneOnly {
					o.Printf("%s  %d pts\n", formatTaskLine(t, now), t.Points())
				} else {
					o.Println(formatTaskLine(t, now))
				}

				shown++
			}

			if shown == 0 {
				o.Println("no tasks")
			}

			return nil
		},
	}
}

func inProject(t task.Item, name string) bool {
	return t.Project != nil && strings.EqualFold(t.Project.Name, name)
}
