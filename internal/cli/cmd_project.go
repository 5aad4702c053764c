package cli

import (
	"context"
	"strings"

	"taskwheel/internal/task"

	flag "github.com/spf13/pflag"
)

// ProjectCmd manages projects: "project add <name>" and "project ls".
func ProjectCmd(app *App) *Command {
	flags := flag.NewFlagSet("project", flag.ContinueOnError)

	emoji := flags.String("emoji", "", "Emoji shown before the project name")

	return &Command{
		Flags: flags,
		Usage: "project <add|ls> [name]",
		Short: "Manage projects",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				args = []string{"ls"}
			}

			switch args[0] {
			case "ls":
				projects := app.Control.Projects()
				if len(projects) == 0 {
					o.Println("no projects")

					return nil
				}

				for _, p := range projects {
					count := 0

					for _, t := range app.Control.Tasks() {
						if t.Project != nil && t.Project.ID == p.ID {
							count++
						}
					}

					o.Printf("%s%s  (%d tasks)\n", p.Emoji, p.Name, count)
				}

				return nil
			case "add":
				name := strings.Join(args[1:], " ")
				if strings.TrimSpace(name) == "" {
					return errNameRequired
				}

				p, err := task.NewProject(name, *emoji)
				if err != nil {
					return err
				}

				err = app.Control.AddProject(p)
				if err != nil {
					return err
				}

				o.Println(p.ID)

				return nil
			}

			return errUnknownSubcommand(args[0])
		},
	}
}
