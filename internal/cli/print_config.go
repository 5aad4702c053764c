package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			o.Println("data_dir=" + app.DataDir)

			if app.Config.Editor != "" {
				o.Println("editor=" + app.Config.Editor)
			}

			o.Println("")
			o.Println("# sources")

			if app.Sources.Global == "" && app.Sources.Project == "" {
				o.Println("(defaults only)")

				return nil
			}

			if app.Sources.Global != "" {
				o.Println("global_config=" + app.Sources.Global)
			}

			if app.Sources.Project != "" {
				o.Println("project_config=" + app.Sources.Project)
			}

			return nil
		},
	}
}
