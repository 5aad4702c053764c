package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
)

// NoteCmd edits a task's note. Text given on the command line is stored
// directly; with no text the note opens in the configured editor.
func NoteCmd(app *App) *Command {
	flags := flag.NewFlagSet("note", flag.ContinueOnError)

	clear := flags.Bool("clear", false, "Remove the note")

	return &Command{
		Flags: flags,
		Usage: "note <id> [text]",
		Short: "Edit a task's note, inline or in your editor",
		Long: "Set a task's note. Text after the id is stored as-is; without text\n" +
			"the note opens in an editor (config.editor, then $EDITOR, then\n" +
			"vi/nano).",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errIDRequired
			}

			t, err := app.Control.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			if *clear {
				if err := app.Control.SetNote(t.ID, ""); err != nil {
					return err
				}

				o.Printf("%s note cleared\n", shortID(t.ID))

				return nil
			}

			note := strings.Join(args[1:], " ")
			if note == "" {
				note, err = editNoteInEditor(app, t.Note)
				if err != nil {
					return err
				}
			}

			if err := app.Control.SetNote(t.ID, note); err != nil {
				return err
			}

			o.Printf("%s note updated\n", shortID(t.ID))

			return nil
		},
	}
}

// editNoteInEditor round-trips the current note through a temp file in the
// user's editor and returns the edited text.
func editNoteInEditor(app *App, current string) (string, error) {
	editor, err := resolveEditor(app.Config, app.Env)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "tw-note-*.txt")
	if err != nil {
		return "", err
	}

	path := tmp.Name()

	defer func() { _ = os.Remove(path) }()

	_, err = tmp.WriteString(current)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return "", err
	}

	if err := runEditor(editor, path); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(edited)), nil
}
