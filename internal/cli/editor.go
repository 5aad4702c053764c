package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"taskwheel/internal/task"
)

// resolveEditor picks an editor using the env slice.
// Priority: config.Editor -> $EDITOR -> vi -> nano -> error.
func resolveEditor(cfg task.Config, env []string) (string, error) {
	if cfg.Editor != "" {
		if _, err := exec.LookPath(cfg.Editor); err == nil {
			return cfg.Editor, nil
		}
	}

	if editor := envValue(env, "EDITOR"); editor != "" {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, nil
		}
	}

	if _, err := exec.LookPath("vi"); err == nil {
		return "vi", nil
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano", nil
	}

	return "", errNoEditorFound
}

// runEditor opens path in the editor, attached to the real terminal, and
// waits for it to exit.
func runEditor(editor, path string) error {
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with code %d", exitErr.ExitCode())
		}

		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}

// envValue looks up key in a slice of KEY=VALUE pairs.
func envValue(env []string, key string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, key+"="); ok {
			return after
		}
	}

	return ""
}
