package cli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskwheel/internal/cli"
)

func TestNoteSetInline(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk")

	out := c.MustRun("note", id[:8], "remember", "the", "oat", "one")
	if !strings.Contains(out, "note updated") {
		t.Errorf("note output = %q", out)
	}

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "note:      remember the oat one") {
		t.Errorf("show after note:\n%s", show)
	}
}

func TestNoteClear(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy milk", "--note", "old text")

	out := c.MustRun("note", id[:8], "--clear")
	if !strings.Contains(out, "note cleared") {
		t.Errorf("note --clear output = %q", out)
	}

	show := c.MustRun("show", id[:8])
	if strings.Contains(show, "note:") {
		t.Errorf("show should not print a cleared note:\n%s", show)
	}
}

func TestNoteOpensConfiguredEditor(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// A stand-in editor that overwrites the temp file it is given.
	editor := filepath.Join(c.Dir, "fake-editor.sh")
	script := "#!/bin/sh\nprintf 'written by editor' > \"$1\"\n"

	if err := os.WriteFile(editor, []byte(script), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}

	config := fmt.Sprintf("{\"editor\": %q}", editor)
	if err := os.WriteFile(filepath.Join(c.Dir, ".tw.json"), []byte(config), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	id := c.MustRun("add", "buy milk")
	c.MustRun("note", id[:8])

	show := c.MustRun("show", id[:8])
	if !strings.Contains(show, "note:      written by editor") {
		t.Errorf("show after editor note:\n%s", show)
	}
}

func TestNoteUnknownTask(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("note", "deadbeef", "text")
	if !strings.Contains(stderr, "task not found") {
		t.Errorf("stderr = %q", stderr)
	}
}
