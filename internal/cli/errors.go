package cli

import (
	"errors"
	"fmt"
)

var (
	errIDRequired        = errors.New("task id is required")
	errTitleRequired     = errors.New("title is required")
	errNameRequired      = errors.New("project name is required")
	errInvalidEvery      = errors.New("invalid --every (expected forms: 30m, 2h, 3d, 1w, 2mo, 1y)")
	errInvalidDate       = errors.New("invalid date (expected YYYY-MM-DD, today or tomorrow)")
	errInvalidTime       = errors.New("invalid time (expected HH:MM)")
	errInvalidScope      = errors.New("invalid --scope (all|weekdays|weekends)")
	errInvalidBasis      = errors.New("invalid --basis (scheduled|completion)")
	errLimitTooSmall     = errors.New("--limit must be at least 1")
	errLedgerUnavailable = errors.New("completions ledger is unavailable")
	errNotDone           = errors.New("task is not done")
	errNoEditorFound     = errors.New("no editor found (set config.editor, $EDITOR, or install vi/nano)")
)

func errFlagRequiresArg(name string) error {
	return fmt.Errorf("flag %s requires an argument", name)
}

func errUnknownSubcommand(name string) error {
	return fmt.Errorf("unknown subcommand: %s", name)
}
