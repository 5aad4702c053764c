package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"taskwheel/internal/clock"
	"taskwheel/internal/notify"
	"taskwheel/internal/planner"
	"taskwheel/internal/store"
	"taskwheel/internal/task"
)

// App bundles the wired collaborators every command works against.
type App struct {
	Config   task.Config
	Sources  task.ConfigSources
	DataDir  string
	Env      []string
	Store    *store.Store
	Ledger   *store.Ledger
	Control  *planner.Controller
	Notifier notify.Notifier
	Clock    clock.Clock
	Stdin    io.Reader
	Logger   *slog.Logger

	// Cron is only set for the daemon, the one command that stays
	// resident long enough for a scheduler to fire.
	Cron *notify.Cron

	stdinReader *bufio.Reader
}

// Run is the main entry point. A nil clk uses the system clock. Returns
// exit code.
func Run(stdin io.Reader, out, errOut io.Writer, args []string, env []string, clk clock.Clock) int {
	o := NewIO(out, errOut)

	if len(args) < 2 {
		printUsage(o)

		return 0
	}

	if clk == nil {
		clk = clock.System{}
	}

	// Parse global flags
	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	// Default workDir to current directory
	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.ErrPrintln("error: cannot get working directory:", err)

			return 1
		}
	}

	// Load and validate config
	cliOverrides := task.Config{DataDir: flags.dataDir}

	cfg, sources, err := task.LoadConfig(workDir, flags.configPath, cliOverrides, flags.hasDataDirOverride, env)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(o)

		return 1
	}

	// Resolve data directory to absolute path
	dataDirAbs := cfg.DataDir
	if !filepath.IsAbs(dataDirAbs) {
		dataDirAbs = filepath.Join(workDir, dataDirAbs)
	}

	if len(flags.remaining) == 0 {
		printUsage(o)

		return 0
	}

	cmdName := flags.remaining[0]
	if cmdName == "-h" || cmdName == "--help" {
		printUsage(o)

		return 0
	}

	app, cleanup, err := newApp(cfg, sources, dataDirAbs, clk, stdin, errOut, o, env, cmdName, flags.verbose)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	defer cleanup()

	return dispatch(app, o, cmdName, flags.remaining[1:])
}

// newApp opens the store and ledger, loads the collections and wires the
// lifecycle controller. The ledger is best-effort: points history must
// never block the task list.
//
// Notifier wiring depends on the command. One-shot invocations exit before
// any reminder could fire, so they get a no-op notifier (or a logging one
// under --verbose, to show what would be scheduled). Only the daemon gets
// the real cron scheduler.
func newApp(
	cfg task.Config, sources task.ConfigSources, dataDir string,
	clk clock.Clock, stdin io.Reader, errOut io.Writer, o *IO,
	env []string, cmdName string, verbose bool,
) (*App, func(), error) {
	s, err := store.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	ledger, ledgerErr := store.OpenLedger(context.Background(), s.LedgerPath())
	if ledgerErr != nil {
		o.Warn("completions ledger unavailable:", ledgerErr)

		ledger = nil
	}

	var (
		notifier notify.Notifier = notify.Nop{}
		cron     *notify.Cron
	)

	switch {
	case cmdName == "daemon":
		cron = notify.NewCron(time.Local, clk, logger)
		notifier = cron
	case verbose:
		notifier = notify.Log{Logger: logger}
	}

	opts := []planner.Option{}
	if ledger != nil {
		opts = append(opts, planner.WithCompletionLog(ledger))
	}

	control := planner.New(s, notifier, clk, logger, opts...)

	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, nil, err
	}

	projects, err := s.LoadProjects()
	if err != nil {
		return nil, nil, err
	}

	proposals, err := s.LoadProposals()
	if err != nil {
		return nil, nil, err
	}

	control.Load(tasks, projects, proposals)

	app := &App{
		Config:   cfg,
		Sources:  sources,
		DataDir:  dataDir,
		Env:      env,
		Store:    s,
		Ledger:   ledger,
		Control:  control,
		Notifier: notifier,
		Clock:    clk,
		Stdin:    stdin,
		Logger:   logger,
		Cron:     cron,
	}

	cleanup := func() {
		if ledger != nil {
			_ = ledger.Close()
		}
	}

	return app, cleanup, nil
}

func dispatch(app *App, o *IO, cmdName string, args []string) int {
	for _, cmd := range commands(app) {
		if cmd.Name() == cmdName {
			return cmd.Run(context.Background(), o, args)
		}
	}

	o.ErrPrintln("error: unknown command:", cmdName)
	printUsage(o)

	return 1
}

func commands(app *App) []*Command {
	return []*Command{
		AddCmd(app),
		LsCmd(app),
		ShowCmd(app),
		DoneCmd(app),
		UndoneCmd(app),
		PendingCmd(app),
		ConfirmCmd(app),
		DiscardCmd(app),
		RolloverCmd(app),
		DaemonCmd(app),
		ProjectCmd(app),
		RemindCmd(app),
		MoveCmd(app),
		NoteCmd(app),
		RmCmd(app),
		LogCmd(app),
		PrintConfigCmd(app),
	}
}

type globalFlags struct {
	workDir            string
	configPath         string
	dataDir            string
	hasDataDirOverride bool
	verbose            bool
	remaining          []string
}

// parseGlobalFlags pulls the global flags off the front of the argument
// list; everything from the first non-flag token on belongs to the command.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	i := 0

	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--cwd", "-C":
			val, consumed, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.workDir = val
			i += consumed
		case "--config":
			val, consumed, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.configPath = val
			i += consumed
		case "--data-dir":
			val, consumed, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.dataDir = val
			flags.hasDataDirOverride = true
			i += consumed
		case "--verbose", "-v":
			flags.verbose = true
			i++
		default:
			flags.remaining = args[i:]

			return flags, nil
		}
	}

	return flags, nil
}

func flagValue(args []string, i int, name string) (string, int, error) {
	if i+1 >= len(args) {
		return "", 0, errFlagRequiresArg(name)
	}

	return args[i+1], 2, nil
}

func printUsage(o *IO) {
	o.Println("tw - personal task manager with recurring tasks")
	o.Println()
	o.Println("Usage: tw [global flags] <command> [args]")
	o.Println()
	o.Println("Global flags:")
	o.Println("  -C, --cwd <dir>     Run as if started in <dir>")
	o.Println("  --config <path>     Use an explicit config file")
	o.Println("  --data-dir <dir>    Override the data directory")
	o.Println("  -v, --verbose       Log reminder scheduling and other detail")
	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands(nil) {
		o.Println(cmd.HelpLine())
	}
}
