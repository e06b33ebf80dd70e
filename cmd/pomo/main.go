package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomo/internal/clock"
	"github.com/sandeepkv93/pomo/internal/logging"
	"github.com/sandeepkv93/pomo/internal/update"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var errNotTerminal = errors.New("stdout is not a terminal")

type program interface {
	Run() (tea.Model, error)
}

var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro in the terminal",
		Long:          "pomo runs a pomodoro work timer next to a small task list.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			return runTUI(stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runTUI(stdout, stderr io.Writer) error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	logger, err := logging.New(stderr, logging.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile, Prefix: "pomo"})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer logger.Close()

	if !isTerminal(stdout) {
		logger.Error("refusing to start", "err", errNotTerminal)
		return errNotTerminal
	}

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}
	m := update.NewModelWithConfig(cfg, clock.System, notifier, logger)

	logger.Info("starting tui program loop",
		"work_minutes", cfg.WorkMinutes,
		"break_minutes", cfg.BreakMinutes,
		"frame_interval", cfg.FrameInterval,
		"log_file", logger.FilePath(),
	)
	// the terminal belongs to bubbletea until Run returns
	logger.SetConsoleEnabled(false)
	_, err = programFactory(m).Run()
	logger.SetConsoleEnabled(true)
	if err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	logger.Info("session complete")
	return nil
}
