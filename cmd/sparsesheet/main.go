// Package main provides the CLI entry point for sparsesheet-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ukaji3/sparsesheet-go/internal/config"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/controller"
)

var (
	cfgFile    string
	scriptPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sparsesheet",
		Short: "Edit an in-memory spreadsheet with bulk macros",
		Long: `sparsesheet reads spreadsheet instructions from the terminal, a script
file or standard input and applies them to a sparse in-memory sheet.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file (default: ./sparsesheet.yaml)")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "Read instructions from a file instead of stdin")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("prompt", "", "Prompt shown before each instruction")
	rootCmd.Flags().String("history-file", "", "History file for interactive sessions")
	rootCmd.Flags().Bool("no-menu", false, "Do not print the instruction list on start")
	rootCmd.Flags().Int("precision", -1, "Decimals printed for values (-1: shortest exact)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, used, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used != "" {
		logger.Debug("config loaded", "file", used)
	}

	// Scripted and piped sessions keep the default SIGINT behaviour, since
	// a blocked read would never observe a cancelled context.
	ctx := cmd.Context()
	sheet := sparsesheet.NewMacroSheet()
	opts := cfg.ControllerOptions()
	out := cmd.OutOrStdout()

	// Script file
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		opts.ShowMenu = false
		opts.Prompt = ""
		return runSession(ctx, sheet, controller.NewScannerSource(f), out, opts, logger)
	}

	// Piped input
	in := cmd.InOrStdin()
	tty, ok := terminalFile(in)
	if !ok {
		opts.Prompt = ""
		return runSession(ctx, sheet, controller.NewScannerSource(in), out, opts, logger)
	}

	// Interactive
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           tty,
		Stdout:          out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	src := controller.NewLineSource(func() (string, error) {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	})
	opts.Prompt = ""
	return runSession(ctx, sheet, src, rl.Stdout(), opts, logger)
}

// terminalFile reports whether r is a terminal the line editor can drive.
func terminalFile(r io.Reader) (*os.File, bool) {
	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

func runSession(ctx context.Context, sheet controller.MacroSheet, src controller.TokenSource, out io.Writer, opts controller.Options, logger *slog.Logger) error {
	c := controller.New(sheet, src, out, opts, logger)
	err := c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
