// cmd/root.go
/*
Copyright © 2025 djedi23
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/djedi23/sleep-progress/internal/config"
	"github.com/djedi23/sleep-progress/internal/interval"
	"github.com/djedi23/sleep-progress/internal/pause"
	"github.com/djedi23/sleep-progress/internal/tui"
	"github.com/djedi23/sleep-progress/internal/ui"
)

var cfgFile string
var debugMode bool
var showProgress bool

// debugLogFile is the file handle for debug logging
var debugLogFile *os.File
var debugLogMu sync.Mutex
var debugLogInitOnce sync.Once

// initDebugLogFile initializes the debug log file
func initDebugLogFile() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}

	logDir := filepath.Join(homeDir, ".sleep-progress", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}

	debugLogFile = f

	// Write session header
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(debugLogFile, "\n=== Debug session %s started: %s ===\n", uuid.New().String()[:8], timestamp)
}

// Debug prints a message to stderr if debug mode is enabled and writes it
// to the log file
func Debug(format string, args ...interface{}) {
	if debugMode {
		timestamp := time.Now().Format("2006-01-02 15:04:05.000")
		msg := fmt.Sprintf(format, args...)

		fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)

		debugLogMu.Lock()
		debugLogInitOnce.Do(initDebugLogFile)
		if debugLogFile != nil {
			fmt.Fprintf(debugLogFile, "[%s] %s\n", timestamp, msg)
		}
		debugLogMu.Unlock()
	}
}

// rootCmd is the whole program: there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "sleep-progress [flags] <NUMBER>...",
	Short: "Pause for NUMBER seconds, optionally with a progress bar",
	Long: `Pause for NUMBER seconds. SUFFIX may be 's' for seconds (the default),
'm' for minutes, 'h' for hours or 'd' for days. NUMBER need not be an
integer. Given two or more arguments, pause for the amount of time
specified by the sum of their values.

With --progress a progress bar with the remaining time is drawn on stderr
while waiting. The displayed ETA may not be as accurate as the delay.`,
	Example: `  sleep-progress 1.5
  sleep-progress --progress 1m 30s
  sleep-progress -p 0.5h`,
	Args:          requireIntervals,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			// Log the full command that was run
			fullCmd := cmd.Name()
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "debug" {
					return
				}
				if f.Value.Type() == "bool" {
					fullCmd += " --" + f.Name
				} else {
					fullCmd += " --" + f.Name + "=" + f.Value.String()
				}
			})
			if len(args) > 0 {
				fullCmd += " " + strings.Join(args, " ")
			}
			Debug("command: %s", fullCmd)
		}
	},
	RunE: runSleep,
}

// requireIntervals rejects an empty argument list before any parsing.
func requireIntervals(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &usageError{err: errMissingInterval}
	}
	return nil
}

func runSleep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	ms, err := interval.Parse(args)
	if err != nil {
		return err
	}
	total := pause.Duration(ms)
	Debug("interval: %dms (%s)", ms, total)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wantProgress := progressWanted(cmd, cfg)

	var bar *ui.ProgressBar
	if w, ok := progressOutput(cmd); ok && wantProgress && total >= time.Second {
		bar = ui.NewProgressBar(total)
		bar.SetWriter(w)
		bar.SetTick(cfg.Tick)
		bar.SetWidth(cfg.Width)
		bar.SetColor(cfg.Color)
		bar.Start()
	} else if wantProgress {
		Debug("progress bar skipped: output is not a terminal or interval under 1s")
	}

	err = pause.Sleep(ctx, total)
	if bar != nil {
		bar.FinishAndClear()
	}
	if err != nil {
		Debug("wait interrupted: %v", err)
		return errInterrupted
	}
	return nil
}

// loadConfig returns the user's defaults. A config that cannot be loaded
// only fails the command when --progress was given; otherwise it is logged
// and the built-in defaults are used.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err == nil {
		return cfg, nil
	}
	if cmd.Flags().Changed("progress") && showProgress {
		return nil, err
	}
	Debug("ignoring config: %v", err)
	return config.DefaultConfig(), nil
}

// progressWanted applies --progress on top of the configured default.
func progressWanted(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("progress") {
		return showProgress
	}
	return cfg.Progress
}

// progressOutput returns the writer the progress bar draws on, and whether
// it is a terminal.
func progressOutput(cmd *cobra.Command) (io.Writer, bool) {
	w := cmd.ErrOrStderr()
	f, ok := w.(*os.File)
	return w, ok && tui.IsTerminal(f)
}

// Execute runs the root command and exits with a status matching the
// error, if any. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "Display the sleep indicator")
	rootCmd.Flags().BoolP("help", "h", false, "Print help information")
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/sleep-progress/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
}
