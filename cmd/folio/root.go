package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/portfolio"
)

type rootFlags struct {
	configPath   string
	dotEnv       string
	theme        string
	reduceMotion bool
	noMouse      bool
	logLevel     string
	logFile      string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "A personal portfolio in your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/folio/config.yaml)")
	pf.StringVar(&flags.dotEnv, "env-file", ".env", "Dotenv file read beneath the process environment")
	pf.StringVar(&flags.theme, "theme", "", "Initial theme: auto, dark or light")
	pf.BoolVar(&flags.reduceMotion, "reduce-motion", false, "Disable ambient animation")
	pf.BoolVar(&flags.noMouse, "no-mouse", false, "Do not capture the mouse")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPrintCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings layers command-line flags over the loaded configuration.
// Only flags the user actually set take part.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (config.Settings, error) {
	settings, err := config.Load(config.LoadOptions{Path: flags.configPath, DotEnv: flags.dotEnv})
	if err != nil {
		return config.Settings{}, err
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		settings.Theme = flags.theme
	}
	if changed("reduce-motion") {
		settings.ReduceMotion = flags.reduceMotion
	}
	if changed("no-mouse") {
		settings.Mouse = !flags.noMouse
	}
	if changed("log-level") {
		settings.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		settings.LogFile = flags.logFile
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}

	if err := config.Validate(settings); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// openLogger returns a file logger when one is configured and a discarding
// logger otherwise.
func openLogger(settings config.Settings) (*logger.Logger, io.Closer, error) {
	if settings.LogFile == "" {
		log, err := logger.New(logger.Options{Level: settings.LogLevel})
		return log, io.NopCloser(nil), err
	}
	log, closer, err := logger.OpenFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log, closer, nil
}

func runPage(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	out, ok := terminalOutput(cmd)
	if !ok {
		return runPrint(cmd, settings, 0)
	}

	log, closer, err := openLogger(settings)
	if err != nil {
		return err
	}
	defer closer.Close()

	c, err := catalog.Default()
	if err != nil {
		log.Error(err, "embedded catalog is invalid")
		return err
	}

	mode := theme.Resolve(settings.ThemeChoice(), theme.PlatformPreference(out))
	log.WithFields(map[string]any{
		"mode":          mode.String(),
		"reduce_motion": settings.ReduceMotion,
		"mouse":         settings.Mouse,
	}).Info("launching page")

	m := portfolio.NewModel(portfolio.Options{
		Catalog:       c,
		Mode:          mode,
		HeroDelay:     settings.HeroDelay,
		FrameInterval: settings.FrameInterval,
		ReduceMotion:  settings.ReduceMotion,
		Mouse:         settings.Mouse,
		Floaters:      settings.Floaters,
		Geometry:      settings.Follower,
		Logger:        log,
	})
	// The subscription is released on every exit path, including errors.
	defer m.Unmount()

	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		log.Error(err, "page exited with error")
		return fmt.Errorf("failed to run page: %w", err)
	}
	return nil
}

// terminalOutput returns the command's output when it is a terminal.
func terminalOutput(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}
