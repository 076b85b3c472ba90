package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/san-kum/rsvp/internal/config"
	"github.com/san-kum/rsvp/internal/export"
	"github.com/san-kum/rsvp/internal/logging"
	"github.com/san-kum/rsvp/internal/playback"
	"github.com/san-kum/rsvp/internal/source"
	"github.com/san-kum/rsvp/internal/token"
	"github.com/san-kum/rsvp/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	rate       int
	themeName  string
	preset     string
	logFile    string
	logLevel   string
	logStderr  bool
	// read
	autoplay bool
	// play
	plain bool
	// export
	format  string
	outPath string
	// config init
	force bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rsvp [file|-|words...]",
		Short:        "speed reading in the terminal",
		Long:         "rsvp shows text one word at a time with the fixation letter highlighted.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runRead,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&rate, "rate", config.DefaultRate, "reading rate in words per minute")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&preset, "preset", "", "use a named rate preset")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&logStderr, "log-stderr", false, "also write logs to stderr")
	rootCmd.Flags().BoolVar(&autoplay, "play", false, "start playing immediately")

	readCmd := &cobra.Command{
		Use:   "read [file|-|words...]",
		Short: "open the full-screen reader",
		RunE:  runRead,
	}
	readCmd.Flags().BoolVar(&autoplay, "play", false, "start playing immediately")

	playCmd := &cobra.Command{
		Use:   "play [file|-|words...]",
		Short: "print words to stdout at the reading rate",
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	exportCmd := &cobra.Command{
		Use:   "export [file|-|words...]",
		Short: "export the display timeline",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "", "csv, json or svg (default from --out, else csv)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats [file|-|words...]",
		Short: "word length and fixation statistics",
		RunE:  runStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list rate presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, name := range viz.ThemeNames() {
				mark := " "
				if name == cfg.Theme {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(readCmd, playCmd, exportCmd, statsCmd, presetsCmd, themesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigPath is used when --config is not given. A missing file there
// is not an error.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rsvp", "config.yaml")
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else if path := defaultConfigPath(); path != "" {
		loaded, err := config.Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("rate") {
		cfg.Rate = rate
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-stderr") {
		cfg.Log.Stderr = logStderr
	}
	if preset != "" {
		wpm, err := cfg.PresetRate(preset)
		if err != nil {
			return nil, err
		}
		cfg.Rate = wpm
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the config and builds the logger. The returned close function
// is never nil.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeLog, err := logging.New(logging.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Stderr: cfg.Log.Stderr,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger.With("cmd", cmd.Name()), closeLog, nil
}

func sourceName(args []string) string {
	switch {
	case len(args) == 0, len(args) == 1 && args[0] == source.Stdin:
		return "stdin"
	case len(args) == 1:
		if _, err := os.Stat(args[0]); err == nil {
			return filepath.Base(args[0])
		}
	}
	return "inline"
}

func readerPresets(cfg *config.Config) []viz.Preset {
	order, rates := cfg.Rates()
	var presets []viz.Preset
	for _, name := range order {
		if name == config.CurrentRate {
			continue
		}
		presets = append(presets, viz.Preset{Name: name, Rate: rates[name]})
	}
	return presets
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := viz.GetTheme(cfg.Theme)
	if err != nil {
		return err
	}
	text, err := source.Join(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctrl := playback.New(cfg.Rate)
	ctrl.AddObserver(playback.LogObserver(logger))
	ctrl.LoadText(text)
	logger.Info("session loaded", "source", sourceName(args), "tokens", ctrl.Len(), "rate", ctrl.Rate())
	if autoplay {
		ctrl.Play()
	}

	return viz.Run(ctrl, viz.Options{
		Title:    sourceName(args),
		Theme:    theme,
		SeekStep: cfg.SeekStep,
		Presets:  readerPresets(cfg),
		Logger:   logger,
	})
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := viz.GetTheme(cfg.Theme)
	if err != nil {
		return err
	}
	text, err := source.Join(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctrl := playback.New(cfg.Rate)
	ctrl.AddObserver(playback.LogObserver(logger))
	printer := viz.NewPrinter(cmd.OutOrStdout(), theme)
	ctrl.AddObserver(printer)
	ctrl.LoadText(text)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := playback.NewRunner(ctrl, logger)
	runner.ExitWhenDone = true
	runner.HoldLast = true
	ctrl.Play()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("playback ended", "state", ctrl.State(), "position", ctrl.Position(), "tokens", ctrl.Len())
	return printer.Err()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := source.Join(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	seq := token.Tokenize(text)
	data := export.Build(sourceName(args), cfg.Rate, playback.Timeline(seq, cfg.Rate))

	if outPath == "" {
		f := format
		if f == "" {
			f = export.FormatCSV
		}
		return export.Write(cmd.OutOrStdout(), f, data)
	}
	if err := export.WriteFile(outPath, format, data); err != nil {
		return fmt.Errorf("export %s: %w", outPath, err)
	}
	logger.Info("timeline exported", "path", outPath, "tokens", len(data.Frames))
	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d tokens to %s\n", len(data.Frames), outPath)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := source.Join(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	order, rates := cfg.Rates()
	fmt.Fprint(cmd.OutOrStdout(), viz.RenderStats(token.Tokenize(text), rates, order))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWPM\tINTERVAL\tSOURCE")
	order, rates := cfg.Rates()
	for _, name := range order {
		if name == config.CurrentRate {
			continue
		}
		wpm := rates[name]
		origin := "builtin"
		if _, ok := cfg.Presets[name]; ok {
			origin = "config"
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%s\n", name, wpm, playback.Interval(wpm), origin)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no config directory; pass a path")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
