package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deskcal/internal/clock"
	"deskcal/internal/config"
	"deskcal/internal/ics"
	"deskcal/internal/labels"
	appLog "deskcal/internal/log"
	"deskcal/internal/model"
	"deskcal/internal/render"
	"deskcal/internal/tui"
)

// flagConfig holds CLI flag values. With no flags the calendar opens on the
// current month using the default configuration.
type flagConfig struct {
	configPath string
	logFile    string
	debug      bool
	print      bool
	export     bool
	month      string
}

func main() {
	if err := run(parseFlags(), os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(flags flagConfig, stdout io.Writer) error {
	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		return err
	}

	level := appLog.ParseLevel(conf.LogLevel)
	if flags.debug {
		level = appLog.LevelDebug
	}
	appLog.SetLevel(level)

	appLog.Info("effective config",
		"week_start", conf.WeekStart,
		"locale", conf.Locale,
		"highlight_color", conf.HighlightColor,
		"log_level", string(level),
		"print", flags.print,
		"export", flags.export,
	)

	sysClock := clock.System{}
	start := model.Today(sysClock)
	if flags.month != "" {
		if start, err = model.ParseMonth(flags.month); err != nil {
			appLog.Error("invalid -month", err, "month", flags.month)
			return err
		}
	}
	lbl := labels.For(conf.Locale)

	if flags.print {
		grid := model.ComputeMonthGrid(start.Year, start.Month, nil, conf.FirstWeekday())
		return render.PrintMonth(stdout, grid, lbl, model.Today(sysClock))
	}

	closeLog, err := redirectLog(flags.logFile)
	if err != nil {
		appLog.Error("failed to open log file", err, "path", flags.logFile)
		return err
	}
	defer closeLog()

	store := model.NewStore()
	app := tui.New(store, tui.Options{
		WeekStart:      conf.FirstWeekday(),
		Labels:         lbl,
		HighlightColor: conf.HighlightColor,
		TodayColor:     conf.TodayColor,
		Clock:          sysClock,
		Start:          start,
	})

	appLog.Info("deskcal starting", "month", start.String())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		appLog.Error("calendar window failed", err)
		return fmt.Errorf("run calendar: %w", err)
	}
	appLog.Info("deskcal exiting", "dates_with_events", store.Len())

	if flags.export {
		return ics.Export(stdout, store, time.Now())
	}
	return nil
}

// redirectLog moves logging off the terminal while the calendar window owns
// it: into path if set, otherwise nowhere. The returned func restores stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		appLog.SetOutput(io.Discard)
		return func() { appLog.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	appLog.SetOutput(f)
	return func() {
		appLog.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to an optional YAML config file")
	flag.StringVar(&cfg.logFile, "log-file", "", "Append logs to this file while the calendar is open")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&cfg.print, "print", false, "Print the month grid to stdout and exit")
	flag.BoolVar(&cfg.export, "export", false, "Write the session's events as iCalendar to stdout on exit")
	flag.StringVar(&cfg.month, "month", "", "Initial month as YYYY-MM (default: current month)")

	flag.Parse()

	return cfg
}
