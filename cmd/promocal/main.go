package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/promocal/internal/cli"
	"github.com/alexanderramin/promocal/internal/clipboard"
	"github.com/alexanderramin/promocal/internal/config"
	"github.com/alexanderramin/promocal/internal/dataset"
	"github.com/alexanderramin/promocal/internal/db"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
	"github.com/alexanderramin/promocal/internal/service"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Interactive sessions log to a file so output never lands on the alt
	// screen.
	w, closeLog, err := openLog(&cfg, interactive())
	if err != nil {
		return err
	}
	defer closeLog()
	logger, observers := newDiagnostics(&cfg, w)

	months, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("loading calendar data: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	prefs := repository.NewSQLitePreferenceRepo(database)
	txPrefs := func(tx db.DBTX) repository.PreferenceStore {
		return repository.NewSQLitePreferenceRepo(tx)
	}

	// Wire unit of work for snapshot imports
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	checklistSvc := service.NewChecklistService(prefs, observers...)
	themeSvc := service.NewThemeService(prefs, observers...)

	app := &cli.App{
		Calendar:      service.NewCalendarService(months),
		Checklist:     checklistSvc,
		Theme:         themeSvc,
		Prefs:         service.NewPreferenceService(prefs, uow, txPrefs, checklistSvc, themeSvc, observers...),
		Clipboard:     clipboard.NewHelper(clipboard.System, logger),
		ThemeOverride: domain.Theme(cfg.Theme),
		IsInteractive: interactive,
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newDiagnostics builds the run logger and the use-case observer writing
// to it. Failures (a corrupt checklist, a clipboard error) always reach w;
// PROMOCAL_LOG adds a line for every successful call.
func newDiagnostics(cfg *config.Config, w io.Writer) (*slog.Logger, []service.UseCaseObserver) {
	logger := service.NewRunLogger(w, cfg.LogLevel())
	return logger, []service.UseCaseObserver{service.NewSlogUseCaseObserver(logger)}
}

// openLog picks the log destination: the configured file, the TUI log
// file for terminal sessions, or stderr.
func openLog(cfg *config.Config, interactive bool) (io.Writer, func(), error) {
	path := cfg.LogFile
	if path == "" && interactive {
		path = cfg.TUILogFile()
	}
	if path == "" {
		return os.Stderr, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
