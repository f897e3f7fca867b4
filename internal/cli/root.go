// Package cli wires every feature service into the haven command tree.
package cli

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/config"
	"github.com/terraincognita07/haven/internal/geo"
	"github.com/terraincognita07/haven/internal/pin"
	"github.com/terraincognita07/haven/internal/services"
	"github.com/terraincognita07/haven/internal/storage"
)

// App bundles the configured services behind the command tree. Each feature
// owns exactly one storage key; the contact list is additionally read by
// the alert flow.
type App struct {
	Config   config.Config
	Location *time.Location
	Store    storage.Store

	Mood      *services.MoodService
	Symptoms  *services.SymptomService
	Journal   *services.JournalService
	Calendar  *services.CalendarIndex
	Contacts  *services.ContactService
	Grounding *services.GroundingService
	Game      *services.GameService
	Alerts    *services.AlertService
	Export    *services.ExportService
}

// NewApp loads configuration and opens the durable store. When the medium
// cannot be opened the app degrades to a session-only in-memory store: the
// command still runs, the data just does not survive the process.
func NewApp(dbPath string, locator geo.Locator) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	var store storage.Store
	sqliteStore, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Printf("storage unavailable (%v); continuing session-only, changes will not be saved", err)
		store = storage.NewMemory()
	} else {
		store = sqliteStore
	}

	var codec pin.Codec = pin.Verbatim{}
	if cfg.PinHashing {
		codec = pin.Bcrypt{}
	}

	app := &App{
		Config:    cfg,
		Location:  cfg.Location(),
		Store:     store,
		Mood:      services.NewMoodService(store),
		Symptoms:  services.NewSymptomService(store),
		Journal:   services.NewJournalService(store, codec),
		Calendar:  services.NewCalendarIndex(store),
		Contacts:  services.NewContactService(store),
		Grounding: services.NewGroundingService(store),
		Game:      services.NewGameService(store),
	}
	app.Alerts = services.NewAlertService(store, app.Contacts, locator)
	app.Export = services.NewExportService(app.Symptoms, app.Calendar)
	return app, nil
}

func (app *App) Now() time.Time {
	return time.Now().In(app.Location)
}

func NewRootCommand() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:           "haven",
		Short:         "Local wellness companion: cycle tracking, mood and journal logging, emergency toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default from config)")

	openApp := func() (*App, error) {
		return NewApp(dbPath, nil)
	}

	root.AddCommand(newMoodCommand(openApp))
	root.AddCommand(newSymptomsCommand(openApp))
	root.AddCommand(newJournalCommand(openApp))
	root.AddCommand(newCalendarCommand(openApp))
	root.AddCommand(newContactsCommand(openApp))
	root.AddCommand(newGroundCommand(openApp))
	root.AddCommand(newBubbleCommand(openApp))
	root.AddCommand(newAlertCommand(&dbPath))
	root.AddCommand(newInsightsCommand(openApp))
	root.AddCommand(newExportCommand(openApp))

	return root
}

// appFactory defers opening the store until a subcommand actually runs.
type appFactory func() (*App, error)
