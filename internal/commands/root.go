package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/weather-dominator/internal/config"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"github.com/latoulicious/weather-dominator/pkg/display"
	"github.com/latoulicious/weather-dominator/pkg/intel"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/latoulicious/weather-dominator/pkg/weather"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var startTime = time.Now()

// rootOptions holds the persistent flags and the lazily built application
type rootOptions struct {
	configPath string
	verbose    bool

	app *App
}

// App is everything a command needs, built once per process from AppConfig
type App struct {
	Config    config.AppConfig
	Loggers   *logging.DefaultLoggerFactory
	DB        *gorm.DB
	Manager   *database.Manager
	Weather   *weather.Service
	History   *weather.DBRecorder
	Store     *intel.Store
	Cards     *display.Builder
	SessionID string
}

// NewRootCommand builds the weather-dominator command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "weather-dominator",
		Short: "Weather intelligence and G.I. Joe lookup terminal",
		Long: `Weather Dominator looks up current weather for a city (falling back to
demo data when no OpenWeather key is configured or the API fails) and
resolves G.I. Joe characters, vehicles, weapons and locations from an
embedded database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or TOML config file (default: config/config.yaml or config/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newWeatherCommand(opts),
		newHistoryCommand(opts),
		newLookupCommand(opts),
		newVehicleCommand(opts),
		newWeaponCommand(opts),
		newLocationCommand(opts),
		newSearchCommand(opts),
		newRelateCommand(opts),
		newSeedCommand(opts),
		newStatsCommand(opts),
		newPruneCommand(opts),
		newDoctorCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command and prints failures as an error card
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	// PersistentPostRunE is skipped when a command fails
	defer opts.close()

	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		name := root.Name()
		if cmd != nil {
			name = cmd.Name()
		}
		card := display.NewBuilder(display.Preferences{Theme: display.ThemePlain}).CommandError(name, err)
		_ = card.Render(stderr, display.ThemePlain)
		return 1
	}
	return 0
}

// open builds the App on first use: config, loggers, database, schema and
// both components
func (o *rootOptions) open() (*App, error) {
	if o.app != nil {
		return o.app, nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logOpts := logging.Options{
		Level:    cfg.Logger.Level,
		Format:   cfg.Logger.Format,
		SaveToDB: cfg.Logger.SaveToDB,
	}
	if o.verbose {
		logOpts.Level = "debug"
	}
	loggers := logging.NewLoggerFactory(logOpts)
	systemLogger := loggers.CreateLogger("system")

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := migration.RunMigration(db, loggers.CreateLogger("migration")); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	loggers.SetRepository(repository.NewSystemLogRepository(db))

	sessionID := uuid.NewString()
	history := weather.NewDBRecorder(repository.NewWeatherLogRepository(db))
	searches := repository.NewSearchLogRepository(db)

	weatherLogger := loggers.CreateLogger("weather").WithContext(map[string]interface{}{"session_id": sessionID})
	client := weather.NewClient(weather.Options{
		APIKey:  cfg.APIKeys.OpenWeather,
		BaseURL: cfg.Weather.BaseURL,
		Units:   cfg.Weather.Units,
		Timeout: cfg.Timeout(),
	}, weatherLogger)

	intelLogger := loggers.CreateLogger("intel").WithContext(map[string]interface{}{"session_id": sessionID})

	o.app = &App{
		Config:    cfg,
		Loggers:   loggers,
		DB:        db,
		Manager:   database.NewManager(db),
		Weather:   weather.NewService(client, history, searches, sessionID, weatherLogger),
		History:   history,
		Store:     intel.NewStore(db, searches, sessionID, intelLogger),
		Cards:     display.NewBuilder(preferences(cfg)),
		SessionID: sessionID,
	}

	systemLogger.Debug("Application initialized", map[string]interface{}{
		"driver":     cfg.Database.Driver,
		"demo_mode":  client.DemoMode(),
		"session_id": sessionID,
	})
	return o.app, nil
}

func (o *rootOptions) close() error {
	if o.app == nil {
		return nil
	}
	app := o.app
	o.app = nil

	// syncing a terminal returns EINVAL/ENOTTY
	_ = app.Loggers.Sync()
	if err := app.Manager.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func preferences(cfg config.AppConfig) display.Preferences {
	theme := cfg.Preferences.Theme
	if os.Getenv("NO_COLOR") != "" {
		theme = display.ThemePlain
	}
	return display.Preferences{
		TemperatureUnit: cfg.Preferences.TemperatureUnit,
		WindUnit:        cfg.Preferences.WindUnit,
		PressureUnit:    cfg.Preferences.PressureUnit,
		Theme:           theme,
	}
}

// render writes a card to the command's stdout
func (a *App) render(cmd *cobra.Command, card *display.Card) error {
	return card.Render(cmd.OutOrStdout(), a.Cards.Theme())
}

// commandLogger tags a command logger with this run's session
func (a *App) commandLogger(name string) logging.Logger {
	return a.Loggers.CreateCommandLogger(name, a.SessionID)
}

// formatUptime formats the uptime duration into a human-readable string
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
