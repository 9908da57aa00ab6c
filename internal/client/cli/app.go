package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdash/internal/client/client"
	"github.com/dmitrijs2005/gophdash/internal/client/config"
	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/client/services"
	"github.com/dmitrijs2005/gophdash/internal/client/view"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config    *config.Config
	dashboard services.DashboardService
	profile   services.ProfileService
	renderer  *view.Renderer
	log       logging.Logger
	in        io.Reader
	db        *sql.DB

	screen          view.Screen
	dashboardLoaded bool
	profileLoaded   bool
}

// NewApp opens the settings database and builds the services. The returned
// App must be closed by the caller.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel).With("session_id", uuid.NewString())

	db, err := client.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	repos := client.NewRepositories(db)
	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)

	a := newApp(c, api, services.NewFiltersSlot(repos.Settings, log), view.NewRenderer(os.Stdout, c.NoColor), log)
	a.db = db
	a.in = os.Stdin

	log.Info(ctx, "session started", "api", c.APIBaseURL, "database", c.DatabasePath)
	return a, nil
}

func newApp(c *config.Config, api client.Client, slot *services.Slot[models.TableFilters], r *view.Renderer, log logging.Logger) *App {
	return &App{
		config:    c,
		dashboard: services.NewDashboardService(api, slot, log),
		profile:   services.NewProfileService(api, log),
		renderer:  r,
		log:       log,
		screen:    view.ScreenDashboard,
	}
}

// Run shows the dashboard and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	_ = a.Dashboard(ctx)
	runREPL(ctx, a, a.prompt, a.in)
	a.log.Info(ctx, "session ended")
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) prompt() string {
	if a.screen == view.ScreenProfile {
		return "profile"
	}
	return "dashboard"
}
