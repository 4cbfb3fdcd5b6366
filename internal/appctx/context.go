// Package appctx wires together planit's configuration, the three staged
// repositories, and the logger into the single context object every
// command and validator operates against.
package appctx

import (
	"github.com/khalidh223/planit/internal/appconfig"
	"github.com/khalidh223/planit/internal/applog"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/repo"
)

// AppContext is the shared state threaded through command dispatch,
// argument validation, the scheduler, and persistence.
type AppContext struct {
	Config *appconfig.Config
	Cards  *repo.Repository[*model.Card]
	Events *repo.Repository[*model.Event]
	Tasks  *repo.Repository[*model.Task]
	Logger *applog.Logger

	StartupDisplayed bool
	ConfigPath       string
	SchedulesDir     string
	LogsDir          string
}

// NewWithPaths loads config.json at configPath and builds an AppContext
// with three empty repositories and a logger directed at logsDir.
func NewWithPaths(configPath, schedulesDir, logsDir string) (*AppContext, error) {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := applog.New()
	logger.SetLogDir(logsDir)
	logger.SetFileLoggingEnabled(cfg.FileLoggingEnabled())

	return &AppContext{
		Config:       cfg,
		Cards:        repo.New[*model.Card](),
		Events:       repo.New[*model.Event](),
		Tasks:        repo.New[*model.Task](),
		Logger:       logger,
		ConfigPath:   configPath,
		SchedulesDir: schedulesDir,
		LogsDir:      logsDir,
	}, nil
}

// CardExists reports whether id names a live or currently-staged card,
// satisfying entityspec.ValidationContext.
func (c *AppContext) CardExists(id int32) bool { return c.Cards.ExistsIncludingStaged(id) }

// DailyRange satisfies entityspec.ValidationContext and scheduler.ConfigView.
func (c *AppContext) DailyRange() domain.TimeRange { return c.Config.DailyRange() }

// ScheduleStartDate satisfies entityspec.ValidationContext and scheduler.ConfigView.
func (c *AppContext) ScheduleStartDate() domain.Date { return c.Config.ScheduleStartDate() }

// TaskOverflowPolicy satisfies scheduler.ConfigView.
func (c *AppContext) TaskOverflowPolicy() domain.TaskOverflowPolicy { return c.Config.TaskOverflowPolicy() }

// TaskSchedulingOrder satisfies scheduler.ConfigView.
func (c *AppContext) TaskSchedulingOrder() domain.TaskSchedulingOrder { return c.Config.TaskSchedulingOrder() }
