package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BBrav0/CanvasToNotion/internal/config"
	"github.com/BBrav0/CanvasToNotion/internal/models"
	"github.com/BBrav0/CanvasToNotion/internal/service"
	"github.com/BBrav0/CanvasToNotion/internal/service/integration"
)

type App struct {
	sync   service.SyncService
	logger zerolog.Logger
	config *config.Config
}

func New(cfg *config.Config, log zerolog.Logger, dryRun bool) *App {
	canvasClient := integration.NewCanvasClient(cfg.Canvas, log)
	notionClient := integration.NewNotionClient(cfg.Notion, log)

	mapper := service.NewCourseMapper(cfg.Courses.Mappings)
	syncService := service.NewSyncService(canvasClient, notionClient, mapper, dryRun, log)

	return &App{
		sync:   syncService,
		logger: log,
		config: cfg,
	}
}

func (a *App) Run(ctx context.Context) (*models.SyncResult, error) {
	return a.sync.Run(ctx)
}
