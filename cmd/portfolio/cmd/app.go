package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/brightlane-studio/portfolio-backend/config"
	"github.com/brightlane-studio/portfolio-backend/internal/bootstrap"
	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/drive"
	syncrepo "github.com/brightlane-studio/portfolio-backend/internal/imagesync/repository"
	imagesync "github.com/brightlane-studio/portfolio-backend/internal/imagesync/service"
	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/repository"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/service"
)

// app holds the long-lived dependencies shared by serve and sync.
type app struct {
	pool       *pgxpool.Pool
	redis      *redis.Client
	projects   *portfolio.ProjectService
	reconciler *imagesync.Reconciler
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var store portfolio.Store
	switch cfg.Database.Driver {
	case "memory":
		log.Warn().Msg("using in-memory project store; data is lost on exit")
		store = repository.NewMemoryRepository()
	default:
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			return nil, err
		}
		a.pool = pool
		store = repository.NewProjectRepository(pool)
	}
	a.projects = portfolio.NewProjectService(store)

	var reports imagesync.ReportStore
	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis.URL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("redis: %w", err)
	}
	if rdb != nil {
		a.redis = rdb
		reports = syncrepo.NewReportRepository(rdb)
	}
	a.reconciler = imagesync.NewReconciler(a.projects, drive.Factory(), reports)

	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
