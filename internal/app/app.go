package app

import (
	"context"
	"fmt"

	"clubhub/internal/config"
	"clubhub/internal/db"
	"clubhub/internal/domain/authz"
	"clubhub/internal/domain/club"
	"clubhub/internal/domain/planner"
	"clubhub/internal/domain/profile"
	"clubhub/internal/domain/user"
	clubrepo "clubhub/internal/repository/postgres/club"
	plannerrepo "clubhub/internal/repository/postgres/planner"
	profilerepo "clubhub/internal/repository/postgres/profile"
	userrepo "clubhub/internal/repository/postgres/user"
	"clubhub/internal/transport/httpserver"
	"clubhub/internal/transport/httpserver/handler"
	"clubhub/internal/transport/httpserver/middleware"
	"clubhub/pkg/logger"
)

// App assembles the whole service: config, database, migrations, domain
// services and the HTTP server.
type App struct {
	server *httpserver.Server
	log    logger.Logger
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	clubs := clubrepo.NewPostgres(gormDB)
	users := userrepo.NewPostgres(gormDB)

	userService := user.NewService(users)
	clubService := club.NewService(clubs, users)
	plannerService := planner.NewService(plannerrepo.NewPostgres(gormDB))
	profileService := profile.NewService(profilerepo.NewPostgres(gormDB), users)
	evaluator := authz.NewEvaluator(clubs)

	h := handler.New(clubService, plannerService, profileService, evaluator, log)
	auth := middleware.NewAuth(cfg.Auth, userService, log)
	router := httpserver.NewRouter(h, auth, cfg.CORSOrigins)

	return &App{
		server: httpserver.NewServer(cfg.HTTPPort, router, log),
		log:    log,
	}, nil
}

func (a *App) Run() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.log.Info("shutting down")
	return a.server.Shutdown(ctx)
}
