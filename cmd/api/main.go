package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/wellness/internal/api"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/internal/scoring"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/cleanup"
	"github.com/limbo/wellness/pkg/config"
	"github.com/limbo/wellness/pkg/datekey"
	jwtservice "github.com/limbo/wellness/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	policy, err := scoring.ParsePolicy(cfg.GetString("MILESTONE_POLICY"))
	if err != nil {
		log.Fatal(err)
	}
	if err = repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal("migrations error: " + err.Error())
	}
	defer cleanup.CleanUp()

	pool := repository.NewPool(&dbCfg)
	txManager := repository.NewTxManagerWithConn(pool)
	calendar := datekey.NewCalendar(cfg.GetLocation("TIMEZONE"))
	locks := service.NewUserLocks()
	opts := service.Options{
		Policy:          policy,
		WaterGoalLiters: cfg.GetFloatOr("WATER_GOAL_LITERS", service.DefaultWaterGoalLiters),
		MaxAttempts:     cfg.GetIntOr("CONFLICT_RETRY_ATTEMPTS", service.DefaultMaxAttempts),
	}
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		ActivityService: service.NewActivityService(repository.NewActivitiesRepoWithConn(pool), txManager, calendar, locks, opts),
		PointsService:   service.NewPointsService(repository.NewStatsRepoWithConn(pool), txManager, calendar, locks, opts),
		JwtService:      jwtservice.New(secret),
	})
	slog.Info("engine configured",
		slog.String("milestone_policy", string(policy)),
		slog.String("timezone", calendar.Location().String()),
		slog.Int("conflict_retry_attempts", opts.MaxAttempts),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
