package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/internal/scoring"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/cleanup"
	"github.com/limbo/wellness/pkg/config"
	"github.com/limbo/wellness/pkg/datekey"
	"github.com/limbo/wellness/pkg/entity"
	jwtservice "github.com/limbo/wellness/pkg/jwt_service"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "wellnessctl"
	app.Usage = "maintenance commands for the wellness engine"
	app.Action = cli.ShowAppHelp
	app.Commands = []*cli.Command{
		{
			Name:   "migrate",
			Usage:  "Apply pending database migrations",
			Action: migrate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "dir", Usage: "migrations directory", EnvVars: []string{"MIGRATIONS_DIR"}, Value: "./migrations"},
			},
		},
		{
			Name:   "token",
			Usage:  "Mint a bearer token for local testing",
			Action: token,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "uid", Usage: "user id, random when empty"},
				&cli.StringFlag{Name: "name", Usage: "username claim", Value: "dev_user"},
				&cli.DurationFlag{Name: "ttl", Usage: "token lifetime", Value: jwtservice.DefaultTokenTTL},
			},
		},
		{
			Name:   "recompute",
			Usage:  "Rebuild a user's total points from stored history",
			Action: recompute,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "uid", Usage: "user id", Required: true},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
}

func migrate(c *cli.Context) error {
	return repository.Migrate(dbConfig(config.New()), c.String("dir"))
}

func token(c *cli.Context) error {
	cfg := config.New()
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		return cli.Exit("JWT_SECRET must be set", 1)
	}
	uid := uuid.New()
	if raw := c.String("uid"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return cli.Exit("invalid uid: "+err.Error(), 1)
		}
		uid = parsed
	}
	signed, err := jwtservice.New(secret).WithTTL(c.Duration("ttl")).GenerateToken(&entity.User{
		ID:   uid,
		Name: c.String("name"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, signed)
	return nil
}

func recompute(c *cli.Context) error {
	uid, err := uuid.Parse(c.String("uid"))
	if err != nil {
		return cli.Exit("invalid uid: "+err.Error(), 1)
	}
	cfg := config.New()
	policy, err := scoring.ParsePolicy(cfg.GetString("MILESTONE_POLICY"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer cleanup.CleanUp()
	pool := repository.NewPool(dbConfig(cfg))
	points := service.NewPointsService(
		repository.NewStatsRepoWithConn(pool),
		repository.NewTxManagerWithConn(pool),
		datekey.NewCalendar(cfg.GetLocation("TIMEZONE")),
		nil,
		service.Options{
			Policy:      policy,
			MaxAttempts: cfg.GetIntOr("CONFLICT_RETRY_ATTEMPTS", service.DefaultMaxAttempts),
		},
	)
	start := time.Now()
	total, err := points.RecomputeTotal(c.Context, uid)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "user %s: total points %d (%s)\n", uid, total, time.Since(start).Round(time.Millisecond))
	return nil
}
