package repository

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/wellness/pkg/cleanup"
)

// NewPool opens the pool shared by every repository and registers its closing on shutdown.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		log.Fatal("parsing postgres config error: " + err.Error())
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}
