package repository

import (
	"database/sql"
	"errors"

	// registers "postgres" driver used by goose
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies goose migrations from dir.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
