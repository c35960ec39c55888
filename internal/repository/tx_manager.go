package repository

import (
	"context"
	"errors"
	"log"
)

type TxManager struct {
	conn PgConnection
}

func NewTxManagerWithConn(conn PgConnection) *TxManager {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for txManager: " + err.Error())
	}
	return &TxManager{
		conn: conn,
	}
}

func (tm *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, activities ActivitiesRepositoryI, stats StatsRepositoryI) error) error {
	tx, err := tm.conn.Begin(ctx)
	if err != nil {
		return conflictOr(err, "beginning transaction error: ")
	}
	err = fn(ctx, &ActivitiesRepository{conn: tx}, &StatsRepository{conn: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return conflictOr(err, "committing transaction error: ")
	}
	return nil
}
