package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/wellness/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates user mirrored from the identity provider together with zeroed stats.
	// Does nothing if the user already exists
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ActivitiesRepositoryI interface {
	// Returns the user's record for date or ErrActivityNotFound
	FindByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error)
	// Lists every record of the user, oldest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.ActivityRecord, error)
	// Lists records dated on or after since, newest first
	ListSince(ctx context.Context, uid uuid.UUID, since string) ([]*entity.ActivityRecord, error)
	// Inserts or updates habit fields and points of the (user, date) record. Water is left untouched.
	// Fills ID, CreatedAt and UpdatedAt of act
	Upsert(ctx context.Context, act *entity.ActivityRecord) error
	// Inserts or updates only the water fields of the (user, date) record
	UpsertWater(ctx context.Context, uid uuid.UUID, date string, water entity.Water) (*entity.ActivityRecord, error)
}

type StatsRepositoryI interface {
	// Returns stats of uid or ErrUserNotFound
	FindByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Same as FindByUserID but locks the row until the surrounding transaction ends
	FindByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Overwrites totals and streak fields
	Update(ctx context.Context, stats *entity.UserStats) error
	// Lists first limit users ordered by points, then by account age. Rank is left zero
	ListRanked(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
	// Counts users placed before uid in the ListRanked order
	CountAhead(ctx context.Context, uid uuid.UUID) (int, error)
}

type TxManagerI interface {
	// Runs fn in one transaction. Repositories handed to fn share it; the
	// transaction commits only if fn returns nil
	WithinTx(ctx context.Context, fn func(ctx context.Context, activities ActivitiesRepositoryI, stats StatsRepositoryI) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is satisfied by both pools and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
