package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/entity"
)

type StatsRepository struct {
	conn Querier
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) FindByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.find(ctx, `SELECT user_id, total_points, current_streak, longest_streak, last_activity_date, updated_at
		FROM user_stats WHERE user_id = $1;`, uid)
}

func (sr *StatsRepository) FindByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.find(ctx, `SELECT user_id, total_points, current_streak, longest_streak, last_activity_date, updated_at
		FROM user_stats WHERE user_id = $1 FOR UPDATE;`, uid)
}

func (sr *StatsRepository) find(ctx context.Context, query string, uid uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	row := sr.conn.QueryRow(ctx, query, uid)
	err := row.Scan(&stats.UserID, &stats.TotalPoints, &stats.CurrentStreak, &stats.LongestStreak, &stats.LastActivityDate, &stats.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, conflictOr(err, "getting user stats error: ")
	}
	return &stats, nil
}

func (sr *StatsRepository) Update(ctx context.Context, stats *entity.UserStats) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE user_stats SET total_points = $1, current_streak = $2, longest_streak = $3,
		last_activity_date = $4, updated_at = NOW() WHERE user_id = $5;`,
		stats.TotalPoints,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.LastActivityDate,
		stats.UserID,
	)
	if err != nil {
		return conflictOr(err, "updating user stats error: ")
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (sr *StatsRepository) ListRanked(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	rows, err := sr.conn.Query(ctx, `SELECT u.id, u.name, s.total_points, s.current_streak, s.longest_streak
		FROM user_stats s JOIN users u ON u.id = s.user_id
		ORDER BY s.total_points DESC, u.created_at ASC, u.id ASC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		err = rows.Scan(&e.UserID, &e.Name, &e.TotalPoints, &e.CurrentStreak, &e.LongestStreak)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return entries, nil
}

func (sr *StatsRepository) CountAhead(ctx context.Context, uid uuid.UUID) (int, error) {
	row := sr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM user_stats s JOIN users u ON u.id = s.user_id,
		(SELECT ms.total_points, mu.created_at, mu.id FROM user_stats ms JOIN users mu ON mu.id = ms.user_id WHERE ms.user_id = $1) me
		WHERE s.total_points > me.total_points
			OR (s.total_points = me.total_points AND (u.created_at, u.id) < (me.created_at, me.id));`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting users ahead error: " + err.Error())
	}
	return count, nil
}
