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

const activityColumns = `id, user_id, activity_date,
	exercise_completed, exercise_details, exercise_duration,
	diet_completed, diet_details, diet_duration,
	skin_care_completed, skin_care_details, skin_care_duration,
	water_amount, water_completed, points_earned, milestone_bonus,
	created_at, updated_at`

type ActivitiesRepository struct {
	conn Querier
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*entity.ActivityRecord, error) {
	var act entity.ActivityRecord
	err := row.Scan(
		&act.ID, &act.UserID, &act.Date,
		&act.Exercise.Completed, &act.Exercise.Details, &act.Exercise.Duration,
		&act.Diet.Completed, &act.Diet.Details, &act.Diet.Duration,
		&act.SkinCare.Completed, &act.SkinCare.Details, &act.SkinCare.Duration,
		&act.Water.Amount, &act.Water.Completed, &act.PointsEarned, &act.MilestoneBonus,
		&act.CreatedAt, &act.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (ar *ActivitiesRepository) FindByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+activityColumns+` FROM daily_activities WHERE user_id = $1 AND activity_date = $2;`, uid, date)
	act, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, conflictOr(err, "getting activity by date error: ")
	}
	return act, nil
}

func (ar *ActivitiesRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.ActivityRecord, error) {
	rows, err := ar.conn.Query(ctx, `SELECT `+activityColumns+` FROM daily_activities WHERE user_id = $1 ORDER BY activity_date;`, uid)
	if err != nil {
		return nil, conflictOr(err, "listing activities error: ")
	}
	return collectActivities(rows)
}

func (ar *ActivitiesRepository) ListSince(ctx context.Context, uid uuid.UUID, since string) ([]*entity.ActivityRecord, error) {
	rows, err := ar.conn.Query(ctx, `SELECT `+activityColumns+` FROM daily_activities
		WHERE user_id = $1 AND activity_date >= $2 ORDER BY activity_date DESC;`, uid, since)
	if err != nil {
		return nil, errors.New("listing activities for period error: " + err.Error())
	}
	return collectActivities(rows)
}

func collectActivities(rows pgx.Rows) ([]*entity.ActivityRecord, error) {
	defer rows.Close()
	result := make([]*entity.ActivityRecord, 0)
	for rows.Next() {
		act, err := scanActivity(rows)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		result = append(result, act)
	}
	if err := rows.Err(); err != nil {
		return nil, conflictOr(err, "unexpected activity rows error: ")
	}
	return result, nil
}

// Upsert writes the habit columns and refreshes act with the stored row.
func (ar *ActivitiesRepository) Upsert(ctx context.Context, act *entity.ActivityRecord) error {
	row := ar.conn.QueryRow(ctx, `INSERT INTO daily_activities (user_id, activity_date,
			exercise_completed, exercise_details, exercise_duration,
			diet_completed, diet_details, diet_duration,
			skin_care_completed, skin_care_details, skin_care_duration,
			points_earned, milestone_bonus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id, activity_date) DO UPDATE SET
			exercise_completed = EXCLUDED.exercise_completed,
			exercise_details = EXCLUDED.exercise_details,
			exercise_duration = EXCLUDED.exercise_duration,
			diet_completed = EXCLUDED.diet_completed,
			diet_details = EXCLUDED.diet_details,
			diet_duration = EXCLUDED.diet_duration,
			skin_care_completed = EXCLUDED.skin_care_completed,
			skin_care_details = EXCLUDED.skin_care_details,
			skin_care_duration = EXCLUDED.skin_care_duration,
			points_earned = EXCLUDED.points_earned,
			milestone_bonus = EXCLUDED.milestone_bonus,
			updated_at = NOW()
		RETURNING `+activityColumns+`;`,
		act.UserID, act.Date,
		act.Exercise.Completed, act.Exercise.Details, act.Exercise.Duration,
		act.Diet.Completed, act.Diet.Details, act.Diet.Duration,
		act.SkinCare.Completed, act.SkinCare.Details, act.SkinCare.Duration,
		act.PointsEarned, act.MilestoneBonus,
	)
	stored, err := scanActivity(row)
	if err != nil {
		switch pgErrorCode(err) {
		case codeFKViolation:
			return errorvalues.ErrUserNotFound
		// Concurrent first insert for the same day
		case codeUniqueViolation:
			return errorvalues.ErrConflict
		}
		return conflictOr(err, "upserting activity error: ")
	}
	// Water may have been written by a concurrent RecordWater
	*act = *stored
	return nil
}

func (ar *ActivitiesRepository) UpsertWater(ctx context.Context, uid uuid.UUID, date string, water entity.Water) (*entity.ActivityRecord, error) {
	row := ar.conn.QueryRow(ctx, `INSERT INTO daily_activities (user_id, activity_date, water_amount, water_completed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, activity_date) DO UPDATE SET
			water_amount = EXCLUDED.water_amount,
			water_completed = EXCLUDED.water_completed,
			updated_at = NOW()
		RETURNING `+activityColumns+`;`,
		uid, date, water.Amount, water.Completed,
	)
	act, err := scanActivity(row)
	if err != nil {
		switch pgErrorCode(err) {
		case codeFKViolation:
			return nil, errorvalues.ErrUserNotFound
		case codeUniqueViolation:
			return nil, errorvalues.ErrConflict
		}
		return nil, conflictOr(err, "upserting water error: ")
	}
	return act, nil
}
