package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activityColumnNames = []string{
	"id", "user_id", "activity_date",
	"exercise_completed", "exercise_details", "exercise_duration",
	"diet_completed", "diet_details", "diet_duration",
	"skin_care_completed", "skin_care_details", "skin_care_duration",
	"water_amount", "water_completed", "points_earned", "milestone_bonus",
	"created_at", "updated_at",
}

func activityRow(rows *pgxmock.Rows, act *entity.ActivityRecord) *pgxmock.Rows {
	return rows.AddRow(
		act.ID, act.UserID, act.Date,
		act.Exercise.Completed, act.Exercise.Details, act.Exercise.Duration,
		act.Diet.Completed, act.Diet.Details, act.Diet.Duration,
		act.SkinCare.Completed, act.SkinCare.Details, act.SkinCare.Duration,
		act.Water.Amount, act.Water.Completed, act.PointsEarned, act.MilestoneBonus,
		act.CreatedAt, act.UpdatedAt,
	)
}

func testActivity(uid uuid.UUID, date string) *entity.ActivityRecord {
	now := time.Now().Truncate(time.Second)
	return &entity.ActivityRecord{
		ID:           uuid.New(),
		UserID:       uid,
		Date:         date,
		Exercise:     entity.HabitEntry{Completed: true, Details: "run", Duration: 30},
		Diet:         entity.HabitEntry{Completed: true, Details: "salad"},
		SkinCare:     entity.HabitEntry{Completed: false},
		Water:        entity.Water{Amount: 1.5},
		PointsEarned: 20,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestFindActivityByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivitiesRepoWithConn(mock)
	query := `FROM daily_activities WHERE user_id = \$1 AND activity_date = \$2`
	uid := uuid.New()
	date := "2024-01-02"
	stored := testActivity(uid, date)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, date).
			WillReturnRows(activityRow(pgxmock.NewRows(activityColumnNames), stored))
		act, err := repo.FindByDate(ctx, uid, date)
		require.NoError(t, err)
		assert.Equal(t, stored, act)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, date).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByDate(ctx, uid, date)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("serialization failure", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, date).WillReturnError(&pgconn.PgError{Code: "40001"})
		_, err := repo.FindByDate(ctx, uid, date)
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, date).WillReturnError(errors.New("db error"))
		_, err := repo.FindByDate(ctx, uid, date)
		assert.EqualError(t, err, "getting activity by date error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivitiesRepoWithConn(mock)
	uid := uuid.New()
	first := testActivity(uid, "2024-01-01")
	second := testActivity(uid, "2024-01-02")
	ctx := context.Background()

	t.Run("whole history", func(t *testing.T) {
		rows := pgxmock.NewRows(activityColumnNames)
		activityRow(rows, first)
		activityRow(rows, second)
		mock.ExpectQuery(`FROM daily_activities WHERE user_id = \$1 ORDER BY activity_date`).
			WithArgs(uid).WillReturnRows(rows)
		list, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, []*entity.ActivityRecord{first, second}, list)
	})
	t.Run("empty history", func(t *testing.T) {
		mock.ExpectQuery(`FROM daily_activities WHERE user_id = \$1 ORDER BY activity_date`).
			WithArgs(uid).WillReturnRows(pgxmock.NewRows(activityColumnNames))
		list, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
	t.Run("since date", func(t *testing.T) {
		rows := pgxmock.NewRows(activityColumnNames)
		activityRow(rows, second)
		mock.ExpectQuery(`activity_date >= \$2 ORDER BY activity_date DESC`).
			WithArgs(uid, "2024-01-02").WillReturnRows(rows)
		list, err := repo.ListSince(ctx, uid, "2024-01-02")
		require.NoError(t, err)
		assert.Equal(t, []*entity.ActivityRecord{second}, list)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`activity_date >= \$2 ORDER BY activity_date DESC`).
			WithArgs(uid, "2024-01-02").WillReturnError(errors.New("db error"))
		_, err := repo.ListSince(ctx, uid, "2024-01-02")
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivitiesRepoWithConn(mock)
	query := `INSERT INTO daily_activities`
	uid := uuid.New()
	act := testActivity(uid, "2024-01-02")
	act.ID = uuid.Nil
	// stored row carries water written by another request
	stored := testActivity(uid, "2024-01-02")
	stored.Water = entity.Water{Amount: 2.5, Completed: true}
	args := []any{
		uid, "2024-01-02",
		true, "run", 30,
		true, "salad", 0,
		false, "", 0,
		20, 0,
	}
	ctx := context.Background()
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).
					WillReturnRows(activityRow(pgxmock.NewRows(activityColumnNames), stored))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "racing first insert",
			Error: errorvalues.ErrConflict,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "deadlock",
			Error: errorvalues.ErrConflict,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "40P01"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Upsert(ctx, act)
			if tc.Error == nil {
				assert.NoError(t, err)
				assert.Equal(t, stored, act)
				assert.Equal(t, entity.Water{Amount: 2.5, Completed: true}, act.Water)
				return
			}
			assert.ErrorIs(t, err, tc.Error)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertWater(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivitiesRepoWithConn(mock)
	query := `INSERT INTO daily_activities \(user_id, activity_date, water_amount, water_completed\)`
	uid := uuid.New()
	stored := testActivity(uid, "2024-01-02")
	stored.Water = entity.Water{Amount: 2.5, Completed: true}
	ctx := context.Background()

	t.Run("successful", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, "2024-01-02", 2.5, true).
			WillReturnRows(activityRow(pgxmock.NewRows(activityColumnNames), stored))
		act, err := repo.UpsertWater(ctx, uid, "2024-01-02", entity.Water{Amount: 2.5, Completed: true})
		require.NoError(t, err)
		assert.Equal(t, stored, act)
		// habits are returned as stored, not reset
		assert.True(t, act.Exercise.Completed)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, "2024-01-02", 2.5, true).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.UpsertWater(ctx, uid, "2024-01-02", entity.Water{Amount: 2.5, Completed: true})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
