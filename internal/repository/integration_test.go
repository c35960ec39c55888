package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("wellness"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRepositoriesIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	t.Cleanup(pool.Close)
	users := repository.NewUsersRepoWithConn(pool)
	activities := repository.NewActivitiesRepoWithConn(pool)
	stats := repository.NewStatsRepoWithConn(pool)
	tm := repository.NewTxManagerWithConn(pool)
	ctx := context.Background()

	older := entity.User{ID: uuid.New(), Name: "older"}
	newer := entity.User{ID: uuid.New(), Name: "newer"}
	t.Run("users get zeroed stats", func(t *testing.T) {
		require.NoError(t, users.Create(ctx, &older))
		require.NoError(t, users.Create(ctx, &newer))
		// repeated mirroring is harmless
		require.NoError(t, users.Create(ctx, &older))
		st, err := stats.FindByUserID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, st.TotalPoints)
		assert.Equal(t, "", st.LastActivityDate)
	})
	t.Run("one record per day", func(t *testing.T) {
		act := entity.NewActivityRecord(older.ID, "2024-01-01")
		act.Exercise.Completed = true
		act.PointsEarned = 10
		require.NoError(t, activities.Upsert(ctx, act))
		firstID := act.ID

		act.Diet.Completed = true
		act.PointsEarned = 20
		require.NoError(t, activities.Upsert(ctx, act))
		assert.Equal(t, firstID, act.ID)

		withWater, err := activities.UpsertWater(ctx, older.ID, "2024-01-01", entity.Water{Amount: 2, Completed: true})
		require.NoError(t, err)
		assert.Equal(t, 20, withWater.PointsEarned)
		assert.True(t, withWater.Diet.Completed)

		act.SkinCare.Completed = true
		require.NoError(t, activities.Upsert(ctx, act))
		assert.Equal(t, entity.Water{Amount: 2, Completed: true}, act.Water)

		list, err := activities.ListByUser(ctx, older.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
	t.Run("unknown user can't log", func(t *testing.T) {
		err := activities.Upsert(ctx, entity.NewActivityRecord(uuid.New(), "2024-01-01"))
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("ties ranked by account age", func(t *testing.T) {
		for _, uid := range []uuid.UUID{older.ID, newer.ID} {
			err := tm.WithinTx(ctx, func(ctx context.Context, _ repository.ActivitiesRepositoryI, sr repository.StatsRepositoryI) error {
				st, err := sr.FindByUserIDForUpdate(ctx, uid)
				if err != nil {
					return err
				}
				st.TotalPoints = 50
				return sr.Update(ctx, st)
			})
			require.NoError(t, err)
		}
		entries, err := stats.ListRanked(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, older.ID, entries[0].UserID)
		assert.Equal(t, newer.ID, entries[1].UserID)

		ahead, err := stats.CountAhead(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, ahead)
		ahead, err = stats.CountAhead(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, ahead)
	})
}
