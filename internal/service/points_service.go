package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/internal/scoring"
	"github.com/limbo/wellness/pkg/datekey"
	"github.com/limbo/wellness/pkg/entity"
)

type PointsService struct {
	stats    repository.StatsRepositoryI
	tx       repository.TxManagerI
	calendar *datekey.Calendar
	locks    *UserLocks
	opts     Options
}

// locks must be the same set the activity service uses, otherwise a recompute
// can interleave with a toggle of the same user.
func NewPointsService(stats repository.StatsRepositoryI, tx repository.TxManagerI, calendar *datekey.Calendar, locks *UserLocks, opts Options) *PointsService {
	if stats == nil || tx == nil {
		log.Fatal("on points service provided nil repos")
	}
	if calendar == nil {
		calendar = datekey.NewCalendar(nil)
	}
	if locks == nil {
		locks = NewUserLocks()
	}
	return &PointsService{
		stats:    stats,
		tx:       tx,
		calendar: calendar,
		locks:    locks,
		opts:     opts.withDefaults(),
	}
}

// RecomputeTotal rebuilds totalPoints from stored history. Calling it again
// without new activity stores the same number.
func (ps *PointsService) RecomputeTotal(ctx context.Context, uid uuid.UUID) (int, error) {
	unlock, err := ps.locks.Lock(ctx, uid)
	if err != nil {
		return 0, errors.New("recomputing total error: " + err.Error())
	}
	defer unlock()

	var total int
	err = withRetry(ctx, ps.opts.MaxAttempts, "recomputing total", func() error {
		return ps.tx.WithinTx(ctx, func(ctx context.Context, activities repository.ActivitiesRepositoryI, stats repository.StatsRepositoryI) error {
			current, err := stats.FindByUserIDForUpdate(ctx, uid)
			if err != nil {
				return err
			}
			totals, err := recomputeTotals(ctx, activities, uid, current.CurrentStreak, ps.calendar.CurrentMonth(), ps.opts.Policy)
			if err != nil {
				return err
			}
			current.TotalPoints = totals.Total()
			if err = stats.Update(ctx, current); err != nil {
				return err
			}
			total = current.TotalPoints
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (ps *PointsService) GetMyStats(ctx context.Context, uid uuid.UUID) (*entity.MyStats, error) {
	stats, err := ps.stats.FindByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	ahead, err := ps.stats.CountAhead(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.MyStats{
		TotalPoints:      stats.TotalPoints,
		CurrentStreak:    stats.CurrentStreak,
		LongestStreak:    stats.LongestStreak,
		LastActivityDate: stats.LastActivityDate,
		Rank:             ahead + 1,
	}, nil
}

// GetLeaderboard returns the first topN users. topN outside [1, 100] is clamped, zero means 20.
func (ps *PointsService) GetLeaderboard(ctx context.Context, topN int) ([]*entity.LeaderboardEntry, error) {
	switch {
	case topN == 0:
		topN = DefaultLeaderboardSize
	case topN < 1:
		topN = 1
	case topN > MaxLeaderboardSize:
		topN = MaxLeaderboardSize
	}
	entries, err := ps.stats.ListRanked(ctx, topN)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries, nil
}

// RankOf is 1 + the number of users ordered before uid on the leaderboard.
func (ps *PointsService) RankOf(ctx context.Context, uid uuid.UUID) (int, error) {
	if _, err := ps.stats.FindByUserID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("repository error: " + err.Error())
	}
	ahead, err := ps.stats.CountAhead(ctx, uid)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return ahead + 1, nil
}

// recomputeTotals reads the user's full history through activities, which
// must share the caller's transaction so the record just written is included.
func recomputeTotals(ctx context.Context, activities repository.ActivitiesRepositoryI, uid uuid.UUID, currentStreak int, month string, policy scoring.MilestonePolicy) (scoring.Totals, error) {
	records, err := activities.ListByUser(ctx, uid)
	if err != nil {
		return scoring.Totals{}, err
	}
	return scoring.Recompute(records, currentStreak, month, policy), nil
}
