package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/internal/scoring"
	"github.com/limbo/wellness/internal/streak"
	"github.com/limbo/wellness/pkg/datekey"
	"github.com/limbo/wellness/pkg/entity"
)

type ActivityService struct {
	activities repository.ActivitiesRepositoryI
	tx         repository.TxManagerI
	calendar   *datekey.Calendar
	locks      *UserLocks
	opts       Options
}

func NewActivityService(activities repository.ActivitiesRepositoryI, tx repository.TxManagerI, calendar *datekey.Calendar, locks *UserLocks, opts Options) *ActivityService {
	if activities == nil || tx == nil {
		log.Fatal("on activity service provided nil repos")
	}
	if calendar == nil {
		calendar = datekey.NewCalendar(nil)
	}
	if locks == nil {
		locks = NewUserLocks()
	}
	return &ActivityService{
		activities: activities,
		tx:         tx,
		calendar:   calendar,
		locks:      locks,
		opts:       opts.withDefaults(),
	}
}

func (as *ActivityService) RecordActivity(ctx context.Context, uid uuid.UUID, req *RecordActivityRequest) (*ActivityResult, error) {
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty request"))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := as.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	habit := entity.HabitType(req.Habit)

	unlock, err := as.locks.Lock(ctx, uid)
	if err != nil {
		return nil, errors.New("recording activity error: " + err.Error())
	}
	defer unlock()

	var result *ActivityResult
	err = withRetry(ctx, as.opts.MaxAttempts, "recording activity", func() error {
		return as.tx.WithinTx(ctx, func(ctx context.Context, activities repository.ActivitiesRepositoryI, stats repository.StatsRepositoryI) error {
			current, err := stats.FindByUserIDForUpdate(ctx, uid)
			if err != nil {
				return err
			}
			act, err := activities.FindByDate(ctx, uid, date)
			if err != nil {
				if !errors.Is(err, errorvalues.ErrActivityNotFound) {
					return err
				}
				act = entity.NewActivityRecord(uid, date)
			}
			entry := act.Habit(habit)
			if entry == nil {
				return errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidHabit)
			}
			entry.Completed = *req.Completed
			if req.Details != nil {
				entry.Details = *req.Details
			}
			if req.Duration != nil {
				entry.Duration = *req.Duration
			}

			next, transition, err := streak.Advance(*current, date, scoring.CompletedCount(act))
			if err != nil {
				return errors.Join(errorvalues.ErrValidation, err)
			}
			// A day advances the streak at most once, so its milestone is paid at most once
			if as.opts.Policy == scoring.OneTime && transition.Advances() {
				act.MilestoneBonus = scoring.MilestoneBonus(next.CurrentStreak)
			}
			rejoined := false
			if transition == streak.Backfilled {
				history, err := activities.ListByUser(ctx, uid)
				if err != nil {
					return err
				}
				done := completedDays(history, act)
				before := next.CurrentStreak
				next, rejoined, err = streak.Rejoin(next, func(day string) bool { return done[day] })
				if err != nil {
					return errors.Join(errorvalues.ErrValidation, err)
				}
				// Milestones reached by closing the gap are paid on the backfilled day
				if rejoined && as.opts.Policy == scoring.OneTime {
					act.MilestoneBonus += scoring.MilestonesCrossed(before, next.CurrentStreak)
				}
			}
			act.PointsEarned = scoring.ScoreDay(act)
			if err = activities.Upsert(ctx, act); err != nil {
				return err
			}

			totals, err := recomputeTotals(ctx, activities, uid, next.CurrentStreak, as.calendar.CurrentMonth(), as.opts.Policy)
			if err != nil {
				return err
			}
			next.TotalPoints = totals.Total()
			if err = stats.Update(ctx, &next); err != nil {
				return err
			}
			slog.Default().Debug("activity recorded",
				slog.String("uid", uid.String()),
				slog.String("date", date),
				slog.String("habit", req.Habit),
				slog.String("streak_transition", transition.String()),
				slog.Bool("rejoined", rejoined),
			)
			result = &ActivityResult{
				Activity: act,
				Points: entity.PointsSummary{
					PointsEarned:  act.PointsEarned,
					TotalPoints:   next.TotalPoints,
					CurrentStreak: next.CurrentStreak,
				},
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// completedDays marks the fully completed days of history, with act standing in
// for its stored version.
func completedDays(history []*entity.ActivityRecord, act *entity.ActivityRecord) map[string]bool {
	done := make(map[string]bool, len(history)+1)
	for _, rec := range history {
		done[rec.Date] = scoring.CompletedCount(rec) == len(entity.Habits)
	}
	done[act.Date] = scoring.CompletedCount(act) == len(entity.Habits)
	return done
}

// RecordWater only touches the water columns, so it neither scores nor takes the user's lock.
func (as *ActivityService) RecordWater(ctx context.Context, uid uuid.UUID, req *RecordWaterRequest) (*entity.ActivityRecord, error) {
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty request"))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := as.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	water := entity.Water{
		Amount:    req.Amount,
		Completed: req.Amount >= as.opts.WaterGoalLiters,
	}
	var act *entity.ActivityRecord
	err = withRetry(ctx, as.opts.MaxAttempts, "recording water", func() error {
		act, err = as.activities.UpsertWater(ctx, uid, date, water)
		return err
	})
	if err != nil {
		return nil, err
	}
	return act, nil
}

func (as *ActivityService) GetActivity(ctx context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error) {
	if !datekey.Valid(date) {
		return nil, errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidDate)
	}
	act, err := as.activities.FindByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return entity.NewActivityRecord(uid, date), nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return act, nil
}

func (as *ActivityService) GetActivityHistory(ctx context.Context, uid uuid.UUID, days int) ([]*entity.ActivityRecord, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}
	acts, err := as.activities.ListSince(ctx, uid, as.calendar.DaysAgo(days))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return acts, nil
}

// resolveDate applies the calendar's today to an omitted date and refuses days that haven't started yet.
func (as *ActivityService) resolveDate(date string) (string, error) {
	if date == "" {
		return as.calendar.Today(), nil
	}
	if !datekey.Valid(date) {
		return "", errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidDate)
	}
	if as.calendar.IsFuture(date) {
		return "", errors.Join(errorvalues.ErrValidation, errorvalues.ErrDateInFuture)
	}
	return date, nil
}
