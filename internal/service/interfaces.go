package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/wellness/internal/scoring"
	"github.com/limbo/wellness/pkg/entity"
)

type RecordActivityRequest struct {
	// Defaults to today when empty
	Date      string  `json:"date" validate:"omitempty,datekey"`
	Habit     string  `json:"type" validate:"required,oneof=exercise diet skinCare"`
	Completed *bool   `json:"completed" validate:"required"`
	Details   *string `json:"details" validate:"omitempty,max=500"`
	// Minutes
	Duration *int `json:"duration" validate:"omitempty,gte=0,lte=1440"`
}

type RecordWaterRequest struct {
	Date string `json:"date" validate:"omitempty,datekey"`
	// Liters drunk so far that day, replaces the stored amount
	Amount float64 `json:"amount" validate:"gte=0,lte=20"`
}

type ActivityResult struct {
	Activity *entity.ActivityRecord `json:"activity"`
	Points   entity.PointsSummary   `json:"points"`
}

type UserServiceI interface {
	// Mirrors an externally authenticated account. Creates the user and zeroed
	// stats on first sight, returns the stored user afterwards
	EnsureUser(ctx context.Context, uid uuid.UUID, name string) (*entity.User, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ActivityServiceI interface {
	// Sets one habit of a day, then rescores the day, advances the streak and
	// recomputes the total, all as one unit per user
	RecordActivity(ctx context.Context, uid uuid.UUID, req *RecordActivityRequest) (*ActivityResult, error)
	RecordWater(ctx context.Context, uid uuid.UUID, req *RecordWaterRequest) (*entity.ActivityRecord, error)
	// Returns an empty record when nothing was logged for date
	GetActivity(ctx context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error)
	// Records of the last days days, newest first
	GetActivityHistory(ctx context.Context, uid uuid.UUID, days int) ([]*entity.ActivityRecord, error)
}

type PointsServiceI interface {
	RecomputeTotal(ctx context.Context, uid uuid.UUID) (int, error)
	GetMyStats(ctx context.Context, uid uuid.UUID) (*entity.MyStats, error)
	GetLeaderboard(ctx context.Context, topN int) ([]*entity.LeaderboardEntry, error)
	RankOf(ctx context.Context, uid uuid.UUID) (int, error)
}

type Options struct {
	Policy          scoring.MilestonePolicy
	WaterGoalLiters float64
	// Attempts per unit of work when the store reports a conflict
	MaxAttempts int
}

const (
	DefaultWaterGoalLiters = 2.0
	DefaultMaxAttempts     = 3

	DefaultHistoryDays = 30
	MaxHistoryDays     = 366

	DefaultLeaderboardSize = 20
	MaxLeaderboardSize     = 100
)

func (o Options) withDefaults() Options {
	if o.Policy == "" {
		o.Policy = scoring.OneTime
	}
	if o.WaterGoalLiters <= 0 {
		o.WaterGoalLiters = DefaultWaterGoalLiters
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return o
}
