package scoring

import (
	"fmt"

	"github.com/limbo/wellness/pkg/datekey"
	"github.com/limbo/wellness/pkg/entity"
)

const (
	PerActivityPoints        = 10
	DailyCompletionBonus     = 15
	Streak7Bonus             = 50
	Streak30Bonus            = 200
	MonthlyPerActivityPoints = 5
)

// MilestonePolicy picks how streak milestones are paid.
type MilestonePolicy string

const (
	// OneTime pays 50/200 once, into the pointsEarned of the day the streak reaches 7/30.
	OneTime MilestonePolicy = "one_time"
	// Recurring adds 50/200 to every total while the current streak stays at or above 7/30.
	Recurring MilestonePolicy = "recurring"
)

func ParsePolicy(s string) (MilestonePolicy, error) {
	switch MilestonePolicy(s) {
	case "", OneTime:
		return OneTime, nil
	case Recurring:
		return Recurring, nil
	}
	return "", fmt.Errorf("unknown milestone policy %q", s)
}

// CompletedCount counts completed habits. Water is not a habit here.
func CompletedCount(rec *entity.ActivityRecord) int {
	if rec == nil {
		return 0
	}
	count := 0
	for _, h := range entity.Habits {
		if rec.Habit(h).Completed {
			count++
		}
	}
	return count
}

// BaseDayPoints scores the habit flags alone.
func BaseDayPoints(rec *entity.ActivityRecord) int {
	completed := CompletedCount(rec)
	points := completed * PerActivityPoints
	if completed == len(entity.Habits) {
		points += DailyCompletionBonus
	}
	return points
}

// ScoreDay is the value stored as pointsEarned: the flags' points plus any
// milestone payment already attached to the day.
func ScoreDay(rec *entity.ActivityRecord) int {
	if rec == nil {
		return 0
	}
	return BaseDayPoints(rec) + rec.MilestoneBonus
}

// MilestoneBonus is the payment for a streak that has just become exactly 7 or 30.
func MilestoneBonus(streak int) int {
	switch streak {
	case 7:
		return Streak7Bonus
	case 30:
		return Streak30Bonus
	}
	return 0
}

// MilestonesCrossed sums the milestone payments for every streak length in (from, to].
func MilestonesCrossed(from, to int) int {
	if to <= from {
		return 0
	}
	return StreakBonus(to) - StreakBonus(from)
}

// StreakBonus is the flat bonus for a streak that currently qualifies.
func StreakBonus(streak int) int {
	bonus := 0
	if streak >= 7 {
		bonus += Streak7Bonus
	}
	if streak >= 30 {
		bonus += Streak30Bonus
	}
	return bonus
}

// MonthlyBonus pays for every individual habit completion dated in month (YYYY-MM).
func MonthlyBonus(records []*entity.ActivityRecord, month string) int {
	completions := 0
	for _, rec := range records {
		if rec == nil || datekey.Month(rec.Date) != month {
			continue
		}
		completions += CompletedCount(rec)
	}
	return completions * MonthlyPerActivityPoints
}

type Totals struct {
	HistorySum   int
	StreakBonus  int
	MonthlyBonus int
}

func (t Totals) Total() int {
	return t.HistorySum + t.StreakBonus + t.MonthlyBonus
}

// Recompute derives a user's lifetime total from stored history. It reads
// nothing but its arguments, so repeated calls over the same history agree.
func Recompute(records []*entity.ActivityRecord, currentStreak int, month string, policy MilestonePolicy) Totals {
	var t Totals
	for _, rec := range records {
		if rec == nil {
			continue
		}
		t.HistorySum += rec.PointsEarned
	}
	if policy == Recurring {
		t.StreakBonus = StreakBonus(currentStreak)
	}
	t.MonthlyBonus = MonthlyBonus(records, month)
	return t
}
