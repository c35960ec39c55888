package entity

import (
	"time"

	"github.com/google/uuid"
)

type HabitType string

const (
	HabitExercise HabitType = "exercise"
	HabitDiet     HabitType = "diet"
	HabitSkinCare HabitType = "skinCare"
)

// Habits lists every habit that counts toward points and streaks.
var Habits = []HabitType{HabitExercise, HabitDiet, HabitSkinCare}

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitEntry struct {
	Completed bool   `json:"completed"`
	Details   string `json:"details"`
	// Minutes
	Duration int `json:"duration"`
}

type Water struct {
	// Liters
	Amount    float64 `json:"amount"`
	Completed bool    `json:"completed"`
}

// ActivityRecord is one user's log for one calendar day. PointsEarned is
// derived from the habit flags plus MilestoneBonus and is never edited directly.
type ActivityRecord struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user"`
	Date           string     `json:"date"`
	Exercise       HabitEntry `json:"exercise"`
	Diet           HabitEntry `json:"diet"`
	SkinCare       HabitEntry `json:"skinCare"`
	Water          Water      `json:"water"`
	PointsEarned   int        `json:"pointsEarned"`
	MilestoneBonus int        `json:"milestoneBonus"`
	CreatedAt      time.Time  `json:"createdAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt,omitempty"`
}

// NewActivityRecord returns the empty record used before anything is logged for a day.
func NewActivityRecord(uid uuid.UUID, date string) *ActivityRecord {
	return &ActivityRecord{
		UserID: uid,
		Date:   date,
	}
}

// Habit returns a pointer to the entry for h, or nil for unknown habits.
func (a *ActivityRecord) Habit(h HabitType) *HabitEntry {
	switch h {
	case HabitExercise:
		return &a.Exercise
	case HabitDiet:
		return &a.Diet
	case HabitSkinCare:
		return &a.SkinCare
	}
	return nil
}

type UserStats struct {
	UserID           uuid.UUID `json:"user"`
	TotalPoints      int       `json:"totalPoints"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	LastActivityDate string    `json:"lastActivityDate"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

type PointsSummary struct {
	PointsEarned  int `json:"pointsEarned"`
	TotalPoints   int `json:"totalPoints"`
	CurrentStreak int `json:"currentStreak"`
}

type MyStats struct {
	TotalPoints      int    `json:"totalPoints"`
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	LastActivityDate string `json:"lastActivityDate"`
	Rank             int    `json:"rank"`
}

type LeaderboardEntry struct {
	UserID        uuid.UUID `json:"user"`
	Name          string    `json:"name"`
	TotalPoints   int       `json:"totalPoints"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	Rank          int       `json:"rank"`
}
