// Package streak advances a user's completion streak one processed day at a time.
package streak

import (
	"github.com/limbo/wellness/pkg/datekey"
	"github.com/limbo/wellness/pkg/entity"
)

type Transition int

const (
	// Incomplete: the day does not have every habit done, nothing moves.
	Incomplete Transition = iota
	// Started: first completed day ever.
	Started
	// Continued: the previous completed day was yesterday.
	Continued
	// Restarted: at least one day was missed, the streak begins again at 1.
	Restarted
	// AlreadyCounted: this day already advanced the streak.
	AlreadyCounted
	// Backfilled: the day is older than the last counted day.
	Backfilled
)

func (t Transition) String() string {
	switch t {
	case Incomplete:
		return "incomplete"
	case Started:
		return "started"
	case Continued:
		return "continued"
	case Restarted:
		return "restarted"
	case AlreadyCounted:
		return "already_counted"
	case Backfilled:
		return "backfilled"
	}
	return "unknown"
}

// Advances reports whether the transition changed the streak fields.
func (t Transition) Advances() bool {
	return t == Started || t == Continued || t == Restarted
}

// Classify picks the transition for a fully completed day given the last counted day.
// Both keys must be valid date keys, except lastActivityDate which may be empty.
func Classify(lastActivityDate, day string) (Transition, error) {
	if lastActivityDate == "" {
		return Started, nil
	}
	if _, err := datekey.Parse(lastActivityDate); err != nil {
		return Incomplete, err
	}
	yesterday, err := datekey.AddDays(day, -1)
	if err != nil {
		return Incomplete, err
	}
	switch {
	case lastActivityDate == day:
		return AlreadyCounted, nil
	case lastActivityDate == yesterday:
		return Continued, nil
	case lastActivityDate > day:
		return Backfilled, nil
	}
	return Restarted, nil
}

// Advance applies one day's completion state to stats and returns the new
// stats with the transition taken. Only a day with all habits completed can
// move the streak; un-completing a habit later never rolls it back.
func Advance(stats entity.UserStats, day string, completed int) (entity.UserStats, Transition, error) {
	if _, err := datekey.Parse(day); err != nil {
		return stats, Incomplete, err
	}
	if completed < len(entity.Habits) {
		return stats, Incomplete, nil
	}
	transition, err := Classify(stats.LastActivityDate, day)
	if err != nil {
		return stats, Incomplete, err
	}
	switch transition {
	case Continued:
		stats.CurrentStreak++
	case Started, Restarted:
		stats.CurrentStreak = 1
	default:
		return stats, transition, nil
	}
	stats.LastActivityDate = day
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return stats, transition, nil
}

// Rejoin recounts the run ending at stats.LastActivityDate after an older day
// was completed, since that day may have closed a gap. completed reports
// whether a day has every habit done. The result is applied only when the
// recounted run is longer than the current streak.
func Rejoin(stats entity.UserStats, completed func(day string) bool) (entity.UserStats, bool, error) {
	if stats.LastActivityDate == "" {
		return stats, false, nil
	}
	run := 0
	day := stats.LastActivityDate
	for completed(day) {
		run++
		prev, err := datekey.AddDays(day, -1)
		if err != nil {
			return stats, false, err
		}
		day = prev
	}
	if run <= stats.CurrentStreak {
		return stats, false, nil
	}
	stats.CurrentStreak = run
	if run > stats.LongestStreak {
		stats.LongestStreak = run
	}
	return stats, true, nil
}
