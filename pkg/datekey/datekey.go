// Package datekey handles the YYYY-MM-DD day keys activity records are stored under.
package datekey

import (
	"errors"
	"regexp"
	"time"
)

const Layout = "2006-01-02"

var (
	keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	ErrMalformed = errors.New("date key must be a valid YYYY-MM-DD date")
)

// Parse returns midnight UTC of the day named by key.
func Parse(key string) (time.Time, error) {
	if !keyPattern.MatchString(key) {
		return time.Time{}, ErrMalformed
	}
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, ErrMalformed
	}
	return t, nil
}

func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddDays shifts key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// Month returns the YYYY-MM prefix of a valid key.
func Month(key string) string {
	if len(key) < 7 {
		return ""
	}
	return key[:7]
}

// Calendar decides which day "today" is. The zone is explicit so the day
// boundary does not depend on the host's local time.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		loc: loc,
		now: time.Now,
	}
}

// WithClock returns a copy of the calendar reading time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{
		loc: c.loc,
		now: now,
	}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) Today() string {
	return Format(c.now().In(c.loc))
}

func (c *Calendar) DaysAgo(n int) string {
	return Format(c.now().In(c.loc).AddDate(0, 0, -n))
}

func (c *Calendar) CurrentMonth() string {
	return Month(c.Today())
}

// IsFuture reports whether key is after today in the calendar's zone.
func (c *Calendar) IsFuture(key string) bool {
	return key > c.Today()
}
