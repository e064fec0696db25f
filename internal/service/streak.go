package service

import (
	"time"

	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

// AdvanceStreak applies one qualifying date to the current streak state.
// It only looks at the last active date, so dates fed out of order restart the
// streak instead of being merged into history.
func AdvanceStreak(current entity.Streak, date time.Time) entity.Streak {
	day := calendarDay(date)
	next := current
	switch {
	case current.LastActiveDate == nil:
		next.CurrentStreak = 1
		next.LongestStreak = 1
	case calendarDay(*current.LastActiveDate).AddDate(0, 0, 1).Equal(day):
		next.CurrentStreak++
		next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
	case calendarDay(*current.LastActiveDate).Equal(day):
		// same day again, counts stay
	default:
		next.CurrentStreak = 1
	}
	next.LastActiveDate = &day
	return next
}

// calendarDay drops the clock part of t, keeping its wall date, as UTC midnight.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// todayIn is the calendar date of now as seen in loc.
func todayIn(now time.Time, loc *time.Location) time.Time {
	return calendarDay(now.In(loc))
}

// loadLocation resolves tz, then fallback, then UTC.
func loadLocation(tz, fallback string) *time.Location {
	for _, name := range []string{tz, fallback} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}
