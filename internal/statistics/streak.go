package statistics

import "time"

// Streak is the run of consecutive days with at least one learning session.
type Streak struct {
	Current int
	Longest int
}

// NextStreak returns the streak after an activity on today.
// lastActivity is nil before the first activity. Days are compared in the location of today.
func NextStreak(lastActivity *time.Time, today time.Time, streak Streak) Streak {
	if lastActivity == nil {
		return Streak{Current: 1, Longest: max(streak.Longest, 1)}
	}

	switch daysBetween(*lastActivity, today) {
	case 0:
	case 1:
		streak.Current++
	default:
		streak.Current = 1
	}
	streak.Longest = max(streak.Longest, streak.Current)
	return streak
}

// daysBetween counts calendar days from a to b in the location of b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	dayA := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	dayB := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(dayB.Sub(dayA).Hours() / 24)
}
