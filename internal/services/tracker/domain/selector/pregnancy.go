package selector

import (
	"time"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"
)

// Trimester is the coarse stage used for water goals.
type Trimester string

const (
	TrimesterFirst  Trimester = "first"
	TrimesterSecond Trimester = "second"
	TrimesterThird  Trimester = "third"
)

// CurrentTrimester splits weeks into twelve-week bands: up to week 12 is the
// first trimester, up to week 24 the second, anything later the third.
func CurrentTrimester(week int) Trimester {
	switch {
	case week <= 12:
		return TrimesterFirst
	case week <= 24:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

// PregnancyPhase is the clinical trimester shown on the pregnancy screen.
// It uses 12/27 week boundaries, unlike CurrentTrimester.
func PregnancyPhase(week int) Trimester {
	switch {
	case week <= 12:
		return TrimesterFirst
	case week <= 27:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

// PhaseLabel is the English label for a phase.
func PhaseLabel(phase Trimester) string {
	switch phase {
	case TrimesterFirst:
		return "First Trimester"
	case TrimesterSecond:
		return "Second Trimester"
	default:
		return "Third Trimester"
	}
}

// BabySizeForWeek returns the size comparison for week. Weeks beyond the
// table resolve to its last entry.
func BabySizeForWeek(tables lookup.Tables, week int) string {
	return tables.BabySize(week)
}

// WaterGoalGlasses returns the daily glasses for a trimester.
func WaterGoalGlasses(goals lookup.WaterGoals, trimester Trimester) int {
	switch trimester {
	case TrimesterFirst:
		return goals.First
	case TrimesterSecond:
		return goals.Second
	default:
		return goals.Third
	}
}

// DaysToDue returns whole days until due, rounded up. It is negative once
// the due date has passed.
func DaysToDue(due, now time.Time) int {
	return ceilDays(due.Sub(now))
}

// WeekFromDueDate estimates the pregnancy week from a due date at 40 weeks,
// clamped to [0, 42].
func WeekFromDueDate(due, now time.Time) int {
	days := DaysToDue(due, now)
	weeksLeft := days / 7
	if days%7 > 0 {
		weeksLeft++
	}
	return min(max(40-weeksLeft, 0), 42)
}
