package selector

import (
	"time"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/baby"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/pregnancy"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
)

const recentLimit = 3

// Summary is the dashboard view of a root snapshot.
type Summary struct {
	UserName  string    `json:"userName"`
	Language  string    `json:"language"`
	Week      int       `json:"week"`
	Trimester Trimester `json:"trimester"`
	Phase     Trimester `json:"phase"`
	BabySize  string    `json:"babySize"`
	// WaterGoal is glasses per day for the current trimester.
	WaterGoal int `json:"waterGoal"`

	DueDate string `json:"dueDate,omitempty"`
	// DaysToDue is nil when there is no parseable due date.
	DaysToDue *int `json:"daysToDue,omitempty"`
	// EstimatedWeek is derived from the due date, when there is one.
	EstimatedWeek *int `json:"estimatedWeek,omitempty"`

	BabyName string `json:"babyName,omitempty"`
	// BabyAge is nil without a profile birth date.
	BabyAge         *Age                   `json:"babyAge,omitempty"`
	NextVaccination *baby.VaccinationEntry `json:"nextVaccination,omitempty"`

	RecentWeight  []pregnancy.WeightEntry `json:"recentWeight"`
	RecentFeeding []baby.FeedingEntry     `json:"recentFeeding"`
	HospitalBag   BagProgress             `json:"hospitalBag"`
}

// BagProgress counts checked hospital bag items.
type BagProgress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

// Summarize builds the dashboard view using the embedded reference tables.
func Summarize(state store.State, now time.Time) Summary {
	return SummarizeWith(lookup.Default(), state, now)
}

// SummarizeWith builds the dashboard view from explicit reference tables.
func SummarizeWith(tables lookup.Tables, state store.State, now time.Time) Summary {
	week := state.Pregnancy.CurrentWeek
	trimester := CurrentTrimester(week)
	summary := Summary{
		Language:      state.Settings.Language,
		Week:          week,
		Trimester:     trimester,
		Phase:         PregnancyPhase(week),
		BabySize:      BabySizeForWeek(tables, week),
		WaterGoal:     WaterGoalGlasses(tables.WaterGoals, trimester),
		RecentWeight:  Recent(state.Pregnancy.Weight, recentLimit),
		RecentFeeding: Recent(state.Baby.Feeding, recentLimit),
	}
	if user := state.Auth.User; user != nil {
		summary.UserName = user.Name
		summary.DueDate = user.DueDate
	}
	if state.Pregnancy.DueDate != nil && *state.Pregnancy.DueDate != "" {
		summary.DueDate = *state.Pregnancy.DueDate
	}
	if summary.DueDate != "" {
		if due, err := ParseDate(summary.DueDate); err == nil {
			days := DaysToDue(due, now)
			estimated := WeekFromDueDate(due, now)
			summary.DaysToDue = &days
			summary.EstimatedWeek = &estimated
		}
	}

	if profile := state.Baby.BabyProfile; profile != nil {
		summary.BabyName = profile.Name
		if age, ok := profileAge(profile, now); ok {
			summary.BabyAge = &age
		}
	}
	if next, ok := NextUpcomingVaccination(state.Baby.Vaccinations); ok {
		summary.NextVaccination = &next
	}

	for _, item := range state.Pregnancy.HospitalBagChecklist {
		summary.HospitalBag.Total++
		if item.Checked {
			summary.HospitalBag.Checked++
		}
	}
	return summary
}
