package selector

import (
	"fmt"
	"time"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/baby"
)

// AgeUnit picks how an age is phrased.
type AgeUnit string

const (
	AgeDays   AgeUnit = "days"
	AgeMonths AgeUnit = "months"
	AgeYears  AgeUnit = "years"
)

// Age is a baby age broken into display parts. Months are thirty days and
// years are 365 days.
type Age struct {
	Unit   AgeUnit `json:"unit"`
	Years  int     `json:"years"`
	Months int     `json:"months"`
	Days   int     `json:"days"`
}

// String renders the age in English.
func (a Age) String() string {
	switch a.Unit {
	case AgeDays:
		return fmt.Sprintf("%d days old", a.Days)
	case AgeMonths:
		return fmt.Sprintf("%d months %d days old", a.Months, a.Days)
	default:
		return fmt.Sprintf("%d years %d months old", a.Years, a.Months)
	}
}

// AgeOf measures the distance between birth and now in whole days, rounded
// up, regardless of which comes first.
func AgeOf(birth, now time.Time) Age {
	d := now.Sub(birth)
	if d < 0 {
		d = -d
	}
	days := ceilDays(d)
	switch {
	case days < 30:
		return Age{Unit: AgeDays, Days: days}
	case days < 365:
		return Age{Unit: AgeMonths, Months: days / 30, Days: days % 30}
	default:
		return Age{Unit: AgeYears, Years: days / 365, Months: (days % 365) / 30}
	}
}

// BabyAge renders the age of a baby born at birth.
func BabyAge(birth, now time.Time) string {
	return AgeOf(birth, now).String()
}

// NotSet is shown when a value has no source data.
const NotSet = "Not set"

// BabyAgeFromProfile renders the profile's age, or NotSet without a usable
// birth date.
func BabyAgeFromProfile(profile *baby.Profile, now time.Time) string {
	age, ok := profileAge(profile, now)
	if !ok {
		return NotSet
	}
	return age.String()
}

func profileAge(profile *baby.Profile, now time.Time) (Age, bool) {
	if profile == nil || profile.BirthDate == "" {
		return Age{}, false
	}
	birth, err := ParseDate(profile.BirthDate)
	if err != nil {
		return Age{}, false
	}
	return AgeOf(birth, now), true
}

// NextUpcomingVaccination returns the first upcoming dose in collection
// order. Due dates are not compared.
func NextUpcomingVaccination(vaccinations []baby.VaccinationEntry) (baby.VaccinationEntry, bool) {
	for _, v := range vaccinations {
		if v.Status == baby.StatusUpcoming {
			return v, true
		}
	}
	return baby.VaccinationEntry{}, false
}
