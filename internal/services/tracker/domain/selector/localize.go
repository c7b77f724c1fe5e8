package selector

import (
	"github.com/louisbranch/bloom/internal/platform/i18n"
	"golang.org/x/text/language"
)

// LocalizedSummary holds display strings for one locale.
type LocalizedSummary struct {
	Locale          string `json:"locale"`
	Week            string `json:"week"`
	Trimester       string `json:"trimester"`
	Phase           string `json:"phase"`
	BabySize        string `json:"babySize"`
	WaterGoal       string `json:"waterGoal"`
	DueCountdown    string `json:"dueCountdown"`
	BabyAge         string `json:"babyAge"`
	NextVaccination string `json:"nextVaccination"`
}

// Localize renders summary strings for tag. Unsupported tags fall back to
// the closest supported locale.
func Localize(summary Summary, tag language.Tag) LocalizedSummary {
	tag = i18n.ResolveTag(tag.String())
	p := i18n.Printer(tag)

	out := LocalizedSummary{
		Locale:    i18n.LocaleString(tag),
		Week:      p.Sprintf("tracker.week", summary.Week),
		Trimester: p.Sprintf("tracker.trimester." + string(summary.Trimester)),
		Phase:     p.Sprintf("tracker.phase." + string(summary.Phase)),
		BabySize:  p.Sprintf("tracker.baby_size", summary.BabySize),
		WaterGoal: p.Sprintf("tracker.water.goal", summary.WaterGoal),
	}

	switch days := summary.DaysToDue; {
	case days == nil:
		out.DueCountdown = p.Sprintf("tracker.due.not_set")
	case *days > 0:
		out.DueCountdown = p.Sprintf("tracker.due.remaining", *days)
	case *days == 0:
		out.DueCountdown = p.Sprintf("tracker.due.today")
	default:
		out.DueCountdown = p.Sprintf("tracker.due.overdue", -*days)
	}

	if age := summary.BabyAge; age == nil {
		out.BabyAge = p.Sprintf("tracker.baby_age.not_set")
	} else {
		switch age.Unit {
		case AgeDays:
			out.BabyAge = p.Sprintf("tracker.baby_age.days", age.Days)
		case AgeMonths:
			out.BabyAge = p.Sprintf("tracker.baby_age.months", age.Months, age.Days)
		default:
			out.BabyAge = p.Sprintf("tracker.baby_age.years", age.Years, age.Months)
		}
	}

	if next := summary.NextVaccination; next == nil {
		out.NextVaccination = p.Sprintf("tracker.vaccination.none")
	} else {
		out.NextVaccination = p.Sprintf("tracker.vaccination.next", next.Name, next.DueDate)
	}
	return out
}

// LocalizeForSettings renders summary in the language chosen in settings.
func LocalizeForSettings(summary Summary) LocalizedSummary {
	return Localize(summary, i18n.ResolveTag(summary.Language))
}
