package pregnancy

import "github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityVigorous Intensity = "vigorous"
)

type ReportType string

const (
	ReportBlood      ReportType = "blood"
	ReportUltrasound ReportType = "ultrasound"
	ReportUrine      ReportType = "urine"
	ReportOther      ReportType = "other"
)

type BagCategory string

const (
	BagClothing BagCategory = "clothing"
	BagPersonal BagCategory = "personal"
	BagMedical  BagCategory = "medical"
	BagBaby     BagCategory = "baby"
	BagOther    BagCategory = "other"
)

// WeightEntry is one weigh-in, in kilograms.
type WeightEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

type MealEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Kind     MealType `json:"type"`
	Food     string   `json:"food"`
	Calories *int     `json:"calories,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// WaterEntry records an intake in millilitres.
type WaterEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Amount int    `json:"amount"`
}

// SleepEntry is one night of sleep. Duration is in hours.
type SleepEntry struct {
	ID       string       `json:"id"`
	Date     string       `json:"date"`
	Bedtime  string       `json:"bedtime"`
	WakeTime string       `json:"wakeTime"`
	Duration float64      `json:"duration"`
	Quality  SleepQuality `json:"quality"`
	Notes    string       `json:"notes,omitempty"`
}

// ExerciseEntry is one workout. Duration is in minutes.
type ExerciseEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Kind      string    `json:"type"`
	Duration  int       `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Notes     string    `json:"notes,omitempty"`
}

type MedicineEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate,omitempty"`
	Reminders []string `json:"reminders"`
	Notes     string   `json:"notes,omitempty"`
}

type ReportEntry struct {
	ID       string     `json:"id"`
	Kind     ReportType `json:"type"`
	Date     string     `json:"date"`
	Title    string     `json:"title"`
	Summary  string     `json:"summary,omitempty"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Doctor   string     `json:"doctor,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// HospitalBagItem is keyed by name.
type HospitalBagItem struct {
	Name     string      `json:"name"`
	Checked  bool        `json:"checked"`
	Category BagCategory `json:"category"`
}

func (e WeightEntry) EntityID() string   { return e.ID }
func (e MealEntry) EntityID() string     { return e.ID }
func (e WaterEntry) EntityID() string    { return e.ID }
func (e SleepEntry) EntityID() string    { return e.ID }
func (e ExerciseEntry) EntityID() string { return e.ID }
func (e MedicineEntry) EntityID() string { return e.ID }
func (e ReportEntry) EntityID() string   { return e.ID }

// State is the pregnancy slice.
type State struct {
	CurrentWeek          int               `json:"currentWeek"`
	DueDate              *string           `json:"dueDate"`
	Weight               []WeightEntry     `json:"weight"`
	Meals                []MealEntry       `json:"meals"`
	WaterIntake          []WaterEntry      `json:"waterIntake"`
	Sleep                []SleepEntry      `json:"sleep"`
	Exercise             []ExerciseEntry   `json:"exercise"`
	Medicines            []MedicineEntry   `json:"medicines"`
	Reports              []ReportEntry     `json:"reports"`
	HospitalBagChecklist []HospitalBagItem `json:"hospitalBagChecklist"`
	IsLoading            bool              `json:"isLoading"`
	Error                *string           `json:"error"`
}

// InitialState starts at week one with empty logs and an unchecked bag.
func InitialState(tables lookup.Tables) State {
	bag := make([]HospitalBagItem, 0, len(tables.HospitalBag))
	for _, item := range tables.HospitalBag {
		bag = append(bag, HospitalBagItem{Name: item.Name, Category: BagCategory(item.Category)})
	}
	return State{
		CurrentWeek:          1,
		Weight:               []WeightEntry{},
		Meals:                []MealEntry{},
		WaterIntake:          []WaterEntry{},
		Sleep:                []SleepEntry{},
		Exercise:             []ExerciseEntry{},
		Medicines:            []MedicineEntry{},
		Reports:              []ReportEntry{},
		HospitalBagChecklist: bag,
	}
}
