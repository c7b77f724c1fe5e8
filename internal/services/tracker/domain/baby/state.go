package baby

import "github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type FeedingType string

const (
	FeedingBreastfeeding FeedingType = "breastfeeding"
	FeedingBottle        FeedingType = "bottle"
	FeedingSolid         FeedingType = "solid"
)

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

type PottyType string

const (
	PottyWet   PottyType = "wet"
	PottyDirty PottyType = "dirty"
	PottyBoth  PottyType = "both"
)

// VaccinationStatus is overwritten freely; no transition order is enforced.
type VaccinationStatus string

const (
	StatusUpcoming  VaccinationStatus = "upcoming"
	StatusOverdue   VaccinationStatus = "overdue"
	StatusCompleted VaccinationStatus = "completed"
	StatusSkipped   VaccinationStatus = "skipped"
)

// Profile describes the baby. Weights are in kilograms, heights in centimetres.
type Profile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BirthDate     string   `json:"birthDate"`
	Gender        Gender   `json:"gender"`
	BirthWeight   float64  `json:"birthWeight"`
	BirthHeight   float64  `json:"birthHeight"`
	CurrentWeight *float64 `json:"currentWeight,omitempty"`
	CurrentHeight *float64 `json:"currentHeight,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// FeedingEntry records one feed. Amount is millilitres for bottles.
type FeedingEntry struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Kind     FeedingType `json:"type"`
	Amount   *float64    `json:"amount,omitempty"`
	Duration *int        `json:"duration,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}

// SleepEntry is one nap or night. Duration is in minutes.
type SleepEntry struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
	Duration  int          `json:"duration"`
	Quality   SleepQuality `json:"quality"`
	Notes     string       `json:"notes,omitempty"`
}

type PottyEntry struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"`
	Time  string    `json:"time"`
	Kind  PottyType `json:"type"`
	Notes string    `json:"notes,omitempty"`
}

type PlaytimeEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Activity string `json:"activity"`
	Notes    string `json:"notes,omitempty"`
}

type GrowthEntry struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Weight            float64  `json:"weight"`
	Height            float64  `json:"height"`
	HeadCircumference *float64 `json:"headCircumference,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

type VaccinationEntry struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	DueDate   string            `json:"dueDate"`
	GivenDate string            `json:"givenDate,omitempty"`
	Status    VaccinationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

func (e FeedingEntry) EntityID() string     { return e.ID }
func (e SleepEntry) EntityID() string       { return e.ID }
func (e PottyEntry) EntityID() string       { return e.ID }
func (e PlaytimeEntry) EntityID() string    { return e.ID }
func (e GrowthEntry) EntityID() string      { return e.ID }
func (e VaccinationEntry) EntityID() string { return e.ID }

// State is the baby slice.
type State struct {
	BabyProfile  *Profile           `json:"babyProfile"`
	Feeding      []FeedingEntry     `json:"feeding"`
	Sleep        []SleepEntry       `json:"sleep"`
	Potty        []PottyEntry       `json:"potty"`
	Playtime     []PlaytimeEntry    `json:"playtime"`
	Growth       []GrowthEntry      `json:"growth"`
	Vaccinations []VaccinationEntry `json:"vaccinations"`
	IsLoading    bool               `json:"isLoading"`
	Error        *string            `json:"error"`
}

// InitialState has no profile, empty logs, and the reference vaccination
// schedule with every dose upcoming.
func InitialState(tables lookup.Tables) State {
	vaccinations := make([]VaccinationEntry, 0, len(tables.Vaccinations))
	for _, dose := range tables.Vaccinations {
		vaccinations = append(vaccinations, VaccinationEntry{
			ID:      dose.ID,
			Name:    dose.Name,
			DueDate: dose.DueDate,
			Status:  StatusUpcoming,
		})
	}
	return State{
		Feeding:      []FeedingEntry{},
		Sleep:        []SleepEntry{},
		Potty:        []PottyEntry{},
		Playtime:     []PlaytimeEntry{},
		Growth:       []GrowthEntry{},
		Vaccinations: vaccinations,
	}
}
