package settings

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationKey names one notification category.
type NotificationKey string

const (
	NotifyMeals        NotificationKey = "meals"
	NotifyMedicines    NotificationKey = "medicines"
	NotifyVaccines     NotificationKey = "vaccines"
	NotifyReports      NotificationKey = "reports"
	NotifySleep        NotificationKey = "sleep"
	NotifyAppointments NotificationKey = "appointments"
	NotifyGeneral      NotificationKey = "general"
)

// NotificationKeys lists every category in display order.
var NotificationKeys = []NotificationKey{
	NotifyMeals, NotifyMedicines, NotifyVaccines, NotifyReports,
	NotifySleep, NotifyAppointments, NotifyGeneral,
}

type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

type HeightUnit string

const (
	HeightCm HeightUnit = "cm"
	HeightFt HeightUnit = "ft"
)

type TemperatureUnit string

const (
	TemperatureCelsius    TemperatureUnit = "celsius"
	TemperatureFahrenheit TemperatureUnit = "fahrenheit"
)

type VolumeUnit string

const (
	VolumeMl VolumeUnit = "ml"
	VolumeOz VolumeUnit = "oz"
)

type Notifications struct {
	Meals        bool `json:"meals"`
	Medicines    bool `json:"medicines"`
	Vaccines     bool `json:"vaccines"`
	Reports      bool `json:"reports"`
	Sleep        bool `json:"sleep"`
	Appointments bool `json:"appointments"`
	General      bool `json:"general"`
}

// field returns the toggle for key, or nil for an unknown key.
func (n *Notifications) field(key NotificationKey) *bool {
	switch key {
	case NotifyMeals:
		return &n.Meals
	case NotifyMedicines:
		return &n.Medicines
	case NotifyVaccines:
		return &n.Vaccines
	case NotifyReports:
		return &n.Reports
	case NotifySleep:
		return &n.Sleep
	case NotifyAppointments:
		return &n.Appointments
	case NotifyGeneral:
		return &n.General
	}
	return nil
}

// Enabled reports the toggle for key.
func (n Notifications) Enabled(key NotificationKey) bool {
	if f := n.field(key); f != nil {
		return *f
	}
	return false
}

type Units struct {
	Weight      WeightUnit      `json:"weight"`
	Height      HeightUnit      `json:"height"`
	Temperature TemperatureUnit `json:"temperature"`
	Volume      VolumeUnit      `json:"volume"`
}

// State is the settings slice.
type State struct {
	Theme         Theme         `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Language      string        `json:"language"`
	Units         Units         `json:"units"`
	SoundEnabled  bool          `json:"soundEnabled"`
	HapticEnabled bool          `json:"hapticEnabled"`
	IsPremium     bool          `json:"isPremium"`
	LastSyncDate  *string       `json:"lastSyncDate,omitempty"`
	AutoBackup    bool          `json:"autoBackup"`
	IsLoading     bool          `json:"isLoading"`
	Error         *string       `json:"error"`
}

// InitialState is the factory default: light theme, every notification on,
// English, metric units.
func InitialState() State {
	return State{
		Theme: ThemeLight,
		Notifications: Notifications{
			Meals:        true,
			Medicines:    true,
			Vaccines:     true,
			Reports:      true,
			Sleep:        true,
			Appointments: true,
			General:      true,
		},
		Language: "en",
		Units: Units{
			Weight:      WeightKg,
			Height:      HeightCm,
			Temperature: TemperatureCelsius,
			Volume:      VolumeMl,
		},
		SoundEnabled:  true,
		HapticEnabled: true,
	}
}
