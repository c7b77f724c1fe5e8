package settings

import (
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/patch"
)

// Slice is the settings namespace.
const Slice action.Slice = "settings"

const (
	TypeSetTheme                   action.Type = "settings/setTheme"
	TypeToggleTheme                action.Type = "settings/toggleTheme"
	TypeUpdateNotificationSettings action.Type = "settings/updateNotificationSettings"
	TypeToggleNotification         action.Type = "settings/toggleNotification"
	TypeSetLanguage                action.Type = "settings/setLanguage"
	TypeUpdateUnits                action.Type = "settings/updateUnits"
	TypeSetSoundEnabled            action.Type = "settings/setSoundEnabled"
	TypeSetHapticEnabled           action.Type = "settings/setHapticEnabled"
	TypeSetPremiumStatus           action.Type = "settings/setPremiumStatus"
	TypeSetAutoBackup              action.Type = "settings/setAutoBackup"
	TypeSetLastSyncDate            action.Type = "settings/setLastSyncDate"
	TypeResetSettings              action.Type = "settings/resetSettings"
	TypeSetLoading                 action.Type = "settings/setLoading"
	TypeSetError                   action.Type = "settings/setError"
	TypeClearError                 action.Type = "settings/clearError"
)

type SetTheme Theme

type ToggleTheme struct{}

type NotificationPatch struct {
	Meals        patch.Field[bool] `json:"meals,omitzero"`
	Medicines    patch.Field[bool] `json:"medicines,omitzero"`
	Vaccines     patch.Field[bool] `json:"vaccines,omitzero"`
	Reports      patch.Field[bool] `json:"reports,omitzero"`
	Sleep        patch.Field[bool] `json:"sleep,omitzero"`
	Appointments patch.Field[bool] `json:"appointments,omitzero"`
	General      patch.Field[bool] `json:"general,omitzero"`
}

type UpdateNotificationSettings NotificationPatch

type ToggleNotification NotificationKey

type SetLanguage string

type UnitsPatch struct {
	Weight      patch.Field[WeightUnit]      `json:"weight,omitzero"`
	Height      patch.Field[HeightUnit]      `json:"height,omitzero"`
	Temperature patch.Field[TemperatureUnit] `json:"temperature,omitzero"`
	Volume      patch.Field[VolumeUnit]      `json:"volume,omitzero"`
}

type UpdateUnits UnitsPatch

type (
	SetSoundEnabled  bool
	SetHapticEnabled bool
	SetPremiumStatus bool
	SetAutoBackup    bool
	SetLastSyncDate  string
)

// ResetSettings restores the defaults but keeps the premium flag.
type ResetSettings struct{}

type SetLoading bool

type SetError string

type ClearError struct{}

func (SetTheme) Type() action.Type                   { return TypeSetTheme }
func (ToggleTheme) Type() action.Type                { return TypeToggleTheme }
func (UpdateNotificationSettings) Type() action.Type { return TypeUpdateNotificationSettings }
func (ToggleNotification) Type() action.Type         { return TypeToggleNotification }
func (SetLanguage) Type() action.Type                { return TypeSetLanguage }
func (UpdateUnits) Type() action.Type                { return TypeUpdateUnits }
func (SetSoundEnabled) Type() action.Type            { return TypeSetSoundEnabled }
func (SetHapticEnabled) Type() action.Type           { return TypeSetHapticEnabled }
func (SetPremiumStatus) Type() action.Type           { return TypeSetPremiumStatus }
func (SetAutoBackup) Type() action.Type              { return TypeSetAutoBackup }
func (SetLastSyncDate) Type() action.Type            { return TypeSetLastSyncDate }
func (ResetSettings) Type() action.Type              { return TypeResetSettings }
func (SetLoading) Type() action.Type                 { return TypeSetLoading }
func (SetError) Type() action.Type                   { return TypeSetError }
func (ClearError) Type() action.Type                 { return TypeClearError }

func (p NotificationPatch) apply(n *Notifications) {
	p.Meals.Apply(&n.Meals)
	p.Medicines.Apply(&n.Medicines)
	p.Vaccines.Apply(&n.Vaccines)
	p.Reports.Apply(&n.Reports)
	p.Sleep.Apply(&n.Sleep)
	p.Appointments.Apply(&n.Appointments)
	p.General.Apply(&n.General)
}

func (p UnitsPatch) apply(u *Units) {
	p.Weight.Apply(&u.Weight)
	p.Height.Apply(&u.Height)
	p.Temperature.Apply(&u.Temperature)
	p.Volume.Apply(&u.Volume)
}
