package settings

import (
	"fmt"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
)

// FoldHandledTypes returns the action types handled by the settings fold.
func FoldHandledTypes() []action.Type {
	return []action.Type{
		TypeSetTheme,
		TypeToggleTheme,
		TypeUpdateNotificationSettings,
		TypeToggleNotification,
		TypeSetLanguage,
		TypeUpdateUnits,
		TypeSetSoundEnabled,
		TypeSetHapticEnabled,
		TypeSetPremiumStatus,
		TypeSetAutoBackup,
		TypeSetLastSyncDate,
		TypeResetSettings,
		TypeSetLoading,
		TypeSetError,
		TypeClearError,
	}
}

// Fold applies an action to settings state.
func Fold(state State, a action.Action) (State, error) {
	switch a := a.(type) {
	case SetTheme:
		state.Theme = Theme(a)
	case ToggleTheme:
		if state.Theme == ThemeLight {
			state.Theme = ThemeDark
		} else {
			state.Theme = ThemeLight
		}
	case UpdateNotificationSettings:
		NotificationPatch(a).apply(&state.Notifications)
	case ToggleNotification:
		if f := state.Notifications.field(NotificationKey(a)); f != nil {
			*f = !*f
		}
	case SetLanguage:
		state.Language = string(a)
	case UpdateUnits:
		UnitsPatch(a).apply(&state.Units)
	case SetSoundEnabled:
		state.SoundEnabled = bool(a)
	case SetHapticEnabled:
		state.HapticEnabled = bool(a)
	case SetPremiumStatus:
		state.IsPremium = bool(a)
	case SetAutoBackup:
		state.AutoBackup = bool(a)
	case SetLastSyncDate:
		date := string(a)
		state.LastSyncDate = &date
	case ResetSettings:
		premium := state.IsPremium
		state = InitialState()
		state.IsPremium = premium
	case SetLoading:
		state.IsLoading = bool(a)
	case SetError:
		msg := string(a)
		state.Error = &msg
	case ClearError:
		state.Error = nil
	default:
		return state, fmt.Errorf("settings fold: unhandled action %T", a)
	}
	return state, nil
}
