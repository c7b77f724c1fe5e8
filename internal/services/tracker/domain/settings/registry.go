package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/patch"
)

// RegisterActions registers settings actions with the shared registry.
func RegisterActions(registry *action.Registry) error {
	if registry == nil {
		return errors.New("action registry is required")
	}
	return errors.Join(
		action.Register(registry, Slice, func(a SetTheme) error {
			return action.RequireOneOf("theme", Theme(a), ThemeLight, ThemeDark)
		}),
		action.Register[ToggleTheme](registry, Slice, nil),
		action.Register[UpdateNotificationSettings](registry, Slice, nil),
		action.Register(registry, Slice, func(a ToggleNotification) error {
			return action.RequireOneOf("notification", NotificationKey(a), NotificationKeys...)
		}),
		action.Register(registry, Slice, func(a SetLanguage) error {
			if strings.TrimSpace(string(a)) == "" {
				return errors.New("language is required")
			}
			return nil
		}),
		action.Register(registry, Slice, validateUnits),
		action.Register[SetSoundEnabled](registry, Slice, nil),
		action.Register[SetHapticEnabled](registry, Slice, nil),
		action.Register[SetPremiumStatus](registry, Slice, nil),
		action.Register[SetAutoBackup](registry, Slice, nil),
		action.Register[SetLastSyncDate](registry, Slice, nil),
		action.Register[ResetSettings](registry, Slice, nil),
		action.Register[SetLoading](registry, Slice, nil),
		action.Register[SetError](registry, Slice, nil),
		action.Register[ClearError](registry, Slice, nil),
	)
}

func validateUnits(a UpdateUnits) error {
	return errors.Join(
		unitField("weight", a.Weight, WeightKg, WeightLbs),
		unitField("height", a.Height, HeightCm, HeightFt),
		unitField("temperature", a.Temperature, TemperatureCelsius, TemperatureFahrenheit),
		unitField("volume", a.Volume, VolumeMl, VolumeOz),
	)
}

// unitField rejects nulls as well as unknown units; a unit cannot be unset.
func unitField[T ~string](name string, f patch.Field[T], allowed ...T) error {
	if !f.Present() {
		return nil
	}
	value, ok := f.Value()
	if !ok {
		return fmt.Errorf("%s cannot be null", name)
	}
	return action.RequireOneOf(name, value, allowed...)
}
