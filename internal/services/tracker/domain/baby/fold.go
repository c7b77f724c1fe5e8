package baby

import (
	"fmt"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/collection"
)

// FoldHandledTypes returns the action types handled by the baby fold.
func FoldHandledTypes() []action.Type {
	return []action.Type{
		TypeSetBabyProfile,
		TypeUpdateBabyProfile,
		TypeAddFeedingEntry, TypeUpdateFeedingEntry, TypeDeleteFeedingEntry,
		TypeAddSleepEntry, TypeUpdateSleepEntry, TypeDeleteSleepEntry,
		TypeAddPottyEntry, TypeUpdatePottyEntry, TypeDeletePottyEntry,
		TypeAddPlaytimeEntry, TypeUpdatePlaytimeEntry, TypeDeletePlaytimeEntry,
		TypeAddGrowthEntry, TypeUpdateGrowthEntry, TypeDeleteGrowthEntry,
		TypeAddVaccinationEntry, TypeUpdateVaccinationEntry, TypeDeleteVaccinationEntry,
		TypeUpdateVaccinationStatus,
		TypeSetLoading,
		TypeSetError,
		TypeClearError,
	}
}

// Fold applies an action to baby state.
func Fold(state State, a action.Action) (State, error) {
	switch a := a.(type) {
	case SetBabyProfile:
		profile := Profile(a)
		state.BabyProfile = &profile
	case UpdateBabyProfile:
		if state.BabyProfile == nil {
			return state, nil
		}
		profile := *state.BabyProfile
		ProfilePatch(a).apply(&profile)
		state.BabyProfile = &profile

	case AddFeedingEntry:
		state.Feeding = collection.Append(state.Feeding, FeedingEntry(a))
	case UpdateFeedingEntry:
		state.Feeding = collection.Replace(state.Feeding, FeedingEntry(a))
	case DeleteFeedingEntry:
		state.Feeding = collection.Remove(state.Feeding, string(a))

	case AddSleepEntry:
		state.Sleep = collection.Append(state.Sleep, SleepEntry(a))
	case UpdateSleepEntry:
		state.Sleep = collection.Replace(state.Sleep, SleepEntry(a))
	case DeleteSleepEntry:
		state.Sleep = collection.Remove(state.Sleep, string(a))

	case AddPottyEntry:
		state.Potty = collection.Append(state.Potty, PottyEntry(a))
	case UpdatePottyEntry:
		state.Potty = collection.Replace(state.Potty, PottyEntry(a))
	case DeletePottyEntry:
		state.Potty = collection.Remove(state.Potty, string(a))

	case AddPlaytimeEntry:
		state.Playtime = collection.Append(state.Playtime, PlaytimeEntry(a))
	case UpdatePlaytimeEntry:
		state.Playtime = collection.Replace(state.Playtime, PlaytimeEntry(a))
	case DeletePlaytimeEntry:
		state.Playtime = collection.Remove(state.Playtime, string(a))

	case AddGrowthEntry:
		state.Growth = collection.Append(state.Growth, GrowthEntry(a))
	case UpdateGrowthEntry:
		state.Growth = collection.Replace(state.Growth, GrowthEntry(a))
	case DeleteGrowthEntry:
		state.Growth = collection.Remove(state.Growth, string(a))

	case AddVaccinationEntry:
		state.Vaccinations = collection.Append(state.Vaccinations, VaccinationEntry(a))
	case UpdateVaccinationEntry:
		state.Vaccinations = collection.Replace(state.Vaccinations, VaccinationEntry(a))
	case DeleteVaccinationEntry:
		state.Vaccinations = collection.Remove(state.Vaccinations, string(a))
	case UpdateVaccinationStatus:
		state.Vaccinations = collection.UpdateWhere(
			state.Vaccinations,
			func(v VaccinationEntry) bool { return v.ID == a.VaccineID },
			func(v VaccinationEntry) VaccinationEntry {
				v.Status = a.Status
				if a.GivenDate != "" {
					v.GivenDate = a.GivenDate
				}
				return v
			},
		)

	case SetLoading:
		state.IsLoading = bool(a)
	case SetError:
		msg := string(a)
		state.Error = &msg
	case ClearError:
		state.Error = nil
	default:
		return state, fmt.Errorf("baby fold: unhandled action %T", a)
	}
	return state, nil
}
