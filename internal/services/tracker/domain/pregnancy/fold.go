package pregnancy

import (
	"fmt"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/collection"
)

// FoldHandledTypes returns the action types handled by the pregnancy fold.
func FoldHandledTypes() []action.Type {
	return []action.Type{
		TypeSetPregnancyData,
		TypeAddWeightEntry, TypeUpdateWeightEntry, TypeDeleteWeightEntry,
		TypeAddMealEntry, TypeUpdateMealEntry, TypeDeleteMealEntry,
		TypeAddWaterEntry, TypeUpdateWaterEntry, TypeDeleteWaterEntry,
		TypeAddSleepEntry, TypeUpdateSleepEntry, TypeDeleteSleepEntry,
		TypeAddExerciseEntry, TypeUpdateExerciseEntry, TypeDeleteExerciseEntry,
		TypeAddMedicineEntry, TypeUpdateMedicineEntry, TypeDeleteMedicineEntry,
		TypeAddReportEntry, TypeUpdateReportEntry, TypeDeleteReportEntry,
		TypeUpdateHospitalBagItem,
		TypeSetLoading,
		TypeSetError,
		TypeClearError,
	}
}

// Fold applies an action to pregnancy state.
func Fold(state State, a action.Action) (State, error) {
	switch a := a.(type) {
	case SetPregnancyData:
		due := a.DueDate
		state.CurrentWeek = a.CurrentWeek
		state.DueDate = &due

	case AddWeightEntry:
		state.Weight = collection.Append(state.Weight, WeightEntry(a))
	case UpdateWeightEntry:
		state.Weight = collection.Replace(state.Weight, WeightEntry(a))
	case DeleteWeightEntry:
		state.Weight = collection.Remove(state.Weight, string(a))

	case AddMealEntry:
		state.Meals = collection.Append(state.Meals, MealEntry(a))
	case UpdateMealEntry:
		state.Meals = collection.Replace(state.Meals, MealEntry(a))
	case DeleteMealEntry:
		state.Meals = collection.Remove(state.Meals, string(a))

	case AddWaterEntry:
		state.WaterIntake = collection.Append(state.WaterIntake, WaterEntry(a))
	case UpdateWaterEntry:
		state.WaterIntake = collection.Replace(state.WaterIntake, WaterEntry(a))
	case DeleteWaterEntry:
		state.WaterIntake = collection.Remove(state.WaterIntake, string(a))

	case AddSleepEntry:
		state.Sleep = collection.Append(state.Sleep, SleepEntry(a))
	case UpdateSleepEntry:
		state.Sleep = collection.Replace(state.Sleep, SleepEntry(a))
	case DeleteSleepEntry:
		state.Sleep = collection.Remove(state.Sleep, string(a))

	case AddExerciseEntry:
		state.Exercise = collection.Append(state.Exercise, ExerciseEntry(a))
	case UpdateExerciseEntry:
		state.Exercise = collection.Replace(state.Exercise, ExerciseEntry(a))
	case DeleteExerciseEntry:
		state.Exercise = collection.Remove(state.Exercise, string(a))

	case AddMedicineEntry:
		state.Medicines = collection.Append(state.Medicines, MedicineEntry(a))
	case UpdateMedicineEntry:
		state.Medicines = collection.Replace(state.Medicines, MedicineEntry(a))
	case DeleteMedicineEntry:
		state.Medicines = collection.Remove(state.Medicines, string(a))

	case AddReportEntry:
		state.Reports = collection.Append(state.Reports, ReportEntry(a))
	case UpdateReportEntry:
		state.Reports = collection.Replace(state.Reports, ReportEntry(a))
	case DeleteReportEntry:
		state.Reports = collection.Remove(state.Reports, string(a))

	case UpdateHospitalBagItem:
		state.HospitalBagChecklist = collection.UpdateWhere(
			state.HospitalBagChecklist,
			func(item HospitalBagItem) bool { return item.Name == a.Name },
			func(item HospitalBagItem) HospitalBagItem {
				item.Checked = a.Checked
				return item
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
		return state, fmt.Errorf("pregnancy fold: unhandled action %T", a)
	}
	return state, nil
}
