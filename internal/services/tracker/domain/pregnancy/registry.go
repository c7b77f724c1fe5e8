package pregnancy

import (
	"errors"
	"strings"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
)

// RegisterActions registers pregnancy actions with the shared registry.
func RegisterActions(registry *action.Registry) error {
	if registry == nil {
		return errors.New("action registry is required")
	}
	return errors.Join(
		action.Register(registry, Slice, validateSetPregnancyData),

		action.Register(registry, Slice, func(a AddWeightEntry) error { return validateWeight(WeightEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateWeightEntry) error { return validateWeight(WeightEntry(a)) }),
		action.RegisterTarget[DeleteWeightEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddMealEntry) error { return validateMeal(MealEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateMealEntry) error { return validateMeal(MealEntry(a)) }),
		action.RegisterTarget[DeleteMealEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddWaterEntry) error { return validateWater(WaterEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateWaterEntry) error { return validateWater(WaterEntry(a)) }),
		action.RegisterTarget[DeleteWaterEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddSleepEntry) error { return validateSleep(SleepEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateSleepEntry) error { return validateSleep(SleepEntry(a)) }),
		action.RegisterTarget[DeleteSleepEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddExerciseEntry) error { return validateExercise(ExerciseEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateExerciseEntry) error { return validateExercise(ExerciseEntry(a)) }),
		action.RegisterTarget[DeleteExerciseEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddMedicineEntry) error { return action.RequireID(a.ID) }),
		action.Register(registry, Slice, func(a UpdateMedicineEntry) error { return action.RequireID(a.ID) }),
		action.RegisterTarget[DeleteMedicineEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddReportEntry) error { return validateReport(ReportEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateReportEntry) error { return validateReport(ReportEntry(a)) }),
		action.RegisterTarget[DeleteReportEntry](registry, Slice),

		action.Register(registry, Slice, validateHospitalBagItem),
		action.Register[SetLoading](registry, Slice, nil),
		action.Register[SetError](registry, Slice, nil),
		action.Register[ClearError](registry, Slice, nil),
	)
}

func validateSetPregnancyData(a SetPregnancyData) error {
	return action.RequireNonNegative("currentWeek", a.CurrentWeek)
}

func validateWeight(e WeightEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireNonNegative("weight", e.Weight)
}

func validateMeal(e MealEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("type", e.Kind, MealBreakfast, MealLunch, MealDinner, MealSnack)
}

func validateWater(e WaterEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireNonNegative("amount", e.Amount)
}

func validateSleep(e SleepEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("quality", e.Quality, SleepPoor, SleepFair, SleepGood, SleepExcellent)
}

func validateExercise(e ExerciseEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("intensity", e.Intensity, IntensityLight, IntensityModerate, IntensityVigorous)
}

func validateReport(e ReportEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("type", e.Kind, ReportBlood, ReportUltrasound, ReportUrine, ReportOther)
}

func validateHospitalBagItem(a UpdateHospitalBagItem) error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}
