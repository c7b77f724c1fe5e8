package baby

import (
	"errors"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
)

var vaccinationStatuses = []VaccinationStatus{StatusUpcoming, StatusOverdue, StatusCompleted, StatusSkipped}

// RegisterActions registers baby actions with the shared registry.
func RegisterActions(registry *action.Registry) error {
	if registry == nil {
		return errors.New("action registry is required")
	}
	return errors.Join(
		action.Register(registry, Slice, validateSetProfile),
		action.Register(registry, Slice, validateUpdateProfile),

		action.Register(registry, Slice, func(a AddFeedingEntry) error { return validateFeeding(FeedingEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateFeedingEntry) error { return validateFeeding(FeedingEntry(a)) }),
		action.RegisterTarget[DeleteFeedingEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddSleepEntry) error { return validateSleep(SleepEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateSleepEntry) error { return validateSleep(SleepEntry(a)) }),
		action.RegisterTarget[DeleteSleepEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddPottyEntry) error { return validatePotty(PottyEntry(a)) }),
		action.Register(registry, Slice, func(a UpdatePottyEntry) error { return validatePotty(PottyEntry(a)) }),
		action.RegisterTarget[DeletePottyEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddPlaytimeEntry) error { return action.RequireID(a.ID) }),
		action.Register(registry, Slice, func(a UpdatePlaytimeEntry) error { return action.RequireID(a.ID) }),
		action.RegisterTarget[DeletePlaytimeEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddGrowthEntry) error { return validateGrowth(GrowthEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateGrowthEntry) error { return validateGrowth(GrowthEntry(a)) }),
		action.RegisterTarget[DeleteGrowthEntry](registry, Slice),

		action.Register(registry, Slice, func(a AddVaccinationEntry) error { return validateVaccination(VaccinationEntry(a)) }),
		action.Register(registry, Slice, func(a UpdateVaccinationEntry) error { return validateVaccination(VaccinationEntry(a)) }),
		action.RegisterTarget[DeleteVaccinationEntry](registry, Slice),
		action.Register(registry, Slice, validateVaccinationStatus),

		action.Register[SetLoading](registry, Slice, nil),
		action.Register[SetError](registry, Slice, nil),
		action.Register[ClearError](registry, Slice, nil),
	)
}

func validateSetProfile(a SetBabyProfile) error {
	if err := action.RequireID(a.ID); err != nil {
		return err
	}
	return action.OptionalOneOf("gender", a.Gender, GenderMale, GenderFemale)
}

func validateUpdateProfile(a UpdateBabyProfile) error {
	if gender, ok := a.Gender.Value(); ok {
		return action.RequireOneOf("gender", gender, GenderMale, GenderFemale)
	}
	return nil
}

func validateFeeding(e FeedingEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("type", e.Kind, FeedingBreastfeeding, FeedingBottle, FeedingSolid)
}

func validateSleep(e SleepEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("quality", e.Quality, SleepPoor, SleepFair, SleepGood, SleepExcellent)
}

func validatePotty(e PottyEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("type", e.Kind, PottyWet, PottyDirty, PottyBoth)
}

func validateGrowth(e GrowthEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	if err := action.RequireNonNegative("weight", e.Weight); err != nil {
		return err
	}
	return action.RequireNonNegative("height", e.Height)
}

func validateVaccination(e VaccinationEntry) error {
	if err := action.RequireID(e.ID); err != nil {
		return err
	}
	return action.RequireOneOf("status", e.Status, vaccinationStatuses...)
}

func validateVaccinationStatus(a UpdateVaccinationStatus) error {
	if err := action.RequireID(a.VaccineID); err != nil {
		return err
	}
	return action.RequireOneOf("status", a.Status, vaccinationStatuses...)
}
