package baby

import (
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/patch"
)

// Slice is the baby namespace.
const Slice action.Slice = "baby"

const (
	TypeSetBabyProfile          action.Type = "baby/setBabyProfile"
	TypeUpdateBabyProfile       action.Type = "baby/updateBabyProfile"
	TypeAddFeedingEntry         action.Type = "baby/addFeedingEntry"
	TypeUpdateFeedingEntry      action.Type = "baby/updateFeedingEntry"
	TypeDeleteFeedingEntry      action.Type = "baby/deleteFeedingEntry"
	TypeAddSleepEntry           action.Type = "baby/addSleepEntry"
	TypeUpdateSleepEntry        action.Type = "baby/updateSleepEntry"
	TypeDeleteSleepEntry        action.Type = "baby/deleteSleepEntry"
	TypeAddPottyEntry           action.Type = "baby/addPottyEntry"
	TypeUpdatePottyEntry        action.Type = "baby/updatePottyEntry"
	TypeDeletePottyEntry        action.Type = "baby/deletePottyEntry"
	TypeAddPlaytimeEntry        action.Type = "baby/addPlaytimeEntry"
	TypeUpdatePlaytimeEntry     action.Type = "baby/updatePlaytimeEntry"
	TypeDeletePlaytimeEntry     action.Type = "baby/deletePlaytimeEntry"
	TypeAddGrowthEntry          action.Type = "baby/addGrowthEntry"
	TypeUpdateGrowthEntry       action.Type = "baby/updateGrowthEntry"
	TypeDeleteGrowthEntry       action.Type = "baby/deleteGrowthEntry"
	TypeAddVaccinationEntry     action.Type = "baby/addVaccinationEntry"
	TypeUpdateVaccinationEntry  action.Type = "baby/updateVaccinationEntry"
	TypeDeleteVaccinationEntry  action.Type = "baby/deleteVaccinationEntry"
	TypeUpdateVaccinationStatus action.Type = "baby/updateVaccinationStatus"
	TypeSetLoading              action.Type = "baby/setLoading"
	TypeSetError                action.Type = "baby/setError"
	TypeClearError              action.Type = "baby/clearError"
)

// SetBabyProfile replaces the profile.
type SetBabyProfile Profile

// ProfilePatch is a partial profile update. The id cannot be patched.
type ProfilePatch struct {
	Name          patch.Field[string]  `json:"name,omitzero"`
	BirthDate     patch.Field[string]  `json:"birthDate,omitzero"`
	Gender        patch.Field[Gender]  `json:"gender,omitzero"`
	BirthWeight   patch.Field[float64] `json:"birthWeight,omitzero"`
	BirthHeight   patch.Field[float64] `json:"birthHeight,omitzero"`
	CurrentWeight patch.Field[float64] `json:"currentWeight,omitzero"`
	CurrentHeight patch.Field[float64] `json:"currentHeight,omitzero"`
	Notes         patch.Field[string]  `json:"notes,omitzero"`
}

// UpdateBabyProfile merges a patch into an existing profile.
type UpdateBabyProfile ProfilePatch

type (
	AddFeedingEntry        FeedingEntry
	UpdateFeedingEntry     FeedingEntry
	DeleteFeedingEntry     string
	AddSleepEntry          SleepEntry
	UpdateSleepEntry       SleepEntry
	DeleteSleepEntry       string
	AddPottyEntry          PottyEntry
	UpdatePottyEntry       PottyEntry
	DeletePottyEntry       string
	AddPlaytimeEntry       PlaytimeEntry
	UpdatePlaytimeEntry    PlaytimeEntry
	DeletePlaytimeEntry    string
	AddGrowthEntry         GrowthEntry
	UpdateGrowthEntry      GrowthEntry
	DeleteGrowthEntry      string
	AddVaccinationEntry    VaccinationEntry
	UpdateVaccinationEntry VaccinationEntry
	DeleteVaccinationEntry string
)

// UpdateVaccinationStatus overwrites one dose's status. GivenDate is written
// only when non-empty.
type UpdateVaccinationStatus struct {
	VaccineID string            `json:"vaccineId"`
	Status    VaccinationStatus `json:"status"`
	GivenDate string            `json:"givenDate,omitempty"`
}

type SetLoading bool

type SetError string

type ClearError struct{}

func (SetBabyProfile) Type() action.Type          { return TypeSetBabyProfile }
func (UpdateBabyProfile) Type() action.Type       { return TypeUpdateBabyProfile }
func (AddFeedingEntry) Type() action.Type         { return TypeAddFeedingEntry }
func (UpdateFeedingEntry) Type() action.Type      { return TypeUpdateFeedingEntry }
func (DeleteFeedingEntry) Type() action.Type      { return TypeDeleteFeedingEntry }
func (AddSleepEntry) Type() action.Type           { return TypeAddSleepEntry }
func (UpdateSleepEntry) Type() action.Type        { return TypeUpdateSleepEntry }
func (DeleteSleepEntry) Type() action.Type        { return TypeDeleteSleepEntry }
func (AddPottyEntry) Type() action.Type           { return TypeAddPottyEntry }
func (UpdatePottyEntry) Type() action.Type        { return TypeUpdatePottyEntry }
func (DeletePottyEntry) Type() action.Type        { return TypeDeletePottyEntry }
func (AddPlaytimeEntry) Type() action.Type        { return TypeAddPlaytimeEntry }
func (UpdatePlaytimeEntry) Type() action.Type     { return TypeUpdatePlaytimeEntry }
func (DeletePlaytimeEntry) Type() action.Type     { return TypeDeletePlaytimeEntry }
func (AddGrowthEntry) Type() action.Type          { return TypeAddGrowthEntry }
func (UpdateGrowthEntry) Type() action.Type       { return TypeUpdateGrowthEntry }
func (DeleteGrowthEntry) Type() action.Type       { return TypeDeleteGrowthEntry }
func (AddVaccinationEntry) Type() action.Type     { return TypeAddVaccinationEntry }
func (UpdateVaccinationEntry) Type() action.Type  { return TypeUpdateVaccinationEntry }
func (DeleteVaccinationEntry) Type() action.Type  { return TypeDeleteVaccinationEntry }
func (UpdateVaccinationStatus) Type() action.Type { return TypeUpdateVaccinationStatus }
func (SetLoading) Type() action.Type              { return TypeSetLoading }
func (SetError) Type() action.Type                { return TypeSetError }
func (ClearError) Type() action.Type              { return TypeClearError }

func (p ProfilePatch) apply(profile *Profile) {
	p.Name.Apply(&profile.Name)
	p.BirthDate.Apply(&profile.BirthDate)
	p.Gender.Apply(&profile.Gender)
	p.BirthWeight.Apply(&profile.BirthWeight)
	p.BirthHeight.Apply(&profile.BirthHeight)
	p.CurrentWeight.ApplyPtr(&profile.CurrentWeight)
	p.CurrentHeight.ApplyPtr(&profile.CurrentHeight)
	p.Notes.Apply(&profile.Notes)
}
