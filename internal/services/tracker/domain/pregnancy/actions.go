package pregnancy

import "github.com/louisbranch/bloom/internal/services/tracker/domain/action"

// Slice is the pregnancy namespace.
const Slice action.Slice = "pregnancy"

const (
	TypeSetPregnancyData      action.Type = "pregnancy/setPregnancyData"
	TypeAddWeightEntry        action.Type = "pregnancy/addWeightEntry"
	TypeUpdateWeightEntry     action.Type = "pregnancy/updateWeightEntry"
	TypeDeleteWeightEntry     action.Type = "pregnancy/deleteWeightEntry"
	TypeAddMealEntry          action.Type = "pregnancy/addMealEntry"
	TypeUpdateMealEntry       action.Type = "pregnancy/updateMealEntry"
	TypeDeleteMealEntry       action.Type = "pregnancy/deleteMealEntry"
	TypeAddWaterEntry         action.Type = "pregnancy/addWaterEntry"
	TypeUpdateWaterEntry      action.Type = "pregnancy/updateWaterEntry"
	TypeDeleteWaterEntry      action.Type = "pregnancy/deleteWaterEntry"
	TypeAddSleepEntry         action.Type = "pregnancy/addSleepEntry"
	TypeUpdateSleepEntry      action.Type = "pregnancy/updateSleepEntry"
	TypeDeleteSleepEntry      action.Type = "pregnancy/deleteSleepEntry"
	TypeAddExerciseEntry      action.Type = "pregnancy/addExerciseEntry"
	TypeUpdateExerciseEntry   action.Type = "pregnancy/updateExerciseEntry"
	TypeDeleteExerciseEntry   action.Type = "pregnancy/deleteExerciseEntry"
	TypeAddMedicineEntry      action.Type = "pregnancy/addMedicineEntry"
	TypeUpdateMedicineEntry   action.Type = "pregnancy/updateMedicineEntry"
	TypeDeleteMedicineEntry   action.Type = "pregnancy/deleteMedicineEntry"
	TypeAddReportEntry        action.Type = "pregnancy/addReportEntry"
	TypeUpdateReportEntry     action.Type = "pregnancy/updateReportEntry"
	TypeDeleteReportEntry     action.Type = "pregnancy/deleteReportEntry"
	TypeUpdateHospitalBagItem action.Type = "pregnancy/updateHospitalBagItem"
	TypeSetLoading            action.Type = "pregnancy/setLoading"
	TypeSetError              action.Type = "pregnancy/setError"
	TypeClearError            action.Type = "pregnancy/clearError"
)

// SetPregnancyData sets the current week and due date together.
type SetPregnancyData struct {
	CurrentWeek int    `json:"currentWeek"`
	DueDate     string `json:"dueDate"`
}

type (
	AddWeightEntry      WeightEntry
	UpdateWeightEntry   WeightEntry
	DeleteWeightEntry   string
	AddMealEntry        MealEntry
	UpdateMealEntry     MealEntry
	DeleteMealEntry     string
	AddWaterEntry       WaterEntry
	UpdateWaterEntry    WaterEntry
	DeleteWaterEntry    string
	AddSleepEntry       SleepEntry
	UpdateSleepEntry    SleepEntry
	DeleteSleepEntry    string
	AddExerciseEntry    ExerciseEntry
	UpdateExerciseEntry ExerciseEntry
	DeleteExerciseEntry string
	AddMedicineEntry    MedicineEntry
	UpdateMedicineEntry MedicineEntry
	DeleteMedicineEntry string
	AddReportEntry      ReportEntry
	UpdateReportEntry   ReportEntry
	DeleteReportEntry   string
)

// UpdateHospitalBagItem checks or unchecks the item with Name.
type UpdateHospitalBagItem struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type SetLoading bool

type SetError string

type ClearError struct{}

func (SetPregnancyData) Type() action.Type      { return TypeSetPregnancyData }
func (AddWeightEntry) Type() action.Type        { return TypeAddWeightEntry }
func (UpdateWeightEntry) Type() action.Type     { return TypeUpdateWeightEntry }
func (DeleteWeightEntry) Type() action.Type     { return TypeDeleteWeightEntry }
func (AddMealEntry) Type() action.Type          { return TypeAddMealEntry }
func (UpdateMealEntry) Type() action.Type       { return TypeUpdateMealEntry }
func (DeleteMealEntry) Type() action.Type       { return TypeDeleteMealEntry }
func (AddWaterEntry) Type() action.Type         { return TypeAddWaterEntry }
func (UpdateWaterEntry) Type() action.Type      { return TypeUpdateWaterEntry }
func (DeleteWaterEntry) Type() action.Type      { return TypeDeleteWaterEntry }
func (AddSleepEntry) Type() action.Type         { return TypeAddSleepEntry }
func (UpdateSleepEntry) Type() action.Type      { return TypeUpdateSleepEntry }
func (DeleteSleepEntry) Type() action.Type      { return TypeDeleteSleepEntry }
func (AddExerciseEntry) Type() action.Type      { return TypeAddExerciseEntry }
func (UpdateExerciseEntry) Type() action.Type   { return TypeUpdateExerciseEntry }
func (DeleteExerciseEntry) Type() action.Type   { return TypeDeleteExerciseEntry }
func (AddMedicineEntry) Type() action.Type      { return TypeAddMedicineEntry }
func (UpdateMedicineEntry) Type() action.Type   { return TypeUpdateMedicineEntry }
func (DeleteMedicineEntry) Type() action.Type   { return TypeDeleteMedicineEntry }
func (AddReportEntry) Type() action.Type        { return TypeAddReportEntry }
func (UpdateReportEntry) Type() action.Type     { return TypeUpdateReportEntry }
func (DeleteReportEntry) Type() action.Type     { return TypeDeleteReportEntry }
func (UpdateHospitalBagItem) Type() action.Type { return TypeUpdateHospitalBagItem }
func (SetLoading) Type() action.Type            { return TypeSetLoading }
func (SetError) Type() action.Type              { return TypeSetError }
func (ClearError) Type() action.Type            { return TypeClearError }
