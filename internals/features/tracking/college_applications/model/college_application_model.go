// file: internals/features/tracking/college_applications/model/college_application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
)

/* =========================================================
   STATUS & TRACK
========================================================= */

const (
	StatusResearching workflow.Status = "researching"
	StatusInProgress  workflow.Status = "in_progress"
	StatusSubmitted   workflow.Status = "submitted"
	StatusAccepted    workflow.Status = "accepted"
	StatusRejected    workflow.Status = "rejected"
	StatusWaitlisted  workflow.Status = "waitlisted"
)

var Track = workflow.NewTrack("college",
	[]workflow.Status{
		StatusResearching, StatusInProgress, StatusSubmitted,
		StatusAccepted, StatusRejected, StatusWaitlisted,
	},
	StatusResearching, StatusInProgress, StatusSubmitted,
	StatusAccepted, StatusRejected, StatusWaitlisted,
)

// Jenis pendaftaran (pass-through, tidak ikut state machine)
const (
	ApplicationTypeEarlyDecision   = "early_decision"
	ApplicationTypeEarlyAction     = "early_action"
	ApplicationTypeRegularDecision = "regular_decision"
	ApplicationTypeRolling         = "rolling"
)

/* =========================================================
   MODEL
========================================================= */

type CollegeApplicationModel struct {
	CollegeApplicationID            uuid.UUID `gorm:"column:college_application_id;type:uuid;primaryKey" json:"college_application_id"`
	CollegeApplicationUserID        uuid.UUID `gorm:"column:college_application_user_id;type:uuid;not null;uniqueIndex:uq_college_app_user_institution,priority:1" json:"college_application_user_id"`
	CollegeApplicationInstitutionID uuid.UUID `gorm:"column:college_application_institution_id;type:uuid;not null;uniqueIndex:uq_college_app_user_institution,priority:2" json:"college_application_institution_id"`

	// snapshot katalog saat create
	CollegeApplicationInstitutionNameSnapshot *string `gorm:"column:college_application_institution_name_snapshot;type:varchar(200)" json:"college_application_institution_name_snapshot,omitempty"`

	CollegeApplicationStatus   workflow.Status `gorm:"column:college_application_status;type:varchar(20);not null;default:'researching';index" json:"college_application_status"`
	CollegeApplicationType     *string         `gorm:"column:college_application_type;type:varchar(20)" json:"college_application_type,omitempty"`
	CollegeApplicationDeadline *time.Time      `gorm:"column:college_application_deadline;type:timestamptz;index" json:"college_application_deadline,omitempty"`

	CollegeApplicationDecisionDate       *datatypes.Date `gorm:"column:college_application_decision_date;type:date" json:"college_application_decision_date,omitempty"`
	CollegeApplicationActualDecisionDate *datatypes.Date `gorm:"column:college_application_actual_decision_date;type:date" json:"college_application_actual_decision_date,omitempty"`

	CollegeApplicationFee               *float64 `gorm:"column:college_application_fee;type:numeric(10,2)" json:"college_application_fee,omitempty"`
	CollegeApplicationFeeWaiverObtained bool     `gorm:"column:college_application_fee_waiver_obtained;not null;default:false" json:"college_application_fee_waiver_obtained"`

	CollegeApplicationPortal         *string `gorm:"column:college_application_portal;type:varchar(100)" json:"college_application_portal,omitempty"`
	CollegeApplicationPortalURL      *string `gorm:"column:college_application_portal_url;type:text" json:"college_application_portal_url,omitempty"`
	CollegeApplicationPortalUsername *string `gorm:"column:college_application_portal_username;type:varchar(150)" json:"college_application_portal_username,omitempty"`
	CollegeApplicationNotes          *string `gorm:"column:college_application_notes;type:text" json:"college_application_notes,omitempty"`

	// sticky stamps
	CollegeApplicationStartedAt   *time.Time `gorm:"column:college_application_started_at;type:timestamptz" json:"college_application_started_at,omitempty"`
	CollegeApplicationSubmittedAt *time.Time `gorm:"column:college_application_submitted_at;type:timestamptz" json:"college_application_submitted_at,omitempty"`
	CollegeApplicationDecidedAt   *time.Time `gorm:"column:college_application_decided_at;type:timestamptz" json:"college_application_decided_at,omitempty"`

	CollegeApplicationCreatedAt time.Time `gorm:"column:college_application_created_at;type:timestamptz;not null" json:"college_application_created_at"`
	CollegeApplicationUpdatedAt time.Time `gorm:"column:college_application_updated_at;type:timestamptz;not null" json:"college_application_updated_at"`
}

func (CollegeApplicationModel) TableName() string {
	return "college_applications"
}

// Columns untuk GormStore
var Columns = store.Columns{
	ID:        "college_application_id",
	Owner:     "college_application_user_id",
	Target:    "college_application_institution_id",
	Status:    "college_application_status",
	Deadline:  "college_application_deadline",
	CreatedAt: "college_application_created_at",
}

/* =========================================================
   store.Entity
========================================================= */

func (m CollegeApplicationModel) GetID() uuid.UUID           { return m.CollegeApplicationID }
func (m CollegeApplicationModel) GetOwnerID() uuid.UUID      { return m.CollegeApplicationUserID }
func (m CollegeApplicationModel) GetTargetID() uuid.UUID     { return m.CollegeApplicationInstitutionID }
func (m CollegeApplicationModel) GetStatus() workflow.Status { return m.CollegeApplicationStatus }
func (m CollegeApplicationModel) GetDeadline() *time.Time    { return m.CollegeApplicationDeadline }
func (m CollegeApplicationModel) GetCreatedAt() time.Time    { return m.CollegeApplicationCreatedAt }

/* =========================================================
   service.Record
========================================================= */

func (m *CollegeApplicationModel) Init(id, ownerID uuid.UUID, now time.Time) {
	m.CollegeApplicationID = id
	m.CollegeApplicationUserID = ownerID
	m.CollegeApplicationCreatedAt = now
	m.CollegeApplicationUpdatedAt = now
}

func (m *CollegeApplicationModel) SetStatus(s workflow.Status) { m.CollegeApplicationStatus = s }

func (m CollegeApplicationModel) GetStamps() workflow.Stamps {
	return workflow.Stamps{
		StartedAt:   m.CollegeApplicationStartedAt,
		SubmittedAt: m.CollegeApplicationSubmittedAt,
		DecidedAt:   m.CollegeApplicationDecidedAt,
	}
}

func (m *CollegeApplicationModel) SetStamps(st workflow.Stamps) {
	m.CollegeApplicationStartedAt = st.StartedAt
	m.CollegeApplicationSubmittedAt = st.SubmittedAt
	m.CollegeApplicationDecidedAt = st.DecidedAt
}

func (m *CollegeApplicationModel) Touch(now time.Time) { m.CollegeApplicationUpdatedAt = now }
