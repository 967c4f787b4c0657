// file: internals/features/tracking/scholarship_applications/model/scholarship_application_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
)

const (
	StatusInterested  workflow.Status = "interested"
	StatusPlanning    workflow.Status = "planning"
	StatusInProgress  workflow.Status = "in_progress"
	StatusSubmitted   workflow.Status = "submitted"
	StatusAccepted    workflow.Status = "accepted"
	StatusRejected    workflow.Status = "rejected"
	StatusNotPursuing workflow.Status = "not_pursuing"
)

var Track = workflow.NewTrack("scholarship",
	[]workflow.Status{
		StatusInterested, StatusPlanning, StatusInProgress, StatusSubmitted,
		StatusAccepted, StatusRejected, StatusNotPursuing,
	},
	StatusInterested, StatusInProgress, StatusSubmitted,
	StatusAccepted, StatusRejected, StatusNotPursuing,
)

type ScholarshipApplicationModel struct {
	ScholarshipApplicationID            uuid.UUID `gorm:"column:scholarship_application_id;type:uuid;primaryKey" json:"scholarship_application_id"`
	ScholarshipApplicationUserID        uuid.UUID `gorm:"column:scholarship_application_user_id;type:uuid;not null;uniqueIndex:uq_scholarship_app_user_scholarship,priority:1" json:"scholarship_application_user_id"`
	ScholarshipApplicationScholarshipID uuid.UUID `gorm:"column:scholarship_application_scholarship_id;type:uuid;not null;uniqueIndex:uq_scholarship_app_user_scholarship,priority:2" json:"scholarship_application_scholarship_id"`

	// snapshot katalog saat create
	ScholarshipApplicationTitleSnapshot     *string  `gorm:"column:scholarship_application_title_snapshot;type:varchar(200)" json:"scholarship_application_title_snapshot,omitempty"`
	ScholarshipApplicationAmountMaxSnapshot *float64 `gorm:"column:scholarship_application_amount_max_snapshot;type:numeric(12,2)" json:"scholarship_application_amount_max_snapshot,omitempty"`

	ScholarshipApplicationStatus   workflow.Status `gorm:"column:scholarship_application_status;type:varchar(20);not null;default:'interested';index" json:"scholarship_application_status"`
	ScholarshipApplicationDeadline *time.Time      `gorm:"column:scholarship_application_deadline;type:timestamptz;index" json:"scholarship_application_deadline,omitempty"`

	ScholarshipApplicationAwardAmount    *float64 `gorm:"column:scholarship_application_award_amount;type:numeric(12,2)" json:"scholarship_application_award_amount,omitempty"`
	ScholarshipApplicationNotes          *string  `gorm:"column:scholarship_application_notes;type:text" json:"scholarship_application_notes,omitempty"`
	ScholarshipApplicationURL            *string  `gorm:"column:scholarship_application_url;type:text" json:"scholarship_application_url,omitempty"`
	ScholarshipApplicationEssayCompleted bool     `gorm:"column:scholarship_application_essay_completed;not null;default:false" json:"scholarship_application_essay_completed"`
	ScholarshipApplicationDocumentsReady bool     `gorm:"column:scholarship_application_documents_ready;not null;default:false" json:"scholarship_application_documents_ready"`

	// sticky stamps (decision_date = stamp keputusan)
	ScholarshipApplicationStartedAt    *time.Time `gorm:"column:scholarship_application_started_at;type:timestamptz" json:"scholarship_application_started_at,omitempty"`
	ScholarshipApplicationSubmittedAt  *time.Time `gorm:"column:scholarship_application_submitted_at;type:timestamptz" json:"scholarship_application_submitted_at,omitempty"`
	ScholarshipApplicationDecisionDate *time.Time `gorm:"column:scholarship_application_decision_date;type:timestamptz" json:"scholarship_application_decision_date,omitempty"`

	ScholarshipApplicationCreatedAt time.Time `gorm:"column:scholarship_application_created_at;type:timestamptz;not null" json:"scholarship_application_created_at"`
	ScholarshipApplicationUpdatedAt time.Time `gorm:"column:scholarship_application_updated_at;type:timestamptz;not null" json:"scholarship_application_updated_at"`
}

func (ScholarshipApplicationModel) TableName() string {
	return "scholarship_applications"
}

var Columns = store.Columns{
	ID:        "scholarship_application_id",
	Owner:     "scholarship_application_user_id",
	Target:    "scholarship_application_scholarship_id",
	Status:    "scholarship_application_status",
	Deadline:  "scholarship_application_deadline",
	CreatedAt: "scholarship_application_created_at",
}

func (m ScholarshipApplicationModel) GetID() uuid.UUID           { return m.ScholarshipApplicationID }
func (m ScholarshipApplicationModel) GetOwnerID() uuid.UUID      { return m.ScholarshipApplicationUserID }
func (m ScholarshipApplicationModel) GetTargetID() uuid.UUID     { return m.ScholarshipApplicationScholarshipID }
func (m ScholarshipApplicationModel) GetStatus() workflow.Status { return m.ScholarshipApplicationStatus }
func (m ScholarshipApplicationModel) GetDeadline() *time.Time    { return m.ScholarshipApplicationDeadline }
func (m ScholarshipApplicationModel) GetCreatedAt() time.Time    { return m.ScholarshipApplicationCreatedAt }

func (m *ScholarshipApplicationModel) Init(id, ownerID uuid.UUID, now time.Time) {
	m.ScholarshipApplicationID = id
	m.ScholarshipApplicationUserID = ownerID
	m.ScholarshipApplicationCreatedAt = now
	m.ScholarshipApplicationUpdatedAt = now
}

func (m *ScholarshipApplicationModel) SetStatus(s workflow.Status) { m.ScholarshipApplicationStatus = s }

func (m ScholarshipApplicationModel) GetStamps() workflow.Stamps {
	return workflow.Stamps{
		StartedAt:   m.ScholarshipApplicationStartedAt,
		SubmittedAt: m.ScholarshipApplicationSubmittedAt,
		DecidedAt:   m.ScholarshipApplicationDecisionDate,
	}
}

func (m *ScholarshipApplicationModel) SetStamps(st workflow.Stamps) {
	m.ScholarshipApplicationStartedAt = st.StartedAt
	m.ScholarshipApplicationSubmittedAt = st.SubmittedAt
	m.ScholarshipApplicationDecisionDate = st.DecidedAt
}

func (m *ScholarshipApplicationModel) Touch(now time.Time) { m.ScholarshipApplicationUpdatedAt = now }

// PotentialValue: amount_max katalog, fallback award_amount, selain itu 0.
func (m ScholarshipApplicationModel) PotentialValue() float64 {
	switch {
	case m.ScholarshipApplicationAmountMaxSnapshot != nil:
		return *m.ScholarshipApplicationAmountMaxSnapshot
	case m.ScholarshipApplicationAwardAmount != nil:
		return *m.ScholarshipApplicationAwardAmount
	default:
		return 0
	}
}
