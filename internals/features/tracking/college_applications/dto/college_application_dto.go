// file: internals/features/tracking/college_applications/dto/college_application_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	"scholartrack_backend/internals/features/tracking/college_applications/model"
	"scholartrack_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST
========================================================= */

// Field pass-through yang sama untuk create & update.
// nil = tidak dikirim (tidak diubah).
type CollegeApplicationFields struct {
	ApplicationType    *string         `json:"application_type" validate:"omitempty,oneof=early_decision early_action regular_decision rolling"`
	Deadline           *dbtime.Instant `json:"deadline"`
	DecisionDate       *dbtime.Instant `json:"decision_date"`
	ActualDecisionDate *dbtime.Instant `json:"actual_decision_date"`
	ApplicationFee     *float64        `json:"application_fee" validate:"omitempty,gte=0"`
	FeeWaiverObtained  *bool           `json:"fee_waiver_obtained"`
	ApplicationPortal  *string         `json:"application_portal" validate:"omitempty,max=100"`
	PortalURL          *string         `json:"portal_url" validate:"omitempty,url"`
	PortalUsername     *string         `json:"portal_username" validate:"omitempty,max=150"`
	Notes              *string         `json:"notes" validate:"omitempty,max=5000"`

	// Cleared: key yang dikirim sebagai null pada update (lihat helper.NullKeys).
	Cleared map[string]bool `json:"-"`
}

// NullableKeys: field yang bisa dikosongkan dengan null.
var NullableKeys = []string{
	"application_type", "deadline", "decision_date", "actual_decision_date",
	"application_fee", "application_portal", "portal_url", "portal_username", "notes",
}

type CreateCollegeApplicationRequest struct {
	InstitutionID string  `json:"institution_id" validate:"required,uuid"`
	Status        *string `json:"status"`
	CollegeApplicationFields
}

type UpdateCollegeApplicationRequest struct {
	Status *string `json:"status"`
	CollegeApplicationFields
}

func (r *CreateCollegeApplicationRequest) Normalize() {
	r.InstitutionID = strings.TrimSpace(r.InstitutionID)
	r.CollegeApplicationFields.Normalize()
}

func (r *UpdateCollegeApplicationRequest) Normalize() {
	r.CollegeApplicationFields.Normalize()
}

func (f *CollegeApplicationFields) Normalize() {
	f.ApplicationType = lowerPtr(f.ApplicationType)
	f.ApplicationPortal = trimPtr(f.ApplicationPortal)
	f.PortalURL = trimPtr(f.PortalURL)
	f.PortalUsername = trimPtr(f.PortalUsername)
}

// Apply menyalin field yang dikirim ke model. String kosong ("") atau null (Cleared) mengosongkan kolom.
func (f CollegeApplicationFields) Apply(m *model.CollegeApplicationModel) {
	if f.ApplicationType != nil {
		m.CollegeApplicationType = nilIfEmpty(f.ApplicationType)
	}
	if f.Deadline != nil {
		m.CollegeApplicationDeadline = f.Deadline.Ptr()
	}
	if f.DecisionDate != nil {
		m.CollegeApplicationDecisionDate = toDate(f.DecisionDate)
	}
	if f.ActualDecisionDate != nil {
		m.CollegeApplicationActualDecisionDate = toDate(f.ActualDecisionDate)
	}
	if f.ApplicationFee != nil {
		v := *f.ApplicationFee
		m.CollegeApplicationFee = &v
	}
	if f.FeeWaiverObtained != nil {
		m.CollegeApplicationFeeWaiverObtained = *f.FeeWaiverObtained
	}
	if f.ApplicationPortal != nil {
		m.CollegeApplicationPortal = nilIfEmpty(f.ApplicationPortal)
	}
	if f.PortalURL != nil {
		m.CollegeApplicationPortalURL = nilIfEmpty(f.PortalURL)
	}
	if f.PortalUsername != nil {
		m.CollegeApplicationPortalUsername = nilIfEmpty(f.PortalUsername)
	}
	if f.Notes != nil {
		m.CollegeApplicationNotes = nilIfEmpty(f.Notes)
	}

	for k := range f.Cleared {
		switch k {
		case "application_type":
			m.CollegeApplicationType = nil
		case "deadline":
			m.CollegeApplicationDeadline = nil
		case "decision_date":
			m.CollegeApplicationDecisionDate = nil
		case "actual_decision_date":
			m.CollegeApplicationActualDecisionDate = nil
		case "application_fee":
			m.CollegeApplicationFee = nil
		case "application_portal":
			m.CollegeApplicationPortal = nil
		case "portal_url":
			m.CollegeApplicationPortalURL = nil
		case "portal_username":
			m.CollegeApplicationPortalUsername = nil
		case "notes":
			m.CollegeApplicationNotes = nil
		}
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type InstitutionBrief struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    *string   `json:"city,omitempty"`
	State   *string   `json:"state,omitempty"`
	Website *string   `json:"website,omitempty"`
}

type CollegeApplicationResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	InstitutionID   uuid.UUID         `json:"institution_id"`
	InstitutionName *string           `json:"institution_name,omitempty"`
	Institution     *InstitutionBrief `json:"institution,omitempty"`

	Status             string     `json:"status"`
	ApplicationType    *string    `json:"application_type"`
	Deadline           *time.Time `json:"deadline"`
	DecisionDate       *string    `json:"decision_date"`
	ActualDecisionDate *string    `json:"actual_decision_date"`
	ApplicationFee     *float64   `json:"application_fee"`
	FeeWaiverObtained  bool       `json:"fee_waiver_obtained"`
	ApplicationPortal  *string    `json:"application_portal"`
	PortalURL          *string    `json:"portal_url"`
	PortalUsername     *string    `json:"portal_username"`
	Notes              *string    `json:"notes"`

	StartedAt   *time.Time `json:"started_at"`
	SubmittedAt *time.Time `json:"submitted_at"`
	DecidedAt   *time.Time `json:"decided_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromModel(m model.CollegeApplicationModel) CollegeApplicationResponse {
	return CollegeApplicationResponse{
		ID:                 m.CollegeApplicationID,
		UserID:             m.CollegeApplicationUserID,
		InstitutionID:      m.CollegeApplicationInstitutionID,
		InstitutionName:    m.CollegeApplicationInstitutionNameSnapshot,
		Status:             string(m.CollegeApplicationStatus),
		ApplicationType:    m.CollegeApplicationType,
		Deadline:           m.CollegeApplicationDeadline,
		DecisionDate:       fromDate(m.CollegeApplicationDecisionDate),
		ActualDecisionDate: fromDate(m.CollegeApplicationActualDecisionDate),
		ApplicationFee:     m.CollegeApplicationFee,
		FeeWaiverObtained:  m.CollegeApplicationFeeWaiverObtained,
		ApplicationPortal:  m.CollegeApplicationPortal,
		PortalURL:          m.CollegeApplicationPortalURL,
		PortalUsername:     m.CollegeApplicationPortalUsername,
		Notes:              m.CollegeApplicationNotes,
		StartedAt:          m.CollegeApplicationStartedAt,
		SubmittedAt:        m.CollegeApplicationSubmittedAt,
		DecidedAt:          m.CollegeApplicationDecidedAt,
		CreatedAt:          m.CollegeApplicationCreatedAt,
		UpdatedAt:          m.CollegeApplicationUpdatedAt,
	}
}

// FromModelWithInstitution: detail response (embed metadata katalog).
func FromModelWithInstitution(m model.CollegeApplicationModel, inst *catalogModel.InstitutionModel) CollegeApplicationResponse {
	out := FromModel(m)
	if inst != nil {
		out.Institution = &InstitutionBrief{
			ID:      inst.InstitutionID,
			Name:    inst.InstitutionName,
			City:    inst.InstitutionCity,
			State:   inst.InstitutionState,
			Website: inst.InstitutionWebsite,
		}
		if out.InstitutionName == nil {
			name := inst.InstitutionName
			out.InstitutionName = &name
		}
	}
	return out
}

func FromModels(rows []model.CollegeApplicationModel) []CollegeApplicationResponse {
	out := make([]CollegeApplicationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

/* =========================================================
   DASHBOARD
========================================================= */

type CollegeSummary struct {
	TotalApplications int `json:"total_applications"`
	Researching       int `json:"researching"`
	InProgress        int `json:"in_progress"`
	Submitted         int `json:"submitted"`
	Accepted          int `json:"accepted"`
	Rejected          int `json:"rejected"`
	Waitlisted        int `json:"waitlisted"`
	AwaitingDecision  int `json:"awaiting_decision"`
}

type CollegeDashboardResponse struct {
	Summary           CollegeSummary               `json:"summary"`
	UpcomingDeadlines []CollegeApplicationResponse `json:"upcoming_deadlines"`
	Overdue           []CollegeApplicationResponse `json:"overdue"`
	Applications      []CollegeApplicationResponse `json:"applications"`
	DaysAhead         int                          `json:"days_ahead"`
}

/* =========================================================
   helpers
========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func toDate(in *dbtime.Instant) *datatypes.Date {
	if in == nil {
		return nil
	}
	t := in.Time.UTC()
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}

func fromDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dbtime.DateLayout)
	return &s
}
