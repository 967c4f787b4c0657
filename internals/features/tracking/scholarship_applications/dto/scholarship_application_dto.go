// file: internals/features/tracking/scholarship_applications/dto/scholarship_application_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/model"
	"scholartrack_backend/internals/helpers/dbtime"
)

// ====================
// Request DTO
// ====================

type ScholarshipApplicationFields struct {
	Deadline       *dbtime.Instant `json:"deadline"`
	AwardAmount    *float64        `json:"award_amount" validate:"omitempty,gte=0"`
	Notes          *string         `json:"notes" validate:"omitempty,max=5000"`
	ApplicationURL *string         `json:"application_url" validate:"omitempty,url"`
	EssayCompleted *bool           `json:"essay_completed"`
	DocumentsReady *bool           `json:"documents_ready"`

	// Cleared: key yang dikirim sebagai null pada update (lihat helper.NullKeys).
	Cleared map[string]bool `json:"-"`
}

// NullableKeys: field yang bisa dikosongkan dengan null.
var NullableKeys = []string{"deadline", "award_amount", "notes", "application_url"}

type CreateScholarshipApplicationRequest struct {
	ScholarshipID string  `json:"scholarship_id" validate:"required,uuid"`
	Status        *string `json:"status"`
	ScholarshipApplicationFields
}

type UpdateScholarshipApplicationRequest struct {
	Status *string `json:"status"`
	ScholarshipApplicationFields
}

// MarkAcceptedRequest: award_amount dari query (?award_amount=) atau body.
// Nilai negatif ditolak service setelah ownership dicek.
type MarkAcceptedRequest struct {
	AwardAmount *float64 `json:"award_amount" query:"award_amount"`
}

func (r *CreateScholarshipApplicationRequest) Normalize() {
	r.ScholarshipID = strings.TrimSpace(r.ScholarshipID)
	r.ScholarshipApplicationFields.Normalize()
}

func (r *UpdateScholarshipApplicationRequest) Normalize() {
	r.ScholarshipApplicationFields.Normalize()
}

func (f *ScholarshipApplicationFields) Normalize() {
	if f.ApplicationURL != nil {
		v := strings.TrimSpace(*f.ApplicationURL)
		f.ApplicationURL = &v
	}
}

// Apply menyalin field yang dikirim ke model.
func (f ScholarshipApplicationFields) Apply(m *model.ScholarshipApplicationModel) {
	if f.Deadline != nil {
		m.ScholarshipApplicationDeadline = f.Deadline.Ptr()
	}
	if f.AwardAmount != nil {
		v := *f.AwardAmount
		m.ScholarshipApplicationAwardAmount = &v
	}
	if f.Notes != nil {
		m.ScholarshipApplicationNotes = nilIfEmpty(*f.Notes)
	}
	if f.ApplicationURL != nil {
		m.ScholarshipApplicationURL = nilIfEmpty(*f.ApplicationURL)
	}
	if f.EssayCompleted != nil {
		m.ScholarshipApplicationEssayCompleted = *f.EssayCompleted
	}
	if f.DocumentsReady != nil {
		m.ScholarshipApplicationDocumentsReady = *f.DocumentsReady
	}

	for k := range f.Cleared {
		switch k {
		case "deadline":
			m.ScholarshipApplicationDeadline = nil
		case "award_amount":
			m.ScholarshipApplicationAwardAmount = nil
		case "notes":
			m.ScholarshipApplicationNotes = nil
		case "application_url":
			m.ScholarshipApplicationURL = nil
		}
	}
}

// ====================
// Response DTO
// ====================

type ScholarshipBrief struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Provider  *string    `json:"provider,omitempty"`
	AmountMin *float64   `json:"amount_min,omitempty"`
	AmountMax *float64   `json:"amount_max,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	URL       *string    `json:"url,omitempty"`
}

type ScholarshipApplicationResponse struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	ScholarshipID     uuid.UUID         `json:"scholarship_id"`
	ScholarshipTitle  *string           `json:"scholarship_title,omitempty"`
	ScholarshipAmount *float64          `json:"scholarship_amount_max,omitempty"`
	Scholarship       *ScholarshipBrief `json:"scholarship,omitempty"`

	Status         string     `json:"status"`
	Deadline       *time.Time `json:"deadline"`
	AwardAmount    *float64   `json:"award_amount"`
	Notes          *string    `json:"notes"`
	ApplicationURL *string    `json:"application_url"`
	EssayCompleted bool       `json:"essay_completed"`
	DocumentsReady bool       `json:"documents_ready"`

	StartedAt    *time.Time `json:"started_at"`
	SubmittedAt  *time.Time `json:"submitted_at"`
	DecisionDate *time.Time `json:"decision_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromModel(m model.ScholarshipApplicationModel) ScholarshipApplicationResponse {
	return ScholarshipApplicationResponse{
		ID:                m.ScholarshipApplicationID,
		UserID:            m.ScholarshipApplicationUserID,
		ScholarshipID:     m.ScholarshipApplicationScholarshipID,
		ScholarshipTitle:  m.ScholarshipApplicationTitleSnapshot,
		ScholarshipAmount: m.ScholarshipApplicationAmountMaxSnapshot,
		Status:            string(m.ScholarshipApplicationStatus),
		Deadline:          m.ScholarshipApplicationDeadline,
		AwardAmount:       m.ScholarshipApplicationAwardAmount,
		Notes:             m.ScholarshipApplicationNotes,
		ApplicationURL:    m.ScholarshipApplicationURL,
		EssayCompleted:    m.ScholarshipApplicationEssayCompleted,
		DocumentsReady:    m.ScholarshipApplicationDocumentsReady,
		StartedAt:         m.ScholarshipApplicationStartedAt,
		SubmittedAt:       m.ScholarshipApplicationSubmittedAt,
		DecisionDate:      m.ScholarshipApplicationDecisionDate,
		CreatedAt:         m.ScholarshipApplicationCreatedAt,
		UpdatedAt:         m.ScholarshipApplicationUpdatedAt,
	}
}

func FromModelWithScholarship(m model.ScholarshipApplicationModel, s *catalogModel.ScholarshipModel) ScholarshipApplicationResponse {
	out := FromModel(m)
	if s != nil {
		out.Scholarship = &ScholarshipBrief{
			ID:        s.ScholarshipID,
			Title:     s.ScholarshipTitle,
			Provider:  s.ScholarshipProvider,
			AmountMin: s.ScholarshipAmountMin,
			AmountMax: s.ScholarshipAmountMax,
			Deadline:  s.ScholarshipDeadline,
			URL:       s.ScholarshipURL,
		}
	}
	return out
}

func FromModels(rows []model.ScholarshipApplicationModel) []ScholarshipApplicationResponse {
	out := make([]ScholarshipApplicationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// ====================
// Dashboard
// ====================

type ScholarshipSummary struct {
	TotalApplications   int     `json:"total_applications"`
	Interested          int     `json:"interested"`
	Planning            int     `json:"planning"`
	InProgress          int     `json:"in_progress"`
	Submitted           int     `json:"submitted"`
	Accepted            int     `json:"accepted"`
	Rejected            int     `json:"rejected"`
	NotPursuing         int     `json:"not_pursuing"`
	TotalPotentialValue float64 `json:"total_potential_value"`
	TotalAwardedValue   float64 `json:"total_awarded_value"`
}

type ScholarshipDashboardResponse struct {
	Summary           ScholarshipSummary               `json:"summary"`
	UpcomingDeadlines []ScholarshipApplicationResponse `json:"upcoming_deadlines"`
	Overdue           []ScholarshipApplicationResponse `json:"overdue"`
	Applications      []ScholarshipApplicationResponse `json:"applications"`
	DaysAhead         int                              `json:"days_ahead"`
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
