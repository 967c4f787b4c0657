// file: internals/features/tracking/college_applications/service/college_application_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	catalogService "scholartrack_backend/internals/features/catalog/service"
	"scholartrack_backend/internals/features/tracking/college_applications/dto"
	"scholartrack_backend/internals/features/tracking/college_applications/model"
	trackingService "scholartrack_backend/internals/features/tracking/service"
	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
	"scholartrack_backend/internals/metrics"
)

const Resource = "college application"

type Tracker = trackingService.Tracker[model.CollegeApplicationModel, *model.CollegeApplicationModel]

type CollegeApplicationService struct {
	Tracker      *Tracker
	Institutions catalogService.Lookup[catalogModel.InstitutionModel]
}

func NewCollegeApplicationService(
	st store.Store[model.CollegeApplicationModel],
	institutions catalogService.Lookup[catalogModel.InstitutionModel],
	log *zap.Logger,
	m *metrics.Metrics,
) *CollegeApplicationService {
	return &CollegeApplicationService{
		Tracker:      trackingService.New[model.CollegeApplicationModel, *model.CollegeApplicationModel](model.Track, st, log, m),
		Institutions: institutions,
	}
}

/* =========================================================
   CRUD
========================================================= */

// Create: institution harus ada di katalog; nama institusi di-snapshot.
func (s *CollegeApplicationService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateCollegeApplicationRequest) (model.CollegeApplicationModel, error) {
	instID, err := uuid.Parse(req.InstitutionID)
	if err != nil {
		return model.CollegeApplicationModel{}, workflow.Invalid("institution_id", "must be a valid UUID")
	}
	inst, err := s.Institutions.Get(ctx, instID)
	if err != nil {
		return model.CollegeApplicationModel{}, err
	}

	raw := ""
	if req.Status != nil {
		raw = *req.Status
	}
	return s.Tracker.Create(ctx, ownerID, raw, func(m *model.CollegeApplicationModel) error {
		m.CollegeApplicationInstitutionID = inst.InstitutionID
		name := inst.InstitutionName
		m.CollegeApplicationInstitutionNameSnapshot = &name
		req.CollegeApplicationFields.Apply(m)
		return nil
	})
}

func (s *CollegeApplicationService) Get(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error) {
	return s.Tracker.Get(ctx, ownerID, id)
}

// GetDetail: aplikasi + metadata institusi. Entri katalog yang hilang → institution nil.
func (s *CollegeApplicationService) GetDetail(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, *catalogModel.InstitutionModel, error) {
	app, err := s.Tracker.Get(ctx, ownerID, id)
	if err != nil {
		return app, nil, err
	}
	inst, err := s.Institutions.Get(ctx, app.CollegeApplicationInstitutionID)
	if err != nil {
		var nf *workflow.NotFoundError
		if errors.As(err, &nf) {
			return app, nil, nil
		}
		return app, nil, err
	}
	return app, &inst, nil
}

func (s *CollegeApplicationService) List(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]model.CollegeApplicationModel, error) {
	return s.Tracker.List(ctx, ownerID, q)
}

func (s *CollegeApplicationService) Update(ctx context.Context, ownerID, id uuid.UUID, req dto.UpdateCollegeApplicationRequest) (model.CollegeApplicationModel, error) {
	var status *workflow.Status
	if req.Status != nil {
		st, err := model.Track.Parse(*req.Status)
		if err != nil {
			return model.CollegeApplicationModel{}, err
		}
		status = &st
	}
	return s.Tracker.Update(ctx, ownerID, id, status, func(m *model.CollegeApplicationModel) error {
		req.CollegeApplicationFields.Apply(m)
		return nil
	})
}

func (s *CollegeApplicationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.Tracker.Delete(ctx, ownerID, id)
}

/* =========================================================
   QUICK ACTIONS
========================================================= */

func (s *CollegeApplicationService) MarkSubmitted(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusSubmitted, nil)
}

func (s *CollegeApplicationService) MarkAccepted(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusAccepted, nil)
}

func (s *CollegeApplicationService) MarkRejected(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusRejected, nil)
}

func (s *CollegeApplicationService) MarkWaitlisted(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusWaitlisted, nil)
}

/* =========================================================
   DASHBOARD
========================================================= */

// Dashboard: days <= 0 → window default (DEADLINE_WINDOW_DAYS).
func (s *CollegeApplicationService) Dashboard(ctx context.Context, ownerID uuid.UUID, days int) (dto.CollegeDashboardResponse, error) {
	if days <= 0 {
		days = s.Tracker.WindowDays
	}
	ov, err := s.Tracker.Overview(ctx, ownerID, days)
	if err != nil {
		return dto.CollegeDashboardResponse{}, err
	}

	return dto.CollegeDashboardResponse{
		Summary: dto.CollegeSummary{
			TotalApplications: ov.Total,
			Researching:       ov.Counts[model.StatusResearching],
			InProgress:        ov.Counts[model.StatusInProgress],
			Submitted:         ov.Counts[model.StatusSubmitted],
			Accepted:          ov.Counts[model.StatusAccepted],
			Rejected:          ov.Counts[model.StatusRejected],
			Waitlisted:        ov.Counts[model.StatusWaitlisted],
			AwaitingDecision:  ov.Counts[model.StatusSubmitted],
		},
		UpcomingDeadlines: dto.FromModels(ov.Upcoming),
		Overdue:           dto.FromModels(ov.Overdue),
		Applications:      dto.FromModels(ov.Items),
		DaysAhead:         days,
	}, nil
}
