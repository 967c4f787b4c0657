// file: internals/features/tracking/scholarship_applications/service/scholarship_application_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	catalogService "scholartrack_backend/internals/features/catalog/service"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/dto"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/model"
	trackingService "scholartrack_backend/internals/features/tracking/service"
	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
	"scholartrack_backend/internals/metrics"
)

const Resource = "scholarship application"

type Tracker = trackingService.Tracker[model.ScholarshipApplicationModel, *model.ScholarshipApplicationModel]

type ScholarshipApplicationService struct {
	Tracker      *Tracker
	Scholarships catalogService.Lookup[catalogModel.ScholarshipModel]
}

func NewScholarshipApplicationService(
	st store.Store[model.ScholarshipApplicationModel],
	scholarships catalogService.Lookup[catalogModel.ScholarshipModel],
	log *zap.Logger,
	m *metrics.Metrics,
) *ScholarshipApplicationService {
	return &ScholarshipApplicationService{
		Tracker:      trackingService.New[model.ScholarshipApplicationModel, *model.ScholarshipApplicationModel](model.Track, st, log, m),
		Scholarships: scholarships,
	}
}

// Create: scholarship harus ada; title & amount_max di-snapshot, deadline default dari katalog.
func (s *ScholarshipApplicationService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateScholarshipApplicationRequest) (model.ScholarshipApplicationModel, error) {
	schID, err := uuid.Parse(req.ScholarshipID)
	if err != nil {
		return model.ScholarshipApplicationModel{}, workflow.Invalid("scholarship_id", "must be a valid UUID")
	}
	sch, err := s.Scholarships.Get(ctx, schID)
	if err != nil {
		return model.ScholarshipApplicationModel{}, err
	}

	raw := ""
	if req.Status != nil {
		raw = *req.Status
	}
	return s.Tracker.Create(ctx, ownerID, raw, func(m *model.ScholarshipApplicationModel) error {
		m.ScholarshipApplicationScholarshipID = sch.ScholarshipID
		title := sch.ScholarshipTitle
		m.ScholarshipApplicationTitleSnapshot = &title
		if sch.ScholarshipAmountMax != nil {
			v := *sch.ScholarshipAmountMax
			m.ScholarshipApplicationAmountMaxSnapshot = &v
		}
		if sch.ScholarshipDeadline != nil {
			d := *sch.ScholarshipDeadline
			m.ScholarshipApplicationDeadline = &d
		}
		req.ScholarshipApplicationFields.Apply(m)
		return nil
	})
}

func (s *ScholarshipApplicationService) Get(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error) {
	return s.Tracker.Get(ctx, ownerID, id)
}

// GetDetail: aplikasi + metadata scholarship (nil kalau entri katalog sudah tidak ada).
func (s *ScholarshipApplicationService) GetDetail(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, *catalogModel.ScholarshipModel, error) {
	app, err := s.Tracker.Get(ctx, ownerID, id)
	if err != nil {
		return app, nil, err
	}
	sch, err := s.Scholarships.Get(ctx, app.ScholarshipApplicationScholarshipID)
	if err != nil {
		var nf *workflow.NotFoundError
		if errors.As(err, &nf) {
			return app, nil, nil
		}
		return app, nil, err
	}
	return app, &sch, nil
}

func (s *ScholarshipApplicationService) List(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]model.ScholarshipApplicationModel, error) {
	return s.Tracker.List(ctx, ownerID, q)
}

func (s *ScholarshipApplicationService) Update(ctx context.Context, ownerID, id uuid.UUID, req dto.UpdateScholarshipApplicationRequest) (model.ScholarshipApplicationModel, error) {
	var status *workflow.Status
	if req.Status != nil {
		st, err := model.Track.Parse(*req.Status)
		if err != nil {
			return model.ScholarshipApplicationModel{}, err
		}
		status = &st
	}
	if req.AwardAmount != nil && *req.AwardAmount < 0 {
		return model.ScholarshipApplicationModel{}, workflow.Invalid("award_amount", "must be greater than or equal to 0")
	}
	return s.Tracker.Update(ctx, ownerID, id, status, func(m *model.ScholarshipApplicationModel) error {
		req.ScholarshipApplicationFields.Apply(m)
		return nil
	})
}

func (s *ScholarshipApplicationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.Tracker.Delete(ctx, ownerID, id)
}

/* =========================================================
   QUICK ACTIONS
========================================================= */

func (s *ScholarshipApplicationService) MarkSubmitted(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusSubmitted, nil)
}

// MarkAccepted: award (opsional) ikut disimpan dalam transaksi yang sama.
// Award dicek setelah record ditemukan, jadi id milik user lain tetap 404.
func (s *ScholarshipApplicationService) MarkAccepted(ctx context.Context, ownerID, id uuid.UUID, award *float64) (model.ScholarshipApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusAccepted, func(m *model.ScholarshipApplicationModel) error {
		if award == nil {
			return nil
		}
		if *award < 0 {
			return workflow.Invalid("award_amount", "must be greater than or equal to 0")
		}
		v := *award
		m.ScholarshipApplicationAwardAmount = &v
		return nil
	})
}

func (s *ScholarshipApplicationService) MarkRejected(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusRejected, nil)
}

func (s *ScholarshipApplicationService) MarkNotPursuing(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error) {
	return s.Tracker.Mark(ctx, ownerID, id, model.StatusNotPursuing, nil)
}

/* =========================================================
   DASHBOARD
========================================================= */

func (s *ScholarshipApplicationService) Dashboard(ctx context.Context, ownerID uuid.UUID, days int) (dto.ScholarshipDashboardResponse, error) {
	if days <= 0 {
		days = s.Tracker.WindowDays
	}
	ov, err := s.Tracker.Overview(ctx, ownerID, days)
	if err != nil {
		return dto.ScholarshipDashboardResponse{}, err
	}

	potential, awarded := MoneyTotals(ov.Items)
	return dto.ScholarshipDashboardResponse{
		Summary: dto.ScholarshipSummary{
			TotalApplications:   ov.Total,
			Interested:          ov.Counts[model.StatusInterested],
			Planning:            ov.Counts[model.StatusPlanning],
			InProgress:          ov.Counts[model.StatusInProgress],
			Submitted:           ov.Counts[model.StatusSubmitted],
			Accepted:            ov.Counts[model.StatusAccepted],
			Rejected:            ov.Counts[model.StatusRejected],
			NotPursuing:         ov.Counts[model.StatusNotPursuing],
			TotalPotentialValue: potential,
			TotalAwardedValue:   awarded,
		},
		UpcomingDeadlines: dto.FromModels(ov.Upcoming),
		Overdue:           dto.FromModels(ov.Overdue),
		Applications:      dto.FromModels(ov.Items),
		DaysAhead:         days,
	}, nil
}

// MoneyTotals:
//   - potential = Σ PotentialValue() untuk status selain rejected / not_pursuing
//   - awarded   = Σ award_amount untuk status accepted
func MoneyTotals(items []model.ScholarshipApplicationModel) (potential, awarded float64) {
	for _, it := range items {
		switch it.ScholarshipApplicationStatus {
		case model.StatusRejected, model.StatusNotPursuing:
			continue
		case model.StatusAccepted:
			if it.ScholarshipApplicationAwardAmount != nil {
				awarded += *it.ScholarshipApplicationAwardAmount
			}
		}
		potential += it.PotentialValue()
	}
	return potential, awarded
}
