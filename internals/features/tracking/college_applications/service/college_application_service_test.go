package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	catalogService "scholartrack_backend/internals/features/catalog/service"
	"scholartrack_backend/internals/features/tracking/college_applications/dto"
	"scholartrack_backend/internals/features/tracking/college_applications/model"
	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
	"scholartrack_backend/internals/helpers/dbtime"
)

var stanford = catalogModel.InstitutionModel{InstitutionID: uuid.New(), InstitutionName: "Stanford University"}

func newService(t *testing.T) *CollegeApplicationService {
	t.Helper()
	return NewCollegeApplicationService(
		store.NewMemoryStore[model.CollegeApplicationModel](Resource),
		catalogService.NewMemoryLookup("institution", stanford),
		zap.NewNop(), nil)
}

func strp(s string) *string { return &s }

func TestCreate_PassThroughFields(t *testing.T) {
	svc := newService(t)
	ctx, owner := context.Background(), uuid.New()
	decision := time.Date(2027, 3, 28, 0, 0, 0, 0, time.UTC)

	app, err := svc.Create(ctx, owner, dto.CreateCollegeApplicationRequest{
		InstitutionID: stanford.InstitutionID.String(),
		Status:        strp("in_progress"),
		CollegeApplicationFields: dto.CollegeApplicationFields{
			ApplicationType: strp("regular_decision"),
			DecisionDate:    &dbtime.Instant{Time: decision},
			PortalURL:       strp("https://apply.commonapp.org"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, app.CollegeApplicationStatus)
	assert.NotNil(t, app.CollegeApplicationStartedAt)
	assert.Equal(t, "Stanford University", *app.CollegeApplicationInstitutionNameSnapshot)

	out := dto.FromModel(app)
	require.NotNil(t, out.DecisionDate)
	assert.Equal(t, "2027-03-28", *out.DecisionDate)
	assert.Equal(t, "regular_decision", *out.ApplicationType)
	assert.Equal(t, "Stanford University", *out.InstitutionName)
}

func TestCreate_UnknownInstitution(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCollegeApplicationRequest{InstitutionID: uuid.NewString()})
	var nf *workflow.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "institution not found", nf.Error())
}

func TestQuickActions(t *testing.T) {
	svc := newService(t)
	ctx, owner := context.Background(), uuid.New()
	app, err := svc.Create(ctx, owner, dto.CreateCollegeApplicationRequest{InstitutionID: stanford.InstitutionID.String()})
	require.NoError(t, err)
	id := app.CollegeApplicationID

	steps := []struct {
		fn   func(context.Context, uuid.UUID, uuid.UUID) (model.CollegeApplicationModel, error)
		want workflow.Status
	}{
		{svc.MarkSubmitted, model.StatusSubmitted},
		{svc.MarkWaitlisted, model.StatusWaitlisted},
		{svc.MarkAccepted, model.StatusAccepted},
		{svc.MarkRejected, model.StatusRejected},
	}
	var decided *time.Time
	for _, st := range steps {
		app, err = st.fn(ctx, owner, id)
		require.NoError(t, err)
		assert.Equal(t, st.want, app.CollegeApplicationStatus)
		if decided == nil {
			decided = app.CollegeApplicationDecidedAt
		} else {
			assert.Equal(t, *decided, *app.CollegeApplicationDecidedAt)
		}
	}
	assert.Nil(t, app.CollegeApplicationStartedAt)
	assert.NotNil(t, app.CollegeApplicationSubmittedAt)
}

func TestUpdate_ClearsOptionalStrings(t *testing.T) {
	svc := newService(t)
	ctx, owner := context.Background(), uuid.New()
	app, err := svc.Create(ctx, owner, dto.CreateCollegeApplicationRequest{
		InstitutionID: stanford.InstitutionID.String(),
		CollegeApplicationFields: dto.CollegeApplicationFields{
			Notes:             strp("call admissions"),
			ApplicationPortal: strp("Common App"),
		},
	})
	require.NoError(t, err)

	app, err = svc.Update(ctx, owner, app.CollegeApplicationID, dto.UpdateCollegeApplicationRequest{
		CollegeApplicationFields: dto.CollegeApplicationFields{Notes: strp("")},
	})
	require.NoError(t, err)
	assert.Nil(t, app.CollegeApplicationNotes)
	require.NotNil(t, app.CollegeApplicationPortal)
	assert.Equal(t, "Common App", *app.CollegeApplicationPortal)
	assert.Equal(t, model.StatusResearching, app.CollegeApplicationStatus)

	_, err = svc.Update(ctx, owner, app.CollegeApplicationID, dto.UpdateCollegeApplicationRequest{Status: strp("maybe")})
	var ve *workflow.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestDashboard_AwaitingDecision(t *testing.T) {
	svc := newService(t)
	ctx, owner := context.Background(), uuid.New()
	app, err := svc.Create(ctx, owner, dto.CreateCollegeApplicationRequest{InstitutionID: stanford.InstitutionID.String(), Status: strp("submitted")})
	require.NoError(t, err)

	out, err := svc.Dashboard(ctx, owner, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.TotalApplications)
	assert.Equal(t, 1, out.Summary.Submitted)
	assert.Equal(t, 1, out.Summary.AwaitingDecision)
	assert.Equal(t, workflow.DefaultWindowDays, out.DaysAhead)

	_, err = svc.MarkAccepted(ctx, owner, app.CollegeApplicationID)
	require.NoError(t, err)
	out, err = svc.Dashboard(ctx, owner, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Summary.AwaitingDecision)
	assert.Equal(t, 1, out.Summary.Accepted)
	assert.Equal(t, 10, out.DaysAhead)
}
