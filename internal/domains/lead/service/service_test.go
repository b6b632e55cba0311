package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"skillax-backend/internal/domains/lead/model"
	"skillax-backend/internal/domains/lead/repository"
	infra "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/infrastructure/queue"
	"skillax-backend/internal/shared/errs"
)

type recordingNotifier struct {
	payloads []queue.LeadNotifyPayload
	err      error
}

func (n *recordingNotifier) EnqueueLeadNotify(p queue.LeadNotifyPayload) error {
	n.payloads = append(n.payloads, p)
	return n.err
}

func newLeadFixture(t *testing.T) (Service, *recordingNotifier) {
	t.Helper()
	store := infra.NewMemoryStore()
	notifier := &recordingNotifier{}
	return NewService(repository.NewRepository(store), notifier), notifier
}

func TestCreateLeadDefaults(t *testing.T) {
	svc, notifier := newLeadFixture(t)

	lead, err := svc.Create(context.Background(), &model.CreateLeadRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+91 9000000001",
		Interest: "SEO",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, model.StatusNew, lead.Status)
	assert.Equal(t, model.SourceWebsite, lead.Source)
	assert.NotEmpty(t, lead.CreatedAt)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, lead.ID, notifier.payloads[0].LeadID)
}

func TestCreateLeadValidation(t *testing.T) {
	svc, notifier := newLeadFixture(t)

	cases := []model.CreateLeadRequest{
		{Email: "a@b.c", Phone: "1", Interest: "SEO"},             // no name
		{Name: "A", Phone: "1", Interest: "SEO"},                  // no email
		{Name: "A", Email: "not-an-email", Phone: "1", Interest: "SEO"}, // bad email
		{Name: "A", Email: "a@b.c", Interest: "SEO"},              // no phone
		{Name: "A", Email: "a@b.c", Phone: "1"},                   // no interest
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), &req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValidationFailed))
	}
	assert.Empty(t, notifier.payloads)
}

func TestCreateLeadSurvivesNotifierFailure(t *testing.T) {
	svc, notifier := newLeadFixture(t)
	notifier.err = errors.New("redis down")

	lead, err := svc.Create(context.Background(), &model.CreateLeadRequest{
		Name: "Asha", Email: "asha@example.com", Phone: "1", Interest: "SEO",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
}

func TestSubmitContactBecomesLead(t *testing.T) {
	svc, _ := newLeadFixture(t)

	lead, err := svc.SubmitContact(context.Background(), &model.ContactFormRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Phone:   "+91 9000000002",
		Subject: "Course fees",
		Message: "Please share the fee structure.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.SourceContactForm, lead.Source)
	assert.Equal(t, "Course fees", lead.Interest)
	assert.Equal(t, model.StatusNew, lead.Status)
}

func TestListFiltersAndSorts(t *testing.T) {
	svc, _ := newLeadFixture(t)
	ctx := context.Background()

	for _, req := range []model.CreateLeadRequest{
		{Name: "A", Email: "a@x.com", Phone: "1", Interest: "SEO"},
		{Name: "B", Email: "b@x.com", Phone: "2", Interest: "Ads", Source: model.SourceChatbot},
	} {
		_, err := svc.Create(ctx, &req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, model.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	chatbot, err := svc.List(ctx, model.ListFilter{Source: model.SourceChatbot})
	require.NoError(t, err)
	require.Len(t, chatbot, 1)
	assert.Equal(t, "B", chatbot[0].Name)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newLeadFixture(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, &model.CreateLeadRequest{
		Name: "A", Email: "a@x.com", Phone: "1", Interest: "SEO",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, lead.ID, model.StatusConverted))

	got, err := svc.List(ctx, model.ListFilter{Status: model.StatusConverted})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, lead.ID, got[0].ID)

	err = svc.UpdateStatus(ctx, "missing-id", model.StatusContacted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	err = svc.UpdateStatus(ctx, lead.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))
}

func TestExportXLSX(t *testing.T) {
	svc, _ := newLeadFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateLeadRequest{
		Name: "A", Email: "a@x.com", Phone: "1", Interest: "SEO",
	})
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx)
	require.NoError(t, err)
	// xlsx files are zip archives.
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestExportXLSXCoversAllLeads(t *testing.T) {
	store := infra.NewMemoryStore()
	repo := repository.NewRepository(store)
	svc := NewService(repo, nil)
	ctx := context.Background()

	total := maxListLimit + 5
	for i := 0; i < total; i++ {
		require.NoError(t, repo.Create(ctx, &model.Lead{
			ID:        fmt.Sprintf("lead-%04d", i),
			Name:      "Lead",
			Email:     fmt.Sprintf("lead%d@example.com", i),
			Status:    model.StatusNew,
			Source:    model.SourceWebsite,
			CreatedAt: "2025-01-01T00:00:00Z",
		}))
	}

	data, err := svc.ExportXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	// Header row plus one row per lead, beyond the listing page size.
	assert.Len(t, rows, total+1)
}
