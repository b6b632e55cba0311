package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/domains/course/model"
	"skillax-backend/internal/domains/course/repository"
	infra "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/shared/errs"
)

func newCourseService(t *testing.T) Service {
	t.Helper()
	return NewService(repository.NewRepository(infra.NewMemoryStore()))
}

func validCourse() *model.UpsertCourseRequest {
	return &model.UpsertCourseRequest{
		Title:            "Content Marketing Mastery",
		Slug:             "content-marketing-mastery",
		ShortDescription: "Learn to plan and write content that converts.",
		Description:      "A hands-on program covering strategy, writing and distribution.",
		Duration:         "6 Weeks",
		Certification:    "Skillax Certified Content Marketer",
		Price:            "15000",
	}
}

func TestCreateCourseDefaults(t *testing.T) {
	svc := newCourseService(t)

	course, err := svc.Create(context.Background(), validCourse())
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.True(t, course.Active)
	assert.NotEmpty(t, course.CreatedAt)
	assert.NotNil(t, course.Modules)
	assert.NotNil(t, course.Highlights)
}

func TestCreateCourseDerivesSlugFromTitle(t *testing.T) {
	svc := newCourseService(t)

	req := validCourse()
	req.Slug = ""

	course, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "content-marketing-mastery", course.Slug)
}

func TestCreateCourseValidation(t *testing.T) {
	svc := newCourseService(t)

	req := validCourse()
	req.Title = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))
}

func TestGetBySlugOnlyActive(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCourse())
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.SetActive(ctx, created.ID, false))
	_, err = svc.GetBySlug(ctx, created.Slug)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestListActiveExcludesDeactivated(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCourse())
	require.NoError(t, err)

	second := validCourse()
	second.Title = "Email Marketing Essentials"
	second.Slug = "email-marketing-essentials"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(ctx, first.ID, false))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, other.ID, active[0].ID)
}

func TestUpdateCourse(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCourse())
	require.NoError(t, err)

	req := validCourse()
	req.Duration = "8 Weeks"
	req.Modules = []model.Module{{Title: "Strategy", Topics: []string{"Audience research"}}}

	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "8 Weeks", updated.Duration)
	require.Len(t, updated.Modules, 1)
	assert.Equal(t, "Strategy", updated.Modules[0].Title)

	_, err = svc.Update(ctx, "missing-id", req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestSetActiveMissingCourse(t *testing.T) {
	svc := newCourseService(t)

	err := svc.SetActive(context.Background(), "missing-id", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
