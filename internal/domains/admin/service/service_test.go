package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/domains/admin/model"
	"skillax-backend/internal/domains/admin/repository"
	blogmodel "skillax-backend/internal/domains/blog/model"
	blogrepo "skillax-backend/internal/domains/blog/repository"
	coursemodel "skillax-backend/internal/domains/course/model"
	courserepo "skillax-backend/internal/domains/course/repository"
	infra "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/pkg/docstore"
	"skillax-backend/pkg/jwt"
)

type adminFixture struct {
	svc     Service
	store   docstore.Store
	blogs   blogrepo.Repository
	courses courserepo.Repository
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	store := infra.NewMemoryStore()
	blogs := blogrepo.NewRepository(store)
	courses := courserepo.NewRepository(store)
	svc := NewService(repository.NewRepository(store), courses, blogs, jwt.NewManager("test-secret"))
	return &adminFixture{svc: svc, store: store, blogs: blogs, courses: courses}
}

func TestSeedAndLogin(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Seed(ctx))

	resp, err := f.svc.Login(ctx, &model.LoginRequest{
		Email:    SeedAdminEmail,
		Password: seedAdminPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, SeedAdminEmail, resp.User.Email)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Seed(ctx))

	_, wrongPassword := f.svc.Login(ctx, &model.LoginRequest{
		Email:    SeedAdminEmail,
		Password: "not-the-password",
	})
	_, unknownEmail := f.svc.Login(ctx, &model.LoginRequest{
		Email:    "nobody@skillax.in",
		Password: "whatever",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, errors.Is(wrongPassword, errs.ErrInvalidCredential))
	assert.True(t, errors.Is(unknownEmail, errs.ErrInvalidCredential))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginValidation(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.svc.Login(context.Background(), &model.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))
}

func TestSeedIsIdempotent(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Seed(ctx))
	require.NoError(t, f.svc.Seed(ctx))

	admins, err := f.store.Count(ctx, model.Collection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)

	courses, err := f.courses.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, courses)

	blogs, err := f.blogs.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, blogs)
}

func TestSeedReplacesEditedCourses(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Seed(ctx))

	// An extra course does not survive a reseed; the flagship set is
	// authoritative.
	require.NoError(t, f.courses.Create(ctx, &coursemodel.Course{
		ID:     "extra",
		Title:  "Extra Course",
		Slug:   "extra-course",
		Active: true,
	}))

	require.NoError(t, f.svc.Seed(ctx))
	count, err := f.courses.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSeedKeepsExistingBlogs(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, f.blogs.Create(ctx, &blogmodel.BlogPost{
		ID:        "b1",
		Title:     "Existing Post",
		Slug:      "existing-post",
		Published: true,
	}))

	require.NoError(t, f.svc.Seed(ctx))
	count, err := f.blogs.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMe(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Seed(ctx))

	user, err := f.svc.Me(ctx, SeedAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, SeedAdminEmail, user.Email)

	_, err = f.svc.Me(ctx, "ghost@skillax.in")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
