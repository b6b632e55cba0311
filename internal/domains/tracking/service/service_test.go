package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/domains/tracking/model"
	infra "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/shared/errs"
)

func TestTrackStoresPageView(t *testing.T) {
	store := infra.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	view, err := svc.Track(ctx, &model.TrackRequest{
		Path:      "/courses",
		Referrer:  "https://google.com",
		UserAgent: "Mozilla/5.0",
		SessionID: "s1",
	}, "203.0.113.9")
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.NotEmpty(t, view.Timestamp)
	assert.Equal(t, "203.0.113.9", view.IPAddress)

	count, err := store.Count(ctx, model.Collection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestTrackValidation(t *testing.T) {
	svc := NewService(infra.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Track(ctx, &model.TrackRequest{SessionID: "s1"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))

	_, err = svc.Track(ctx, &model.TrackRequest{Path: "/"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))
}
