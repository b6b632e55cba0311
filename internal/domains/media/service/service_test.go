package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/shared/errs"
)

type recordingUploader struct {
	key         string
	contentType string
	size        int
	err         error
}

func (u *recordingUploader) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	u.key = key
	u.contentType = contentType
	u.size = len(data)
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/" + key, nil
}

func TestUploadImage(t *testing.T) {
	uploader := &recordingUploader{}
	svc := NewService(uploader)

	url, err := svc.UploadImage(context.Background(), "photo.png", "image/png", []byte("fake-png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uploader.key, "uploads/"))
	assert.True(t, strings.HasSuffix(uploader.key, ".png"))
	assert.Equal(t, "image/png", uploader.contentType)
	assert.Equal(t, "https://cdn.example.com/"+uploader.key, url)
}

func TestUploadImageRejections(t *testing.T) {
	svc := NewService(&recordingUploader{})
	ctx := context.Background()

	cases := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
	}{
		{"empty file", "a.png", "image/png", nil},
		{"oversize file", "a.png", "image/png", make([]byte, MaxUploadSize+1)},
		{"pdf", "a.pdf", "application/pdf", []byte("x")},
		{"svg", "a.svg", "image/svg+xml", []byte("x")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadImage(ctx, tc.filename, tc.contentType, tc.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValidationFailed))
		})
	}
}

func TestUploadImageWithoutStorage(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.UploadImage(context.Background(), "a.png", "image/png", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUpstreamUnavailable))
}

func TestUploadImageStorageFailure(t *testing.T) {
	svc := NewService(&recordingUploader{err: errors.New("bucket offline")})

	_, err := svc.UploadImage(context.Background(), "a.png", "image/png", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUpstreamUnavailable))
}

func TestUploadedKeysAreUnique(t *testing.T) {
	uploader := &recordingUploader{}
	svc := NewService(uploader)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "a.jpg", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	first := uploader.key

	_, err = svc.UploadImage(ctx, "a.jpg", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, first, uploader.key)
}
