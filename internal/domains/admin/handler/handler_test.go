package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/domains/admin/model"
	"skillax-backend/internal/domains/admin/service"
)

type fakeAdminService struct {
	seedCalled bool
}

func (s *fakeAdminService) Login(_ context.Context, _ *model.LoginRequest) (*model.LoginResponse, error) {
	return nil, nil
}

func (s *fakeAdminService) Me(_ context.Context, _ string) (*model.PublicUser, error) {
	return nil, nil
}

func (s *fakeAdminService) Seed(_ context.Context) error {
	s.seedCalled = true
	return nil
}

func TestSeedResponseReportsSeededAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeAdminService{}
	router := gin.New()
	router.POST("/api/seed", NewHandler(svc).Seed)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.seedCalled)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Data seeded successfully", body["message"])
	assert.Equal(t, service.SeedAdminEmail, body["admin_email"])
	// The seed password must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "password")
}