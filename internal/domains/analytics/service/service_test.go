package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/internal/domains/analytics/model"
	infra "skillax-backend/internal/infrastructure/docstore"
)

// fixedNow pins the analytics clock so trend windows are deterministic.
var fixedNow = time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (Service, *infra.MemoryStore) {
	t.Helper()
	store := infra.NewMemoryStore()
	svc := NewServiceWithClock(store, func() time.Time { return fixedNow })
	return svc, store
}

func insert(t *testing.T, store *infra.MemoryStore, collection string, docs ...map[string]any) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, store.Insert(context.Background(), collection, doc))
	}
}

func TestSummaryEmptyStore(t *testing.T) {
	svc, _ := newFixture(t)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.Summary{}, got)
}

func TestSummaryCounts(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "leads",
		map[string]any{"id": "l1", "source": "website", "status": "new"},
		map[string]any{"id": "l2", "source": "contact_form", "status": "contacted"},
		map[string]any{"id": "l3", "source": "chatbot", "status": "new"},
		map[string]any{"id": "l4", "source": "profile_creator", "status": "converted"},
	)
	insert(t, store, "courses",
		map[string]any{"id": "c1", "active": true},
		map[string]any{"id": "c2", "active": false},
	)
	insert(t, store, "blogs",
		map[string]any{"id": "b1", "published": true},
		map[string]any{"id": "b2", "published": false},
	)
	insert(t, store, "page_views",
		map[string]any{"id": "v1", "session_id": "s1"},
		map[string]any{"id": "v2", "session_id": "s1"},
		map[string]any{"id": "v3", "session_id": "s2"},
	)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.Summary{
		TotalLeads:     4,
		NewLeads:       2,
		WebsiteLeads:   2,
		ChatbotLeads:   1,
		TotalCourses:   1,
		TotalBlogs:     1,
		TotalPageViews: 3,
		UniqueVisitors: 2,
	}, got)
}

func TestSummaryIsIdempotent(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "leads", map[string]any{"id": "l1", "source": "website", "status": "new"})

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	second, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLeadsBySourceOrdering(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "leads",
		map[string]any{"id": "l1", "source": "website"},
		map[string]any{"id": "l2", "source": "website"},
		map[string]any{"id": "l3", "source": "chatbot"},
	)

	got, err := svc.LeadsBySource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.SourceCount{
		{Source: "website", Count: 2},
		{Source: "chatbot", Count: 1},
	}, got)
}

func TestLeadConversion(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "leads",
		map[string]any{"id": "l1", "status": "new", "created_at": "2025-01-01T08:00:00Z"},
		map[string]any{"id": "l2", "status": "contacted", "created_at": "2025-01-01T12:00:00Z"},
		map[string]any{"id": "l3", "status": "converted", "created_at": "2025-01-02T09:00:00Z"},
		map[string]any{"id": "l4", "status": "lost", "created_at": "2025-01-02T10:00:00Z"},
	)

	got, err := svc.LeadConversion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.TotalLeads)
	assert.Equal(t, int64(1), got.ConvertedLeads)
	// Pending covers only new+contacted; "lost" is outside both buckets.
	assert.Equal(t, int64(2), got.PendingLeads)
	assert.InDelta(t, 25.0, got.ConversionRate, 0.001)

	// Full breakdown still includes every status.
	assert.Len(t, got.LeadsByStatus, 4)

	assert.Equal(t, []model.DayCount{
		{Date: "2025-01-01", Count: 2},
		{Date: "2025-01-02", Count: 2},
	}, got.LeadsTrend)
}

func TestLeadConversionEmpty(t *testing.T) {
	svc, _ := newFixture(t)

	got, err := svc.LeadConversion(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.TotalLeads)
	assert.Zero(t, got.ConversionRate)
	assert.Empty(t, got.LeadsByStatus)
	assert.Empty(t, got.LeadsTrend)
}

func TestConversionRateRounding(t *testing.T) {
	assert.Equal(t, 0.0, conversionRate(0, 0))
	assert.Equal(t, 50.0, conversionRate(1, 2))
	assert.Equal(t, 33.3, conversionRate(1, 3))
	assert.Equal(t, 66.7, conversionRate(2, 3))
	assert.Equal(t, 100.0, conversionRate(3, 3))
}

func TestLeadTrendExcludesOldLeads(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "leads",
		map[string]any{"id": "old", "status": "new", "created_at": "2024-11-01T08:00:00Z"},
		map[string]any{"id": "new", "status": "new", "created_at": "2025-01-02T08:00:00Z"},
	)

	got, err := svc.LeadConversion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{{Date: "2025-01-02", Count: 1}}, got.LeadsTrend)
}

func TestPageViewsTrend(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "page_views",
		map[string]any{"id": "v1", "timestamp": "2025-01-01T08:00:00Z"},
		map[string]any{"id": "v2", "timestamp": "2025-01-01T09:00:00Z"},
		map[string]any{"id": "v3", "timestamp": "2025-01-02T10:00:00Z"},
		map[string]any{"id": "v4", "timestamp": "2024-06-01T10:00:00Z"},
	)

	got, err := svc.PageViews(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []model.PageViewDay{
		{Date: "2025-01-01", Views: 2},
		{Date: "2025-01-02", Views: 1},
	}, got)
}

func TestPageViewsDaysClamping(t *testing.T) {
	svc, store := newFixture(t)
	// One view well outside 90 days, one inside.
	insert(t, store, "page_views",
		map[string]any{"id": "v1", "timestamp": "2024-01-01T08:00:00Z"},
		map[string]any{"id": "v2", "timestamp": "2024-12-01T08:00:00Z"},
	)

	// 10000 clamps to 90 days: only the December view is in range.
	got, err := svc.PageViews(context.Background(), 10000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-12-01", got[0].Date)

	// Zero and negative fall back to the 7-day default.
	got, err = svc.PageViews(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	got, err = svc.PageViews(context.Background(), -3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopPagesLimit(t *testing.T) {
	svc, store := newFixture(t)
	paths := []string{"/a", "/b", "/c", "/d", "/e", "/f", "/g", "/h", "/i", "/j", "/k"}
	for i, p := range paths {
		for j := 0; j <= i; j++ {
			insert(t, store, "page_views", map[string]any{"path": p})
		}
	}

	got, err := svc.TopPages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, model.PageCount{Path: "/k", Views: 11}, got[0])
	// "/a" with a single view falls off the top-10 cut.
	for _, row := range got {
		assert.NotEqual(t, "/a", row.Path)
	}
}

func TestVisitorsByCountryDropsEmpty(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "page_views",
		map[string]any{"id": "v1", "country": "India"},
		map[string]any{"id": "v2", "country": "India"},
		map[string]any{"id": "v3", "country": "UAE"},
		map[string]any{"id": "v4", "country": ""},
		map[string]any{"id": "v5"},
	)

	got, err := svc.VisitorsByCountry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.CountryCount{
		{Country: "India", Count: 2},
		{Country: "UAE", Count: 1},
	}, got)
}

func TestProfileStats(t *testing.T) {
	svc, store := newFixture(t)
	insert(t, store, "profiles",
		map[string]any{"id": "p1", "career_stage": "fresher", "education_level": "bachelors", "target_role": "SEO Specialist", "created_at": "2025-01-01T08:00:00Z"},
		map[string]any{"id": "p2", "career_stage": "fresher", "education_level": "masters", "target_role": "SEO Specialist", "created_at": "2025-01-02T08:00:00Z"},
		map[string]any{"id": "p3", "career_stage": "professional", "education_level": "bachelors", "target_role": "Content Strategist", "created_at": "2025-01-03T08:00:00Z"},
	)

	got, err := svc.Profiles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.TotalProfiles)
	assert.Equal(t, []model.KeyCount{
		{Key: "fresher", Count: 2},
		{Key: "professional", Count: 1},
	}, got.ByCareerStage)
	assert.Equal(t, []model.KeyCount{
		{Key: "SEO Specialist", Count: 2},
		{Key: "Content Strategist", Count: 1},
	}, got.TopTargetRoles)
	require.Len(t, got.RecentProfiles, 3)
	assert.Equal(t, "p3", got.RecentProfiles[0]["id"])
}
