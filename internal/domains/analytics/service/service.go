package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"skillax-backend/internal/domains/analytics/model"
	blogmodel "skillax-backend/internal/domains/blog/model"
	coursemodel "skillax-backend/internal/domains/course/model"
	leadmodel "skillax-backend/internal/domains/lead/model"
	profilemodel "skillax-backend/internal/domains/profile/model"
	trackingmodel "skillax-backend/internal/domains/tracking/model"
	"skillax-backend/pkg/docstore"
)

const (
	defaultTrendDays = 7
	maxTrendDays     = 90
	topPagesLimit    = 10
	topRolesLimit    = 5
	recentProfiles   = 5
)

// Service computes dashboard reports. Every method is a pure read over the
// document store; nothing here caches, so each call re-scans its
// collections.
type Service interface {
	Summary(ctx context.Context) (*model.Summary, error)
	LeadsBySource(ctx context.Context) ([]model.SourceCount, error)
	LeadsByInterest(ctx context.Context) ([]model.InterestCount, error)
	LeadConversion(ctx context.Context) (*model.ConversionStats, error)
	PageViews(ctx context.Context, days int) ([]model.PageViewDay, error)
	TopPages(ctx context.Context) ([]model.PageCount, error)
	VisitorsByCountry(ctx context.Context) ([]model.CountryCount, error)
	Profiles(ctx context.Context) (*model.ProfileStats, error)
}

type analyticsService struct {
	store docstore.Store
	now   func() time.Time
}

func NewService(store docstore.Store) Service {
	return &analyticsService{store: store, now: time.Now}
}

// NewServiceWithClock pins the clock, for deterministic trend windows.
func NewServiceWithClock(store docstore.Store, now func() time.Time) Service {
	return &analyticsService{store: store, now: now}
}

func (s *analyticsService) Summary(ctx context.Context) (*model.Summary, error) {
	out := &model.Summary{}
	counts := []struct {
		dest       *int64
		collection string
		filter     docstore.Filter
	}{
		{&out.TotalLeads, leadmodel.Collection, docstore.Filter{}},
		{&out.NewLeads, leadmodel.Collection, docstore.Filter{"status": leadmodel.StatusNew}},
		{&out.WebsiteLeads, leadmodel.Collection, docstore.Filter{
			"source": docstore.In{leadmodel.SourceWebsite, leadmodel.SourceContactForm},
		}},
		{&out.ChatbotLeads, leadmodel.Collection, docstore.Filter{"source": leadmodel.SourceChatbot}},
		{&out.TotalCourses, coursemodel.Collection, docstore.Filter{"active": true}},
		{&out.TotalBlogs, blogmodel.Collection, docstore.Filter{"published": true}},
		{&out.TotalPageViews, trackingmodel.Collection, docstore.Filter{}},
	}
	for _, c := range counts {
		n, err := s.store.Count(ctx, c.collection, c.filter)
		if err != nil {
			return nil, fmt.Errorf("analytics summary: %w", err)
		}
		*c.dest = n
	}

	sessions, err := s.store.Distinct(ctx, trackingmodel.Collection, "session_id")
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}
	out.UniqueVisitors = int64(len(sessions))
	return out, nil
}

func (s *analyticsService) LeadsBySource(ctx context.Context) ([]model.SourceCount, error) {
	rows, err := s.store.Aggregate(ctx, leadmodel.Collection, docstore.Pipeline{
		GroupBy:         "source",
		SortByCountDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("leads by source: %w", err)
	}
	out := make([]model.SourceCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.SourceCount{Source: row.Key, Count: row.Count})
	}
	return out, nil
}

func (s *analyticsService) LeadsByInterest(ctx context.Context) ([]model.InterestCount, error) {
	rows, err := s.store.Aggregate(ctx, leadmodel.Collection, docstore.Pipeline{
		GroupBy:         "interest",
		SortByCountDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("leads by interest: %w", err)
	}
	out := make([]model.InterestCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.InterestCount{Interest: row.Key, Count: row.Count})
	}
	return out, nil
}

func (s *analyticsService) LeadConversion(ctx context.Context) (*model.ConversionStats, error) {
	total, err := s.store.Count(ctx, leadmodel.Collection, docstore.Filter{})
	if err != nil {
		return nil, fmt.Errorf("lead conversion: %w", err)
	}
	converted, err := s.store.Count(ctx, leadmodel.Collection,
		docstore.Filter{"status": leadmodel.StatusConverted})
	if err != nil {
		return nil, fmt.Errorf("lead conversion: %w", err)
	}
	pending, err := s.store.Count(ctx, leadmodel.Collection, docstore.Filter{
		"status": docstore.In{leadmodel.StatusNew, leadmodel.StatusContacted},
	})
	if err != nil {
		return nil, fmt.Errorf("lead conversion: %w", err)
	}

	byStatus, err := s.store.Aggregate(ctx, leadmodel.Collection, docstore.Pipeline{
		GroupBy:         "status",
		SortByCountDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("lead conversion: %w", err)
	}
	statuses := make([]model.StatusCount, 0, len(byStatus))
	for _, row := range byStatus {
		statuses = append(statuses, model.StatusCount{Status: row.Key, Count: row.Count})
	}

	trendRows, err := s.store.Aggregate(ctx, leadmodel.Collection, docstore.Pipeline{
		Match:      docstore.Filter{"created_at": s.cutoff(defaultTrendDays)},
		GroupBy:    "created_at",
		DateBucket: true,
	})
	if err != nil {
		return nil, fmt.Errorf("lead conversion: %w", err)
	}
	trend := make([]model.DayCount, 0, len(trendRows))
	for _, row := range trendRows {
		trend = append(trend, model.DayCount{Date: row.Key, Count: row.Count})
	}

	return &model.ConversionStats{
		TotalLeads:     total,
		ConvertedLeads: converted,
		PendingLeads:   pending,
		ConversionRate: conversionRate(converted, total),
		LeadsByStatus:  statuses,
		LeadsTrend:     trend,
	}, nil
}

func (s *analyticsService) PageViews(ctx context.Context, days int) ([]model.PageViewDay, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	rows, err := s.store.Aggregate(ctx, trackingmodel.Collection, docstore.Pipeline{
		Match:      docstore.Filter{"timestamp": s.cutoff(days)},
		GroupBy:    "timestamp",
		DateBucket: true,
	})
	if err != nil {
		return nil, fmt.Errorf("page views trend: %w", err)
	}
	out := make([]model.PageViewDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.PageViewDay{Date: row.Key, Views: row.Count})
	}
	return out, nil
}

func (s *analyticsService) TopPages(ctx context.Context) ([]model.PageCount, error) {
	rows, err := s.store.Aggregate(ctx, trackingmodel.Collection, docstore.Pipeline{
		GroupBy:         "path",
		SortByCountDesc: true,
		Limit:           topPagesLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	out := make([]model.PageCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.PageCount{Path: row.Key, Views: row.Count})
	}
	return out, nil
}

func (s *analyticsService) VisitorsByCountry(ctx context.Context) ([]model.CountryCount, error) {
	rows, err := s.store.Aggregate(ctx, trackingmodel.Collection, docstore.Pipeline{
		GroupBy:         "country",
		DropEmptyKeys:   true,
		SortByCountDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("visitors by country: %w", err)
	}
	out := make([]model.CountryCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CountryCount{Country: row.Key, Count: row.Count})
	}
	return out, nil
}

func (s *analyticsService) Profiles(ctx context.Context) (*model.ProfileStats, error) {
	total, err := s.store.Count(ctx, profilemodel.Collection, docstore.Filter{})
	if err != nil {
		return nil, fmt.Errorf("profile analytics: %w", err)
	}

	byStage, err := s.groupProfiles(ctx, "career_stage", 0)
	if err != nil {
		return nil, err
	}
	byEducation, err := s.groupProfiles(ctx, "education_level", 0)
	if err != nil {
		return nil, err
	}
	topRoles, err := s.groupProfiles(ctx, "target_role", topRolesLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.store.FindMany(ctx, profilemodel.Collection, docstore.Filter{},
		docstore.FindOptions{SortField: "created_at", SortDesc: true, Limit: recentProfiles})
	if err != nil {
		return nil, fmt.Errorf("profile analytics: %w", err)
	}
	if recent == nil {
		recent = []map[string]any{}
	}

	return &model.ProfileStats{
		TotalProfiles:  total,
		ByCareerStage:  byStage,
		ByEducation:    byEducation,
		TopTargetRoles: topRoles,
		RecentProfiles: recent,
	}, nil
}

func (s *analyticsService) groupProfiles(ctx context.Context, field string, limit int) ([]model.KeyCount, error) {
	rows, err := s.store.Aggregate(ctx, profilemodel.Collection, docstore.Pipeline{
		GroupBy:         field,
		DropEmptyKeys:   true,
		SortByCountDesc: true,
		Limit:           limit,
	})
	if err != nil {
		return nil, fmt.Errorf("profile analytics: group by %s: %w", field, err)
	}
	out := make([]model.KeyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.KeyCount{Key: row.Key, Count: row.Count})
	}
	return out, nil
}

// cutoff returns a >= predicate for timestamps within the last n days.
func (s *analyticsService) cutoff(n int) docstore.Gte {
	t := s.now().UTC().AddDate(0, 0, -n)
	return docstore.Gte(t.Format(time.RFC3339))
}

func conversionRate(converted, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(converted)/float64(total)*1000) / 10
}
