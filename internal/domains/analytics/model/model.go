package model

// Summary is the dashboard headline block.
type Summary struct {
	TotalLeads     int64 `json:"total_leads"`
	NewLeads       int64 `json:"new_leads"`
	WebsiteLeads   int64 `json:"website_leads"`
	ChatbotLeads   int64 `json:"chatbot_leads"`
	TotalCourses   int64 `json:"total_courses"`
	TotalBlogs     int64 `json:"total_blogs"`
	TotalPageViews int64 `json:"total_page_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

// SourceCount is one row of the leads-by-source breakdown.
type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// InterestCount is one row of the leads-by-interest breakdown.
type InterestCount struct {
	Interest string `json:"interest"`
	Count    int64  `json:"count"`
}

// StatusCount is one row of the leads-by-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DayCount is one day bucket of a trend series.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// PageViewDay is one day bucket of the page-view trend.
type PageViewDay struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// PageCount is one row of the top-pages breakdown.
type PageCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// CountryCount is one row of the visitors-by-country breakdown.
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// ConversionStats is the lead funnel report.
type ConversionStats struct {
	TotalLeads     int64         `json:"total_leads"`
	ConvertedLeads int64         `json:"converted_leads"`
	PendingLeads   int64         `json:"pending_leads"`
	ConversionRate float64       `json:"conversion_rate"`
	LeadsByStatus  []StatusCount `json:"leads_by_status"`
	LeadsTrend     []DayCount    `json:"leads_trend"`
}

// ProfileStats is the student-profile report.
type ProfileStats struct {
	TotalProfiles  int64            `json:"total_profiles"`
	ByCareerStage  []KeyCount       `json:"by_career_stage"`
	ByEducation    []KeyCount       `json:"by_education"`
	TopTargetRoles []KeyCount       `json:"top_target_roles"`
	RecentProfiles []map[string]any `json:"recent_profiles"`
}

// KeyCount is a generic grouped-count row.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}
