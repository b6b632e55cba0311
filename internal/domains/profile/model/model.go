package model

// Collection is the student profiles document collection.
const Collection = "profiles"

// CodePrefix starts every shareable profile code.
const CodePrefix = "SKX"

// StudentProfile is a public career card built by the profile creator.
// ProfileCode is the shareable lookup key; email must be unique.
type StudentProfile struct {
	ID          string `json:"id"`
	ProfileCode string `json:"profile_code"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`

	LinkedinURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`

	EducationLevel string `json:"education_level"`
	FieldOfStudy   string `json:"field_of_study"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`

	CareerStage string `json:"career_stage"`
	CurrentRole string `json:"current_role,omitempty"`
	TargetRole  string `json:"target_role"`
	CareerGoals string `json:"career_goals"`

	CurrentSkills          []string `json:"current_skills"`
	Interests              []string `json:"interests"`
	PreferredLearningStyle string   `json:"preferred_learning_style"`
	WhyDigitalMarketing    string   `json:"why_digital_marketing"`
	Availability           string   `json:"availability"`

	AIBio                  string `json:"ai_bio"`
	AILinkedinHeadline     string `json:"ai_linkedin_headline"`
	AICourseRecommendation string `json:"ai_course_recommendation"`

	IsPublic     bool   `json:"is_public"`
	ProfileViews int64  `json:"profile_views"`
	CreatedAt    string `json:"created_at"`
}
