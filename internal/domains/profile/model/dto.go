package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateProfileRequest is the profile creator form payload.
type CreateProfileRequest struct {
	FullName               string   `json:"full_name"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	Location               string   `json:"location"`
	LinkedinURL            string   `json:"linkedin_url"`
	PortfolioURL           string   `json:"portfolio_url"`
	EducationLevel         string   `json:"education_level"`
	FieldOfStudy           string   `json:"field_of_study"`
	Institution            string   `json:"institution"`
	GraduationYear         string   `json:"graduation_year"`
	CareerStage            string   `json:"career_stage"`
	CurrentRole            string   `json:"current_role"`
	TargetRole             string   `json:"target_role"`
	CareerGoals            string   `json:"career_goals"`
	CurrentSkills          []string `json:"current_skills"`
	Interests              []string `json:"interests"`
	PreferredLearningStyle string   `json:"preferred_learning_style"`
	WhyDigitalMarketing    string   `json:"why_digital_marketing"`
	Availability           string   `json:"availability"`
}

func (r CreateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full_name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone, validation.Required.Error("phone is required")),
		validation.Field(&r.EducationLevel, validation.Required.Error("education_level is required")),
		validation.Field(&r.CareerStage, validation.Required.Error("career_stage is required")),
		validation.Field(&r.TargetRole, validation.Required.Error("target_role is required")),
	)
}
