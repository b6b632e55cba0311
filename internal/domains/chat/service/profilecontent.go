package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	chatmodel "skillax-backend/internal/domains/chat/model"
	"skillax-backend/internal/domains/chat/provider"
	profilemodel "skillax-backend/internal/domains/profile/model"
)

// ProfileContentGenerator asks the chat provider to write the marketing
// copy for a freshly created student profile.
type ProfileContentGenerator struct {
	provider provider.Provider
}

func NewProfileContentGenerator(p provider.Provider) *ProfileContentGenerator {
	return &ProfileContentGenerator{provider: p}
}

const profileContentInstruction = `You write short marketing copy for student profile cards of a digital marketing academy. Respond with a single JSON object and nothing else, using exactly these keys: "bio" (2-3 sentences, third person), "linkedin_headline" (one line, no quotes), "course_recommendation" (one course name best suited to the student).`

func (g *ProfileContentGenerator) ProfileContent(ctx context.Context, p *profilemodel.StudentProfile) (string, string, string, error) {
	brief := fmt.Sprintf(
		"Name: %s\nLocation: %s\nEducation: %s in %s\nCareer stage: %s\nTarget role: %s\nGoals: %s\nSkills: %s\nInterests: %s\nMotivation: %s",
		p.FullName, p.Location, p.EducationLevel, p.FieldOfStudy,
		p.CareerStage, p.TargetRole, p.CareerGoals,
		strings.Join(p.CurrentSkills, ", "), strings.Join(p.Interests, ", "),
		p.WhyDigitalMarketing,
	)

	raw, err := g.provider.Complete(ctx, []chatmodel.Message{
		{Role: chatmodel.RoleSystem, Content: profileContentInstruction},
		{Role: chatmodel.RoleUser, Content: brief},
	})
	if err != nil {
		return "", "", "", err
	}

	var parsed struct {
		Bio                  string `json:"bio"`
		LinkedinHeadline     string `json:"linkedin_headline"`
		CourseRecommendation string `json:"course_recommendation"`
	}
	// Models occasionally wrap JSON in a code fence.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return "", "", "", fmt.Errorf("parse profile content: %w", err)
	}
	return parsed.Bio, parsed.LinkedinHeadline, parsed.CourseRecommendation, nil
}
