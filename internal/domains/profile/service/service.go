package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	leadmodel "skillax-backend/internal/domains/lead/model"
	"skillax-backend/internal/domains/profile/model"
	"skillax-backend/internal/domains/profile/repository"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/logger"
)

// ContentGenerator writes the short marketing copy shown on a profile
// card. Failures fall back to static copy; profile creation never depends
// on the generator being reachable.
type ContentGenerator interface {
	ProfileContent(ctx context.Context, profile *model.StudentProfile) (bio, headline, course string, err error)
}

// LeadRecorder captures the profile author as a sales lead.
type LeadRecorder interface {
	Create(ctx context.Context, req *leadmodel.CreateLeadRequest) (*leadmodel.Lead, error)
}

type Service interface {
	Create(ctx context.Context, req *model.CreateProfileRequest) (*model.StudentProfile, error)
	GetByCode(ctx context.Context, code string) (*model.StudentProfile, error)
	ListAll(ctx context.Context) ([]model.StudentProfile, error)
}

type profileService struct {
	repo      repository.Repository
	generator ContentGenerator
	leads     LeadRecorder
}

// NewService builds the profile service. generator and leads may be nil;
// both are best-effort collaborators.
func NewService(repo repository.Repository, generator ContentGenerator, leads LeadRecorder) Service {
	return &profileService{repo: repo, generator: generator, leads: leads}
}

func (s *profileService) Create(ctx context.Context, req *model.CreateProfileRequest) (*model.StudentProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: profile with this email already exists", errs.ErrValidationFailed)
	}

	profile := &model.StudentProfile{
		ID:                     uuid.NewString(),
		ProfileCode:            newProfileCode(),
		FullName:               req.FullName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Location:               req.Location,
		LinkedinURL:            req.LinkedinURL,
		PortfolioURL:           req.PortfolioURL,
		EducationLevel:         req.EducationLevel,
		FieldOfStudy:           req.FieldOfStudy,
		Institution:            req.Institution,
		GraduationYear:         req.GraduationYear,
		CareerStage:            req.CareerStage,
		CurrentRole:            req.CurrentRole,
		TargetRole:             req.TargetRole,
		CareerGoals:            req.CareerGoals,
		CurrentSkills:          req.CurrentSkills,
		Interests:              req.Interests,
		PreferredLearningStyle: req.PreferredLearningStyle,
		WhyDigitalMarketing:    req.WhyDigitalMarketing,
		Availability:           req.Availability,
		IsPublic:               true,
		ProfileViews:           0,
		CreatedAt:              utils.NowUTC(),
	}
	if profile.CurrentSkills == nil {
		profile.CurrentSkills = []string{}
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	s.fillGeneratedContent(ctx, profile)

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.recordLead(ctx, profile)
	return profile, nil
}

func (s *profileService) fillGeneratedContent(ctx context.Context, profile *model.StudentProfile) {
	profile.AIBio = defaultBio(profile)
	profile.AILinkedinHeadline = defaultHeadline(profile)
	profile.AICourseRecommendation = "Professional Digital Marketing"

	if s.generator == nil {
		return
	}
	bio, headline, course, err := s.generator.ProfileContent(ctx, profile)
	if err != nil {
		logger.Warn("profile content generation failed, using defaults", err)
		return
	}
	if bio != "" {
		profile.AIBio = bio
	}
	if headline != "" {
		profile.AILinkedinHeadline = headline
	}
	if course != "" {
		profile.AICourseRecommendation = course
	}
}

func (s *profileService) recordLead(ctx context.Context, profile *model.StudentProfile) {
	if s.leads == nil {
		return
	}
	_, err := s.leads.Create(ctx, &leadmodel.CreateLeadRequest{
		Name:     profile.FullName,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Interest: profile.TargetRole,
		Source:   leadmodel.SourceProfileCreator,
	})
	if err != nil {
		logger.Warn("failed to record profile lead", err)
	}
}

func (s *profileService) GetByCode(ctx context.Context, code string) (*model.StudentProfile, error) {
	profile, err := s.repo.FindPublicByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile not found", errs.ErrNotFound)
	}

	// Read-then-write view counting is last-write-wins under concurrency,
	// which is fine for a vanity counter.
	profile.ProfileViews++
	if err := s.repo.SetViews(ctx, profile.ID, profile.ProfileViews); err != nil {
		logger.Warn("failed to bump profile views", err)
	}
	return profile, nil
}

func (s *profileService) ListAll(ctx context.Context) ([]model.StudentProfile, error) {
	return s.repo.ListAll(ctx)
}

func newProfileCode() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// math/rand quality is acceptable for a vanity code, but rand.Read
		// on supported platforms does not fail; fall back to uuid bytes.
		id := uuid.New()
		copy(buf, id[:3])
	}
	return model.CodePrefix + strings.ToUpper(hex.EncodeToString(buf))
}

func defaultBio(p *model.StudentProfile) string {
	return fmt.Sprintf("%s is an aspiring %s based in %s, passionate about building a career in digital marketing.",
		p.FullName, strings.ToLower(p.TargetRole), nonEmpty(p.Location, "Kerala"))
}

func defaultHeadline(p *model.StudentProfile) string {
	return fmt.Sprintf("Aspiring %s | Digital Marketing Enthusiast", p.TargetRole)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
