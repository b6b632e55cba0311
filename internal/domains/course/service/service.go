package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skillax-backend/internal/domains/course/model"
	"skillax-backend/internal/domains/course/repository"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
)

type Service interface {
	ListActive(ctx context.Context) ([]model.Course, error)
	GetBySlug(ctx context.Context, slug string) (*model.Course, error)
	Create(ctx context.Context, req *model.UpsertCourseRequest) (*model.Course, error)
	Update(ctx context.Context, id string, req *model.UpsertCourseRequest) (*model.Course, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type courseService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &courseService{repo: repo}
}

func (s *courseService) ListActive(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListActive(ctx)
}

func (s *courseService) GetBySlug(ctx context.Context, slug string) (*model.Course, error) {
	course, err := s.repo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course not found", errs.ErrNotFound)
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, req *model.UpsertCourseRequest) (*model.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Title)
	}

	course := &model.Course{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Duration:         req.Duration,
		Modules:          req.Modules,
		Highlights:       req.Highlights,
		Certification:    req.Certification,
		Price:            req.Price,
		FeaturedImage:    req.FeaturedImage,
		Active:           true,
		CreatedAt:        utils.NowUTC(),
	}
	if course.Modules == nil {
		course.Modules = []model.Module{}
	}
	if course.Highlights == nil {
		course.Highlights = []string{}
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id string, req *model.UpsertCourseRequest) (*model.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Title)
	}
	modules := req.Modules
	if modules == nil {
		modules = []model.Module{}
	}
	highlights := req.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	patch := map[string]any{
		"title":             req.Title,
		"slug":              req.Slug,
		"short_description": req.ShortDescription,
		"description":       req.Description,
		"duration":          req.Duration,
		"modules":           modules,
		"highlights":        highlights,
		"certification":     req.Certification,
		"price":             req.Price,
		"featured_image":    req.FeaturedImage,
	}
	matched, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: course %s", errs.ErrNotFound, id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *courseService) SetActive(ctx context.Context, id string, active bool) error {
	matched, err := s.repo.Update(ctx, id, map[string]any{"active": active})
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: course %s", errs.ErrNotFound, id)
	}
	return nil
}
