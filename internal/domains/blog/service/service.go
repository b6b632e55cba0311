package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skillax-backend/internal/domains/blog/model"
	"skillax-backend/internal/domains/blog/repository"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

type Service interface {
	ListPublished(ctx context.Context, filter model.ListFilter) ([]model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	ListAll(ctx context.Context) ([]model.BlogPost, error)
	Create(ctx context.Context, req *model.UpsertBlogRequest) (*model.BlogPost, error)
	Update(ctx context.Context, id string, req *model.UpsertBlogRequest) (*model.BlogPost, error)
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublished(ctx context.Context, filter model.ListFilter) ([]model.BlogPost, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.ListPublished(ctx, filter)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("%w: blog post not found", errs.ErrNotFound)
	}
	return post, nil
}

func (s *blogService) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	return s.repo.ListAll(ctx)
}

func (s *blogService) Create(ctx context.Context, req *model.UpsertBlogRequest) (*model.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Title)
	}

	exists, err := s.repo.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: a blog post with this slug already exists", errs.ErrValidationFailed)
	}

	now := utils.NowUTC()
	post := &model.BlogPost{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Tags:          req.Tags,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Published:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Update(ctx context.Context, id string, req *model.UpsertBlogRequest) (*model.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Title)
	}
	author := req.Author
	if author == "" {
		author = model.DefaultAuthor
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	patch := map[string]any{
		"title":          req.Title,
		"slug":           req.Slug,
		"excerpt":        req.Excerpt,
		"content":        req.Content,
		"category":       req.Category,
		"tags":           tags,
		"author":         author,
		"featured_image": req.FeaturedImage,
		"updated_at":     utils.NowUTC(),
	}
	matched, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: blog post %s", errs.ErrNotFound, id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *blogService) SetPublished(ctx context.Context, id string, published bool) error {
	matched, err := s.repo.Update(ctx, id, map[string]any{
		"published":  published,
		"updated_at": utils.NowUTC(),
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: blog post %s", errs.ErrNotFound, id)
	}
	return nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: blog post %s", errs.ErrNotFound, id)
	}
	return nil
}
