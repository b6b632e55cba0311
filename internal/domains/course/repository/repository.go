package repository

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/course/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Repository interface {
	Create(ctx context.Context, course *model.Course) error
	ListActive(ctx context.Context) ([]model.Course, error)
	FindActiveBySlug(ctx context.Context, slug string) (*model.Course, error)
	FindByID(ctx context.Context, id string) (*model.Course, error)
	Update(ctx context.Context, id string, patch map[string]any) (int64, error)
	DeleteAll(ctx context.Context) error
	CountActive(ctx context.Context) (int64, error)
}

type docRepo struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) Create(ctx context.Context, course *model.Course) error {
	doc, err := utils.ToDoc(course)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, model.Collection, doc); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *docRepo) ListActive(ctx context.Context) ([]model.Course, error) {
	docs, err := r.store.FindMany(ctx, model.Collection,
		docstore.Filter{"active": true},
		docstore.FindOptions{SortField: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses := make([]model.Course, 0, len(docs))
	for _, doc := range docs {
		var course model.Course
		if err := utils.FromDoc(doc, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *docRepo) FindActiveBySlug(ctx context.Context, slug string) (*model.Course, error) {
	return r.findOne(ctx, docstore.Filter{"slug": slug, "active": true})
}

func (r *docRepo) FindByID(ctx context.Context, id string) (*model.Course, error) {
	return r.findOne(ctx, docstore.Filter{"id": id})
}

func (r *docRepo) findOne(ctx context.Context, filter docstore.Filter) (*model.Course, error) {
	doc, err := r.store.FindOne(ctx, model.Collection, filter)
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	var course model.Course
	if err := utils.FromDoc(doc, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *docRepo) Update(ctx context.Context, id string, patch map[string]any) (int64, error) {
	matched, err := r.store.UpdateOne(ctx, model.Collection, docstore.Filter{"id": id}, patch)
	if err != nil {
		return 0, fmt.Errorf("update course: %w", err)
	}
	return matched, nil
}

func (r *docRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.store.DeleteMany(ctx, model.Collection, docstore.Filter{}); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}
	return nil
}

func (r *docRepo) CountActive(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, model.Collection, docstore.Filter{"active": true})
}
