package repository

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/profile/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Repository interface {
	Create(ctx context.Context, profile *model.StudentProfile) error
	FindPublicByCode(ctx context.Context, code string) (*model.StudentProfile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context) ([]model.StudentProfile, error)
	SetViews(ctx context.Context, id string, views int64) error
}

type docRepo struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) Create(ctx context.Context, profile *model.StudentProfile) error {
	doc, err := utils.ToDoc(profile)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, model.Collection, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *docRepo) FindPublicByCode(ctx context.Context, code string) (*model.StudentProfile, error) {
	doc, err := r.store.FindOne(ctx, model.Collection,
		docstore.Filter{"profile_code": code, "is_public": true})
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	var profile model.StudentProfile
	if err := utils.FromDoc(doc, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *docRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.store.Count(ctx, model.Collection, docstore.Filter{"email": email})
	if err != nil {
		return false, fmt.Errorf("check profile email: %w", err)
	}
	return n > 0, nil
}

func (r *docRepo) ListAll(ctx context.Context) ([]model.StudentProfile, error) {
	docs, err := r.store.FindMany(ctx, model.Collection, docstore.Filter{},
		docstore.FindOptions{SortField: "created_at", SortDesc: true})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	profiles := make([]model.StudentProfile, 0, len(docs))
	for _, doc := range docs {
		var profile model.StudentProfile
		if err := utils.FromDoc(doc, &profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// SetViews overwrites the view counter. Concurrent readers may race and
// lose an increment; the counter is informational, not billing.
func (r *docRepo) SetViews(ctx context.Context, id string, views int64) error {
	if _, err := r.store.UpdateOne(ctx, model.Collection,
		docstore.Filter{"id": id},
		map[string]any{"profile_views": views}); err != nil {
		return fmt.Errorf("update profile views: %w", err)
	}
	return nil
}
