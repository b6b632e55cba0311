package repository

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/admin/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Repository interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
}

type docRepo struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) Create(ctx context.Context, admin *model.AdminUser) error {
	doc, err := utils.ToDoc(admin)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, model.Collection, doc); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *docRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	doc, err := r.store.FindOne(ctx, model.Collection, docstore.Filter{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	var admin model.AdminUser
	if err := utils.FromDoc(doc, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
