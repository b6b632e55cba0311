package repository

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/lead/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Repository interface {
	Create(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context, filter model.ListFilter) ([]model.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type docRepo struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) Create(ctx context.Context, lead *model.Lead) error {
	doc, err := utils.ToDoc(lead)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, model.Collection, doc); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *docRepo) List(ctx context.Context, filter model.ListFilter) ([]model.Lead, error) {
	storeFilter := docstore.Filter{}
	if filter.Status != "" {
		storeFilter["status"] = filter.Status
	}
	if filter.Source != "" {
		storeFilter["source"] = filter.Source
	}
	docs, err := r.store.FindMany(ctx, model.Collection, storeFilter, docstore.FindOptions{
		SortField: "created_at",
		SortDesc:  true,
		Skip:      filter.Skip,
		Limit:     filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	leads := make([]model.Lead, 0, len(docs))
	for _, doc := range docs {
		var lead model.Lead
		if err := utils.FromDoc(doc, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (r *docRepo) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	matched, err := r.store.UpdateOne(ctx, model.Collection,
		docstore.Filter{"id": id},
		map[string]any{"status": status})
	if err != nil {
		return 0, fmt.Errorf("update lead status: %w", err)
	}
	return matched, nil
}
