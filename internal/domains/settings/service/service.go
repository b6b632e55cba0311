package service

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/settings/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Service interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, settings *model.SiteSettings) error
}

type settingsService struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &settingsService{store: store}
}

func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	doc, err := s.store.FindOne(ctx, model.Collection,
		docstore.Filter{"id": model.SingletonID})
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if doc == nil {
		return model.Defaults(), nil
	}
	var settings model.SiteSettings
	if err := utils.FromDoc(doc, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update upserts the singleton settings document.
func (s *settingsService) Update(ctx context.Context, settings *model.SiteSettings) error {
	doc, err := utils.ToDoc(settings)
	if err != nil {
		return err
	}
	doc["id"] = model.SingletonID

	matched, err := s.store.UpdateOne(ctx, model.Collection,
		docstore.Filter{"id": model.SingletonID}, doc)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if matched == 0 {
		if err := s.store.Insert(ctx, model.Collection, doc); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	return nil
}
