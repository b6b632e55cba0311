package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skillax-backend/internal/domains/tracking/model"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Service interface {
	Track(ctx context.Context, req *model.TrackRequest, clientIP string) (*model.PageView, error)
}

type trackingService struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &trackingService{store: store}
}

func (s *trackingService) Track(ctx context.Context, req *model.TrackRequest, clientIP string) (*model.PageView, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	view := &model.PageView{
		ID:        uuid.NewString(),
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		IPAddress: clientIP,
		SessionID: req.SessionID,
		Timestamp: utils.NowUTC(),
	}
	doc, err := utils.ToDoc(view)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, model.Collection, doc); err != nil {
		return nil, fmt.Errorf("insert page view: %w", err)
	}
	return view, nil
}
