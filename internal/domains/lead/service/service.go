package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"skillax-backend/internal/domains/lead/model"
	"skillax-backend/internal/domains/lead/repository"
	"skillax-backend/internal/infrastructure/queue"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/logger"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Notifier enqueues a background notification for a fresh lead.
type Notifier interface {
	EnqueueLeadNotify(payload queue.LeadNotifyPayload) error
}

type Service interface {
	Create(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error)
	SubmitContact(ctx context.Context, req *model.ContactFormRequest) (*model.Lead, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type leadService struct {
	repo     repository.Repository
	notifier Notifier
}

// NewService builds the lead service. notifier may be nil; notification is
// best-effort and never fails lead capture.
func NewService(repo repository.Repository, notifier Notifier) Service {
	return &leadService{repo: repo, notifier: notifier}
}

func (s *leadService) Create(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	source := req.Source
	if source == "" {
		source = model.SourceWebsite
	}
	lead := &model.Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interest:  req.Interest,
		Source:    source,
		Message:   req.Message,
		Status:    model.StatusNew,
		CreatedAt: utils.NowUTC(),
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.notify(lead)
	return lead, nil
}

func (s *leadService) SubmitContact(ctx context.Context, req *model.ContactFormRequest) (*model.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	lead := &model.Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interest:  req.Subject,
		Source:    model.SourceContactForm,
		Message:   req.Message,
		Status:    model.StatusNew,
		CreatedAt: utils.NowUTC(),
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.notify(lead)
	return lead, nil
}

func (s *leadService) notify(lead *model.Lead) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.EnqueueLeadNotify(queue.LeadNotifyPayload{
		LeadID:   lead.ID,
		Name:     lead.Name,
		Email:    lead.Email,
		Phone:    lead.Phone,
		Interest: lead.Interest,
		Source:   lead.Source,
	})
	if err != nil {
		logger.Warn("failed to enqueue lead notification", err)
	}
}

func (s *leadService) List(ctx context.Context, filter model.ListFilter) ([]model.Lead, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *leadService) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return fmt.Errorf("%w: status is required", errs.ErrValidationFailed)
	}
	matched, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: lead %s", errs.ErrNotFound, id)
	}
	return nil
}

// ExportXLSX writes every lead to a workbook, paging through the collection
// so the export is never capped at the listing limit.
func (s *leadService) ExportXLSX(ctx context.Context) ([]byte, error) {
	var leads []model.Lead
	for skip := 0; ; skip += maxListLimit {
		page, err := s.repo.List(ctx, model.ListFilter{Limit: maxListLimit, Skip: skip})
		if err != nil {
			return nil, err
		}
		leads = append(leads, page...)
		if len(page) < maxListLimit {
			break
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Phone", "Interest", "Source", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, lead := range leads {
		values := []string{
			lead.ID, lead.Name, lead.Email, lead.Phone,
			lead.Interest, lead.Source, lead.Status, lead.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write leads workbook: %w", err)
	}
	return buf.Bytes(), nil
}
