package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	analyticsservice "skillax-backend/internal/domains/analytics/service"
	"skillax-backend/internal/infrastructure/email"
	"skillax-backend/internal/infrastructure/queue"
	"skillax-backend/pkg/logger"
)

type taskHandlers struct {
	analytics analyticsservice.Service
	mailer    email.EmailService
	adminTo   string
}

func newTaskHandlers(analytics analyticsservice.Service, mailer email.EmailService, adminTo string) *taskHandlers {
	return &taskHandlers{analytics: analytics, mailer: mailer, adminTo: adminTo}
}

func (h *taskHandlers) handleLeadNotify(ctx context.Context, t *asynq.Task) error {
	var payload queue.LeadNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", queue.TaskLeadNotify, err)
	}
	if h.adminTo == "" {
		logger.Info("lead alert skipped, no admin recipient configured",
			map[string]interface{}{"lead_id": payload.LeadID})
		return nil
	}

	err := h.mailer.SendLeadAlert(ctx, h.adminTo, email.LeadAlertData{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Interest: payload.Interest,
		Source:   payload.Source,
	})
	if err != nil {
		return fmt.Errorf("send lead alert: %w", err)
	}
	logger.Info("lead alert sent", map[string]interface{}{"lead_id": payload.LeadID})
	return nil
}

func (h *taskHandlers) handleAnalyticsDigest(ctx context.Context, _ *asynq.Task) error {
	if h.adminTo == "" {
		logger.Info("analytics digest skipped, no admin recipient configured", nil)
		return nil
	}

	summary, err := h.analytics.Summary(ctx)
	if err != nil {
		return fmt.Errorf("compute digest summary: %w", err)
	}
	conversion, err := h.analytics.LeadConversion(ctx)
	if err != nil {
		return fmt.Errorf("compute digest conversion: %w", err)
	}

	err = h.mailer.SendAnalyticsDigest(ctx, h.adminTo, email.DigestData{
		TotalLeads:     summary.TotalLeads,
		NewLeads:       summary.NewLeads,
		TotalPageViews: summary.TotalPageViews,
		UniqueVisitors: summary.UniqueVisitors,
		ConversionRate: conversion.ConversionRate,
	})
	if err != nil {
		return fmt.Errorf("send analytics digest: %w", err)
	}
	logger.Info("analytics digest sent", map[string]interface{}{"to": h.adminTo})
	return nil
}
