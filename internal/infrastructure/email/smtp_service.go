package email

import (
	"context"
	"fmt"
	"net/smtp"
)

// LeadAlertData is a new-lead notification for the academy staff.
type LeadAlertData struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Source   string
}

// DigestData is the daily analytics digest body.
type DigestData struct {
	TotalLeads     int64
	NewLeads       int64
	TotalPageViews int64
	UniqueVisitors int64
	ConversionRate float64
}

type EmailService interface {
	SendLeadAlert(ctx context.Context, to string, data LeadAlertData) error
	SendAnalyticsDigest(ctx context.Context, to string, data DigestData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendLeadAlert(_ context.Context, to string, data LeadAlertData) error {
	subject := fmt.Sprintf("New lead: %s (%s)", data.Name, data.Interest)
	body := fmt.Sprintf(`A new lead just came in.

Name:     %s
Email:    %s
Phone:    %s
Interest: %s
Source:   %s

Follow up from the admin dashboard.`,
		data.Name, data.Email, data.Phone, data.Interest, data.Source)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendAnalyticsDigest(_ context.Context, to string, data DigestData) error {
	subject := "Skillax daily analytics digest"
	body := fmt.Sprintf(`Yesterday at a glance:

Total leads:      %d
New leads:        %d
Page views:       %d
Unique visitors:  %d
Conversion rate:  %.1f%%`,
		data.TotalLeads, data.NewLeads, data.TotalPageViews, data.UniqueVisitors, data.ConversionRate)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}
