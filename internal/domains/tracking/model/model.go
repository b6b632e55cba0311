package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Collection is the page views document collection.
const Collection = "page_views"

// PageView is one recorded page impression. Views are append-only; nothing
// updates or deletes them after capture.
type PageView struct {
	ID        string `json:"id"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// TrackRequest is the public pageview beacon payload.
type TrackRequest struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
	SessionID string `json:"session_id"`
}

func (r TrackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Path, validation.Required.Error("path is required")),
		validation.Field(&r.SessionID, validation.Required.Error("session_id is required")),
	)
}
