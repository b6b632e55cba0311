package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Roles used in a conversation transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation, in the chat-completions wire shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the public chatbot payload.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required.Error("message is required")),
		validation.Field(&r.SessionID, validation.Required.Error("session_id is required")),
	)
}

// ChatResponse is what the widget renders. Error is set when the upstream
// provider failed and Response carries fallback copy.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Error     bool   `json:"error,omitempty"`
}
