package service

import (
	"context"
	"fmt"
	"time"

	chatmodel "skillax-backend/internal/domains/chat/model"
	"skillax-backend/internal/domains/chat/provider"
	"skillax-backend/internal/shared/errs"
	"skillax-backend/pkg/cache"
	"skillax-backend/pkg/logger"
)

const (
	sessionKeyPrefix = "chat:session:"
	sessionTTL       = 30 * time.Minute

	// maxHistoryMessages bounds redis memory and prompt size per session.
	maxHistoryMessages = 20
)

const fallbackReply = "I apologize, but I'm having trouble connecting right now. " +
	"Please contact us directly at contact@skillax.in or call our office. " +
	"We'd be happy to help you!"

type Service interface {
	Send(ctx context.Context, req *chatmodel.ChatRequest) (*chatmodel.ChatResponse, error)
}

type chatService struct {
	provider provider.Provider
	sessions cache.Cache
}

func NewService(p provider.Provider, sessions cache.Cache) Service {
	return &chatService{provider: p, sessions: sessions}
}

// Send appends the visitor message to the session transcript, asks the
// provider for a reply and stores the updated transcript. Provider failures
// degrade to a canned apology with error:true rather than a 5xx, so the
// widget stays usable.
func (s *chatService) Send(ctx context.Context, req *chatmodel.ChatRequest) (*chatmodel.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidationFailed, err.Error())
	}

	history := s.loadHistory(ctx, req.SessionID)
	history = append(history, chatmodel.Message{Role: chatmodel.RoleUser, Content: req.Message})
	history = trimHistory(history)

	prompt := make([]chatmodel.Message, 0, len(history)+1)
	prompt = append(prompt, chatmodel.Message{Role: chatmodel.RoleSystem, Content: systemPrompt})
	prompt = append(prompt, history...)

	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		logger.Warn("chat provider failed", err)
		return &chatmodel.ChatResponse{
			Response:  fallbackReply,
			SessionID: req.SessionID,
			Error:     true,
		}, nil
	}

	history = append(history, chatmodel.Message{Role: chatmodel.RoleAssistant, Content: reply})
	s.storeHistory(ctx, req.SessionID, trimHistory(history))

	return &chatmodel.ChatResponse{Response: reply, SessionID: req.SessionID}, nil
}

func (s *chatService) loadHistory(ctx context.Context, sessionID string) []chatmodel.Message {
	var history []chatmodel.Message
	found, err := s.sessions.Get(ctx, sessionKeyPrefix+sessionID, &history)
	if err != nil {
		logger.Warn("failed to load chat session", err)
		return nil
	}
	if !found {
		return nil
	}
	return history
}

func (s *chatService) storeHistory(ctx context.Context, sessionID string, history []chatmodel.Message) {
	if err := s.sessions.Set(ctx, sessionKeyPrefix+sessionID, history, sessionTTL); err != nil {
		logger.Warn("failed to store chat session", err)
	}
}

func trimHistory(history []chatmodel.Message) []chatmodel.Message {
	if len(history) <= maxHistoryMessages {
		return history
	}
	return history[len(history)-maxHistoryMessages:]
}
