package service

import (
	"context"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/repository/memory"
	"codebiruni-be/pkg/chatbot"
)

type IChatbotService interface {
	SendMessage(ctx context.Context, req dto.SendChatRequest) dto.SendChatResponse
}

type chatbotService struct {
	engine   *chatbot.Engine
	sessions *memory.SessionRepository
	log      logger.ILogger
}

func NewChatbotService(engine *chatbot.Engine, sessions *memory.SessionRepository, log logger.ILogger) IChatbotService {
	return &chatbotService{
		engine:   engine,
		sessions: sessions,
		log:      log,
	}
}

// SendMessage never fails: the engine absorbs every error into reply text.
func (s *chatbotService) SendMessage(ctx context.Context, req dto.SendChatRequest) dto.SendChatResponse {
	history := s.resolveHistory(req)

	var reply string
	if len(history) > 0 {
		reply = s.engine.ChatWithHistory(ctx, req.Message, history)
	} else {
		reply = s.engine.Chat(ctx, req.Message)
	}

	intent := chatbot.ClassifyIntent(req.Message)

	if req.SessionId != "" {
		s.sessions.Append(req.SessionId, req.Message, reply)
	}

	s.log.Info("Chatbot", "Message handled", map[string]interface{}{
		"intent":      string(intent),
		"session_id":  req.SessionId,
		"msg_length":  len(req.Message),
		"has_history": len(history) > 0,
	})

	return dto.SendChatResponse{
		Reply:     reply,
		Intent:    string(intent),
		SessionId: req.SessionId,
	}
}

// resolveHistory prefers turns the client supplied explicitly, falling back
// to the cached session transcript.
func (s *chatbotService) resolveHistory(req dto.SendChatRequest) []chatbot.Turn {
	if len(req.History) > 0 {
		history := make([]chatbot.Turn, len(req.History))
		for i, t := range req.History {
			history[i] = chatbot.Turn{Role: t.Role, Content: t.Content}
		}
		return history
	}
	if req.SessionId != "" {
		if cached, found := s.sessions.Get(req.SessionId); found {
			return cached
		}
	}
	return nil
}
