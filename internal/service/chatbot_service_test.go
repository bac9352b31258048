package service

import (
	"context"
	"testing"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/repository/memory"
	"codebiruni-be/pkg/chatbot"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func newTestChatbotService() IChatbotService {
	engine := chatbot.NewEngine(chatbot.Default(), nil)
	return NewChatbotService(engine, memory.NewSessionRepository(), noopLogger{})
}

func TestSendMessageReturnsReplyAndIntent(t *testing.T) {
	svc := newTestChatbotService()

	res := svc.SendMessage(context.Background(), dto.SendChatRequest{Message: "What services do you offer?"})

	assert.Equal(t, "services", res.Intent)
	assert.NotEmpty(t, res.Reply)
	assert.Contains(t, res.Reply, "CodeBiruni")
}

func TestSendMessageRecordsSessionHistory(t *testing.T) {
	sessions := memory.NewSessionRepository()
	engine := chatbot.NewEngine(chatbot.Default(), nil)
	svc := NewChatbotService(engine, sessions, noopLogger{})

	res := svc.SendMessage(context.Background(), dto.SendChatRequest{
		Message:   "hello",
		SessionId: "sess-1",
	})
	assert.Equal(t, "sess-1", res.SessionId)

	history, found := sessions.Get("sess-1")
	assert.True(t, found)
	assert.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, res.Reply, history[1].Content)
}

func TestSendMessageWithoutSessionSkipsCache(t *testing.T) {
	sessions := memory.NewSessionRepository()
	engine := chatbot.NewEngine(chatbot.Default(), nil)
	svc := NewChatbotService(engine, sessions, noopLogger{})

	res := svc.SendMessage(context.Background(), dto.SendChatRequest{Message: "hi"})

	assert.Empty(t, res.SessionId)
	_, found := sessions.Get("")
	assert.False(t, found)
}

func TestSendMessageExplicitHistoryWins(t *testing.T) {
	// With a nil generator the history-aware path degrades to the plain
	// pipeline, so the observable contract is an intent-correct reply.
	svc := newTestChatbotService()

	res := svc.SendMessage(context.Background(), dto.SendChatRequest{
		Message: "show me your portfolio",
		History: []dto.ChatTurn{{Role: "user", Content: "earlier"}},
	})

	assert.Equal(t, "portfolio", res.Intent)
	assert.Contains(t, res.Reply, "CodeBiruni")
}
