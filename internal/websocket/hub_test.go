package websocket

import (
	"strings"
	"testing"
	"time"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/logger"

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

func newTestHub() *Hub {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()
	return hub
}

func register(hub *Hub, buffer int) *Client {
	client := &Client{Hub: hub, Send: make(chan []byte, buffer)}
	hub.register <- client
	return client
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := newTestHub()
	client := register(hub, 4)

	hub.Broadcast(dto.AdminNotification{Type: "contact_message", Title: "New contact message"})

	select {
	case data := <-client.Send:
		assert.Contains(t, string(data), "New contact message")
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}
}

func TestHubDropsSlowConsumerOnce(t *testing.T) {
	hub := newTestHub()
	// Unbuffered Send with no reader: every broadcast hits the slow-consumer
	// branch.
	slow := &Client{Hub: hub, Send: make(chan []byte)}
	hub.register <- slow
	healthy := register(hub, 8)

	// Two broadcasts may both mark the slow client for removal before the
	// hub processes the first unregister; Send must still be closed exactly
	// once, with no panic taking the hub down.
	hub.Broadcast(dto.AdminNotification{Type: "contact_message", Title: "first"})
	hub.Broadcast(dto.AdminNotification{Type: "contact_message", Title: "second"})

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-slow.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "slow client's Send must be closed by the unregister path")

	// Hub still alive and delivering after the drop.
	hub.Broadcast(dto.AdminNotification{Type: "contact_message", Title: "third"})
	assert.Eventually(t, func() bool {
		for {
			select {
			case data := <-healthy.Send:
				if strings.Contains(string(data), "third") {
					return true
				}
			default:
				return false
			}
		}
	}, time.Second, 10*time.Millisecond)
}
