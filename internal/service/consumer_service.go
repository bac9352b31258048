package service

import (
	"context"
	"encoding/json"
	"log"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/mailer"
	"codebiruni-be/internal/websocket"
	"codebiruni-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to contact-form submissions: it emails the agency
// inbox and pushes a live notification to connected admin dashboards.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	mailer    mailer.IEmailService
	hub       *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		mailer:    emailService,
		hub:       hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload events.ContactMessageCreated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal contact event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing contact message %s from %s", payload.MessageId, payload.Email)

	if cs.mailer != nil {
		if err := cs.mailer.SendContactNotification(payload.Name, payload.Email, payload.Subject, payload.Body); err != nil {
			// The message row is already persisted; mail is best effort.
			log.Printf("[WARN] Failed to email contact notification for %s: %v", payload.MessageId, err)
		}
	}

	if cs.hub != nil {
		cs.hub.Broadcast(dto.AdminNotification{
			Type:    "contact_message",
			Title:   "New contact message",
			Message: payload.Subject,
			Payload: payload,
		})
	}

	msg.Ack()
}
