package service

import (
	"context"
	"encoding/json"
	"time"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/model"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/repository"
	"codebiruni-be/internal/repository/specification"
	"codebiruni-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IContactService interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (*model.ContactMessage, error)
	List(ctx context.Context, query dto.ListQuery) ([]*model.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*model.ContactMessage, error)
}

type contactService struct {
	repo      *repository.CrudRepository[model.ContactMessage]
	publisher IPublisherService
	log       logger.ILogger
}

func NewContactService(
	repo *repository.CrudRepository[model.ContactMessage],
	publisher IPublisherService,
	log logger.ILogger,
) IContactService {
	return &contactService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func (s *contactService) Submit(ctx context.Context, req dto.SubmitContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.log.Error("Contact", "Failed to persist message", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	evt := events.ContactMessageCreated{
		MessageId:  msg.Id,
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Body:       msg.Body,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err == nil {
		err = s.publisher.Publish(ctx, payload)
	}
	if err != nil {
		// Notification is auxiliary; the submission itself succeeded.
		s.log.Warn("Contact", "Failed to publish contact event", map[string]interface{}{
			"message_id": msg.Id,
			"error":      err.Error(),
		})
	}

	s.log.Info("Contact", "Message received", map[string]interface{}{"message_id": msg.Id, "email": msg.Email})
	return msg, nil
}

func (s *contactService) List(ctx context.Context, query dto.ListQuery) ([]*model.ContactMessage, error) {
	query.Normalize()
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset},
	}
	if query.Q != "" {
		specs = append(specs, specification.Search{
			Term:    query.Q,
			Columns: []string{"name", "email", "subject", "body"},
		})
	}
	return s.repo.FindAll(ctx, specs...)
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	msg, err := s.repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if msg == nil {
		return gorm.ErrRecordNotFound
	}
	msg.Read = true
	return s.repo.Save(ctx, msg)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return s.repo.DeleteMany(ctx, specification.ByIDs{IDs: ids})
}

func (s *contactService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, specification.Filter("read", false))
}

func (s *contactService) Recent(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	return s.repo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: 0},
	)
}
