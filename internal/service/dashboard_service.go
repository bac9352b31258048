package service

import (
	"context"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/repository/specification"
)

// CollectionCounter is satisfied by every CrudRepository instantiation.
type CollectionCounter interface {
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type IDashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	counters map[string]CollectionCounter
	contact  IContactService
}

func NewDashboardService(counters map[string]CollectionCounter, contact IContactService) IDashboardService {
	return &dashboardService{
		counters: counters,
		contact:  contact,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardResponse, error) {
	collections := make(map[string]int64, len(s.counters))
	for name, counter := range s.counters {
		count, err := counter.Count(ctx)
		if err != nil {
			return nil, err
		}
		collections[name] = count
	}

	unread, err := s.contact.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.contact.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Collections:    collections,
		UnreadMessages: unread,
		RecentMessages: recent,
	}, nil
}
