package service

import (
	"context"

	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/repository"
	"codebiruni-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityPtr constrains a model pointer to the identifier accessors provided
// by model.Base, which is what lets one service implementation cover every
// content collection.
type EntityPtr[M any] interface {
	*M
	GetID() uuid.UUID
	SetID(id uuid.UUID)
}

// ContentService is the generic CRUD surface behind the admin dashboard.
type ContentService[M any, P EntityPtr[M]] struct {
	repo          *repository.CrudRepository[M]
	searchColumns []string
	defaultOrder  specification.OrderBy
	collection    string
	log           logger.ILogger
}

func NewContentService[M any, P EntityPtr[M]](
	repo *repository.CrudRepository[M],
	collection string,
	searchColumns []string,
	defaultOrder specification.OrderBy,
	log logger.ILogger,
) *ContentService[M, P] {
	return &ContentService[M, P]{
		repo:          repo,
		searchColumns: searchColumns,
		defaultOrder:  defaultOrder,
		collection:    collection,
		log:           log,
	}
}

func (s *ContentService[M, P]) List(ctx context.Context, query dto.ListQuery) ([]*M, error) {
	query.Normalize()
	specs := []specification.Specification{s.defaultOrder, specification.Pagination{Limit: query.Limit, Offset: query.Offset}}
	if query.Q != "" {
		specs = append(specs, specification.Search{Term: query.Q, Columns: s.searchColumns})
	}
	return s.repo.FindAll(ctx, specs...)
}

// Get returns (nil, nil) when the record does not exist.
func (s *ContentService[M, P]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	return s.repo.FindOne(ctx, specification.ByID{ID: id})
}

func (s *ContentService[M, P]) Create(ctx context.Context, m P) error {
	if err := s.repo.Create(ctx, m); err != nil {
		s.log.Error(s.collection, "Create failed", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.log.Info(s.collection, "Record created", map[string]interface{}{"id": m.GetID()})
	return nil
}

func (s *ContentService[M, P]) Update(ctx context.Context, id uuid.UUID, m P) error {
	existing, err := s.repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if existing == nil {
		return gorm.ErrRecordNotFound
	}
	m.SetID(id)
	if err := s.repo.Save(ctx, m); err != nil {
		s.log.Error(s.collection, "Update failed", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}
	return nil
}

func (s *ContentService[M, P]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ContentService[M, P]) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	count, err := s.repo.DeleteMany(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.log.Error(s.collection, "Bulk delete failed", map[string]interface{}{"error": err.Error()})
		return 0, err
	}
	s.log.Info(s.collection, "Bulk delete", map[string]interface{}{"requested": len(ids), "deleted": count})
	return count, nil
}

func (s *ContentService[M, P]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
