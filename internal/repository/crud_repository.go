package repository

import (
	"context"
	"errors"

	"codebiruni-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrudRepository is a generic GORM-backed repository. One instantiation per
// content model replaces the per-entity contract/implementation pairs.
type CrudRepository[M any] struct {
	db *gorm.DB
}

func NewCrudRepository[M any](db *gorm.DB) *CrudRepository[M] {
	return &CrudRepository[M]{db: db}
}

func (r *CrudRepository[M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrudRepository[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CrudRepository[M]) Save(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// FindOne returns (nil, nil) when no row matches.
func (r *CrudRepository[M]) FindOne(ctx context.Context, specs ...specification.Specification) (*M, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *CrudRepository[M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*M, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *CrudRepository[M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CrudRepository[M]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteMany removes every row matching the specifications and reports how
// many went away. Refuses to run unfiltered.
func (r *CrudRepository[M]) DeleteMany(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		return 0, errors.New("delete many requires at least one specification")
	}
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	res := query.Delete(new(M))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
