package dto

import (
	"github.com/google/uuid"
)

// ListQuery is the shared query-string surface of every list endpoint.
type ListQuery struct {
	Q      string `query:"q"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// Normalize applies list defaults and caps so handlers never page unbounded.
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

type BulkDeleteRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}
