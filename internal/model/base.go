package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identifier and timestamps shared by every content model.
// The accessor pair lets generic services work with any model pointer.
type Base struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Base) GetID() uuid.UUID { return b.Id }

func (b *Base) SetID(id uuid.UUID) { b.Id = id }
