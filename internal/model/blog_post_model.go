package model

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	Base
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Body        string         `gorm:"type:text" json:"body"`
	CoverUrl    string         `gorm:"type:varchar(512)" json:"cover_url"`
	Tags        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
