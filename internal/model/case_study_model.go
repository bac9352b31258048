package model

import (
	"github.com/google/uuid"
)

type CaseStudy struct {
	Base
	Title     string     `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	Summary   string     `gorm:"type:text" json:"summary"`
	Body      string     `gorm:"type:text" json:"body"`
	CoverUrl  string     `gorm:"type:varchar(512)" json:"cover_url"`
	ProjectId *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Published bool       `gorm:"default:false" json:"published"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}
