package model

import (
	"gorm.io/datatypes"
)

type Project struct {
	Base
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	ImageUrl    string         `gorm:"type:varchar(512)" json:"image_url"`
	LiveUrl     string         `gorm:"type:varchar(512)" json:"live_url" validate:"omitempty,url"`
	RepoUrl     string         `gorm:"type:varchar(512)" json:"repo_url" validate:"omitempty,url"`
	TechStack   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tech_stack"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
}

func (Project) TableName() string {
	return "projects"
}
