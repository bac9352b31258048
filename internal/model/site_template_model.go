package model

import (
	"gorm.io/datatypes"
)

type SiteTemplate struct {
	Base
	Name        string         `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	PreviewUrl  string         `gorm:"type:varchar(512)" json:"preview_url"`
	DemoUrl     string         `gorm:"type:varchar(512)" json:"demo_url" validate:"omitempty,url"`
	PriceLabel  string         `gorm:"type:varchar(100)" json:"price_label"`
	Tags        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
}

func (SiteTemplate) TableName() string {
	return "site_templates"
}
