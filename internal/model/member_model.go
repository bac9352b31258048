package model

import (
	"gorm.io/datatypes"
)

type Member struct {
	Base
	Name      string         `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Role      string         `gorm:"type:varchar(100);not null" json:"role" validate:"required"`
	Bio       string         `gorm:"type:text" json:"bio"`
	PhotoUrl  string         `gorm:"type:varchar(512)" json:"photo_url"`
	Socials   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"socials"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
}

func (Member) TableName() string {
	return "members"
}
