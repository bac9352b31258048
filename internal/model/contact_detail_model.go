package model

type ContactDetail struct {
	Base
	Label     string `gorm:"type:varchar(100);not null" json:"label" validate:"required"`
	Value     string `gorm:"type:varchar(255);not null" json:"value" validate:"required"`
	Kind      string `gorm:"type:varchar(20);not null;index" json:"kind" validate:"required,oneof=email phone address social"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (ContactDetail) TableName() string {
	return "contact_details"
}
