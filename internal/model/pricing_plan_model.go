package model

import (
	"gorm.io/datatypes"
)

type PricingPlan struct {
	Base
	Name        string         `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Tier        string         `gorm:"type:varchar(50)" json:"tier"`
	PriceLabel  string         `gorm:"type:varchar(100)" json:"price_label"`
	BillingNote string         `gorm:"type:varchar(255)" json:"billing_note"`
	Features    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	Highlighted bool           `gorm:"default:false" json:"highlighted"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}
