package model

type Review struct {
	Base
	Author    string `gorm:"type:varchar(100);not null" json:"author" validate:"required"`
	Role      string `gorm:"type:varchar(100)" json:"role"`
	Company   string `gorm:"type:varchar(100)" json:"company"`
	AvatarUrl string `gorm:"type:varchar(512)" json:"avatar_url"`
	Rating    int    `gorm:"not null;default:5" json:"rating" validate:"required,min=1,max=5"`
	Quote     string `gorm:"type:text;not null" json:"quote" validate:"required"`
	Approved  bool   `gorm:"default:false" json:"approved"`
}

func (Review) TableName() string {
	return "reviews"
}
