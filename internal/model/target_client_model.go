package model

type TargetClient struct {
	Base
	Name     string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Industry string `gorm:"type:varchar(100)" json:"industry"`
	LogoUrl  string `gorm:"type:varchar(512)" json:"logo_url"`
	Website  string `gorm:"type:varchar(512)" json:"website" validate:"omitempty,url"`
}

func (TargetClient) TableName() string {
	return "target_clients"
}
