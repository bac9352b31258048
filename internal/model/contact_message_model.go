package model

type ContactMessage struct {
	Base
	Name    string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255);not null;index" json:"email" validate:"required,email"`
	Subject string `gorm:"type:varchar(255);not null" json:"subject" validate:"required"`
	Body    string `gorm:"type:text;not null" json:"body" validate:"required"`
	Read    bool   `gorm:"default:false;index" json:"read"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
