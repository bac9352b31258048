package model

type Faq struct {
	Base
	Question  string `gorm:"type:text;not null" json:"question" validate:"required"`
	Answer    string `gorm:"type:text;not null" json:"answer" validate:"required"`
	Category  string `gorm:"type:varchar(100);index" json:"category"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (Faq) TableName() string {
	return "faqs"
}
