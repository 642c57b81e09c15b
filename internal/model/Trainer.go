package model

type Trainer struct {
	BaseModel
	Name  string `gorm:"type:text;not null" json:"name" form:"name" binding:"strNotEmpty"`
	Level string `gorm:"type:text" json:"level" form:"level"`
	Email string `gorm:"type:text" json:"email" form:"email"`
}

func (t Trainer) TableName() string {
	return "trainers"
}
