package model

type Program struct {
	BaseModel
	Title     string `gorm:"type:text;not null" json:"title" form:"title" binding:"strNotEmpty"`
	StartDate string `gorm:"type:text" json:"startDate" form:"startDate"`
	EndDate   string `gorm:"type:text" json:"endDate" form:"endDate"`
	TrainerID string `gorm:"type:text" json:"trainerId" form:"trainerId"`

	Trainer Trainer `gorm:"constraint:OnDelete:SET NULL" json:"trainer,omitempty"`
}

func (p Program) TableName() string {
	return "programs"
}
