package model

import (
	"github.com/hebatacademy/certify/internal/constant"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email     string            `gorm:"type:text;unique;not null" json:"email" form:"email" binding:"required,email"`
	Password  string            `gorm:"type:text;not null" json:"-" form:"password" binding:"required,cmin=8"`
	FirstName string            `gorm:"type:text;not null" json:"firstName" form:"firstName" binding:"strNotEmpty"`
	LastName  string            `gorm:"type:text" json:"lastName" form:"lastName"`
	Role      constant.UserRole `gorm:"type:text;default:participant" json:"role"`
}

func (u User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
