package models

import (
	"time"

	"gorm.io/gorm"

	"usersvc/internal/utils"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:21" json:"id"`
	Name      string    `gorm:"type:TEXT;not null" json:"name"`
	Email     string    `gorm:"type:TEXT;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID, err = utils.GenerateNanoID()
	}
	return
}
