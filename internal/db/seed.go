package db

import (
	"gorm.io/gorm"

	"usersvc/internal/models"
	"usersvc/internal/utils"
)

// SeedUsers добавляет демонстрационных пользователей, если таблица пуста.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Name: "Alice Johnson", Email: "alice@example.com"},
		{Name: "Bob Smith", Email: "bob@example.com"},
		{Name: "Carol White", Email: "carol@example.com"},
		{Name: "Dave Brown", Email: "dave@example.com"},
		{Name: "Erin Davis", Email: "erin@example.com"},
	}
	for i := range users {
		users[i].Email = utils.NormalizeEmail(users[i].Email)
	}
	return db.Create(&users).Error
}
