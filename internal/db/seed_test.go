package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usersvc/internal/models"
)

func TestSeedUsers(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file:seedusers?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := SeedUsers(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var count int64
	if err := gdb.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected seeded users")
	}
	if err := SeedUsers(gdb); err != nil {
		t.Fatalf("reseeding: %v", err)
	}
	var count2 int64
	gdb.Model(&models.User{}).Count(&count2)
	if count2 != count {
		t.Fatalf("expected no duplicates after reseed; got %d vs %d", count2, count)
	}

	var u models.User
	if err := gdb.First(&u).Error; err != nil {
		t.Fatalf("first user: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("seeded user without id")
	}
}
