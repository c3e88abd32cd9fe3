package handlers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usersvc/internal/models"
	"usersvc/internal/store"
)

// setupTest создаёт in-memory БД и маршруты для тестов.
// Имя БД привязано к имени теста, чтобы тесты не делили состояние.
func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)

	r := gin.New()
	r.Use(gin.CustomRecovery(Recovery()))
	r.NoRoute(NotFound())
	r.GET("/health", Health(st))

	api := r.Group("/api")
	api.Use(RequireDB(st))
	api.POST("/users", CreateUser(st))
	api.GET("/users/paged", ListUsers(st))
	api.GET("/users/:id", GetUser(st))
	api.PUT("/users/:id", UpdateUser(st))
	api.DELETE("/users/:id", DeleteUser(st))

	return db, r
}

// missingID — синтаксически корректный nanoid, которого нет в БД.
const missingID = "aaaaaaaaaaaaaaaaaaaaa"
