// @title Users API
// @version 1.0
// @description CRUD-сервис пользователей (name, email)
// @BasePath /

package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"usersvc/config"
	"usersvc/internal/db"
	"usersvc/internal/handlers"
	"usersvc/internal/store"

	docs "usersvc/docs"
)

func main() {
	// 1. Загружаем конфиг из .env / окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// 1.1 Определяем режим запуска (dev/prod)
	env := os.Getenv("APP_ENV")
	if env == "prod" || env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// 2. Открываем GORM-подключение; уникальный индекс email создаётся
	// до начала приёма трафика
	gormDB, err := db.NewDB(cfg.DSN)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	st := store.New(gormDB)

	docs.SwaggerInfo.BasePath = "/"

	// 3. Создаём Gin-роутер и регистрируем маршруты
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(handlers.Recovery()), cors.Default())
	r.NoRoute(handlers.NotFound())

	r.GET("/health", handlers.Health(st))
	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(handlers.RequireDB(st))
	api.POST("/users", handlers.CreateUser(st))
	api.GET("/users/paged", handlers.ListUsers(st))
	api.GET("/users/:id", handlers.GetUser(st))
	api.PUT("/users/:id", handlers.UpdateUser(st))
	api.DELETE("/users/:id", handlers.DeleteUser(st))

	// 4. Запускаем сервер; по SIGINT/SIGTERM закрываем подключение к БД
	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("shutting down …")
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
		srv.Close()
	}()

	log.Printf("listening on %s …", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
