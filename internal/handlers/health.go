package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usersvc/internal/store"
)

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func Health(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := st.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Database not connected"})
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
