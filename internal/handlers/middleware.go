package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"usersvc/internal/store"
)

// RequireDB не пускает запросы к данным, пока подключение к БД недоступно.
// Защищает и от обрыва соединения после успешного старта.
func RequireDB(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := st.Ready(); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Database not connected"})
			return
		}
		c.Next()
	}
}

// Recovery превращает любую необработанную панику в JSON-ответ 500.
func Recovery() gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		resp := ErrorResponse{Error: "Internal Server Error"}
		if gin.Mode() != gin.ReleaseMode {
			resp.Detail = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	}
}

// NotFound — JSON-ответ для неизвестных маршрутов.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found."})
	}
}
