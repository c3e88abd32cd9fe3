package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usersvc/internal/store"
)

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Meta  PageMeta       `json:"meta"`
}

// ListUsers godoc
// @Summary Страница пользователей с поиском и сортировкой
// @Tags users
// @Produce json
// @Param page query int false "номер страницы (от 1)"
// @Param limit query int false "размер страницы (1-100, по умолчанию 5)"
// @Param sortBy query string false "name | email | createdAt | updatedAt"
// @Param order query string false "asc | desc"
// @Param q query string false "подстрока в name или email"
// @Param email query string false "точное совпадение email (приоритет над q)"
// @Success 200 {object} ListUsersResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/paged [get]
func ListUsers(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := parsePageParams(c)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid sortBy field."})
			return
		}

		q := store.PageQuery{
			Search:    c.Query("q"),
			Email:     c.Query("email"),
			SortField: p.Sort,
			Order:     p.Order,
			Offset:    (p.Page - 1) * p.Limit,
			Limit:     p.Limit,
		}
		users, total, err := st.FindPage(q)
		if err != nil {
			internalError(c, err)
			return
		}

		totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
		if totalPages < 1 {
			totalPages = 1
		}

		resp := ListUsersResponse{
			Users: make([]UserResponse, 0, len(users)),
			Meta: PageMeta{
				Page:       p.Page,
				Limit:      p.Limit,
				Total:      total,
				TotalPages: totalPages,
				HasNext:    p.Page < totalPages,
				HasPrev:    p.Page > 1,
			},
		}
		for _, u := range users {
			resp.Users = append(resp.Users, toUserResponse(u))
		}
		c.JSON(http.StatusOK, resp)
	}
}
