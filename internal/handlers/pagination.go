package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Колонки, по которым разрешена сортировка списка пользователей.
var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type pageParams struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

// parsePageParams читает page/limit/sortBy/order из query.
// Значения вне допустимого диапазона молча заменяются дефолтами;
// единственное жёсткое правило — sortBy вне списка означает ok=false.
func parsePageParams(c *gin.Context) (p pageParams, ok bool) {
	p = pageParams{Page: 1, Limit: 5, Sort: "created_at", Order: "desc"}

	if s := c.Query("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 100 {
			p.Limit = n
		}
	}
	if s := c.Query("sortBy"); s != "" {
		col, found := sortColumns[s]
		if !found {
			return p, false
		}
		p.Sort = col
	}
	if s := c.Query("order"); s == "asc" || s == "desc" {
		p.Order = s
	}
	return p, true
}
