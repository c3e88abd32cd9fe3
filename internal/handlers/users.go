package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"usersvc/internal/models"
	"usersvc/internal/store"
	"usersvc/internal/utils"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserEnvelope struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// internalError логирует сбой; деталь уходит клиенту только вне release-режима.
func internalError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	resp := ErrorResponse{Error: "Internal Server Error"}
	if gin.Mode() != gin.ReleaseMode {
		resp.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// CreateUser godoc
// @Summary Создать пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param input body CreateUserRequest true "данные"
// @Success 201 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users [post]
func CreateUser(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r CreateUserRequest
		if err := c.BindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body."})
			return
		}
		name := strings.TrimSpace(r.Name)
		email := utils.NormalizeEmail(r.Email)
		if name == "" || email == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name and email are required."})
			return
		}
		if !utils.LooksLikeEmail(email) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email format."})
			return
		}

		u, err := st.Create(name, email)
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already exists."})
				return
			}
			internalError(c, err)
			return
		}

		c.Header("Location", "/api/users/"+u.ID)
		c.JSON(http.StatusCreated, UserEnvelope{
			Message: "User created successfully.",
			User:    toUserResponse(u),
		})
	}
}

// GetUser godoc
// @Summary Получить пользователя по id
// @Tags users
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func GetUser(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := st.FindByID(c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidID):
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id."})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
			default:
				internalError(c, err)
			}
			return
		}
		c.JSON(http.StatusOK, UserEnvelope{
			Message: "User fetched successfully.",
			User:    toUserResponse(u),
		})
	}
}

// UpdateUser godoc
// @Summary Изменить имя и/или email пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param input body UpdateUserRequest true "данные"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users/{id} [put]
func UpdateUser(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r UpdateUserRequest
		if err := c.BindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body."})
			return
		}
		if r.Name == nil && r.Email == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update."})
			return
		}
		if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name must not be empty."})
			return
		}
		if r.Email != nil && !utils.LooksLikeEmail(utils.NormalizeEmail(*r.Email)) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email format."})
			return
		}

		u, err := st.UpdateByID(c.Param("id"), r.Name, r.Email)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidID):
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id."})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
			case errors.Is(err, store.ErrEmailTaken):
				c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already exists."})
			default:
				internalError(c, err)
			}
			return
		}
		c.JSON(http.StatusOK, UserEnvelope{
			Message: "User updated successfully.",
			User:    toUserResponse(u),
		})
	}
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Tags users
// @Param id path string true "ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [delete]
func DeleteUser(st *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := st.DeleteByID(c.Param("id")); err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidID):
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id."})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
			default:
				internalError(c, err)
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}
