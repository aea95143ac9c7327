// File: internal/handler/users/user.go
package users

import (
	"net/http"
	"strings"

	"hub-oauth/internal/database"
	"hub-oauth/internal/dto"
	"hub-oauth/internal/middleware"
	"hub-oauth/internal/model"
	"hub-oauth/internal/service"
	"hub-oauth/internal/store"

	"github.com/labstack/echo/v4"
)

// Overridable in tests.
var (
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
	hashPassword = service.HashPassword
)

func userResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUserHandler creates a hub user.
// @Summary     Create a new user
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true  "Name"
// @Param       email    formData string true  "Email (lowercased)"
// @Param       password formData string true  "Password"
// @Param       is_admin formData boolean false "Admin flag"
// @Success     201 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			IsAdmin:      req.IsAdmin,
		}
		created, err := createUser(c.Request().Context(), db, user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}
		return c.JSON(http.StatusCreated, userResponse(created))
	}
}

// GetMeHandler returns the current session user.
// @Summary     Get current user info
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, userResponse(user))
	}
}
