package controllers

import (
	"errors"
	"net/http"

	"restaurant-pos/apperrors"
	"restaurant-pos/models"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator"
)

var validate = validator.New()

// statusFromError maps the service error taxonomy onto HTTP statuses. The
// services themselves never see transport concerns.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

// actorFrom rebuilds the acting user from the claims the auth middleware
// stashed on the context. No DB round trip is needed for gating.
func actorFrom(c *gin.Context) *models.User {
	name := c.GetString("name")
	email := c.GetString("email")
	return &models.User{
		User_id:   c.GetString("uid"),
		User_role: models.Role(c.GetString("user_role")),
		Name:      &name,
		Email:     &email,
	}
}
