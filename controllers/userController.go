package controllers

import (
	"net/http"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// sanitize strips the password hash before a user leaves the API.
func sanitize(u *models.User) *models.User {
	u.Password = nil
	return u
}

func (ctrl *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		created, err := ctrl.users.SignUp(c.Request.Context(), user)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sanitize(created))
	}
}

func (ctrl *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		user, err := ctrl.users.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitize(user))
	}
}

func (ctrl *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := ctrl.users.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		for i := range users {
			users[i].Password = nil
		}
		c.JSON(http.StatusOK, users)
	}
}

func (ctrl *UserController) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ctrl.users.Get(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitize(user))
	}
}

// UpdateUser handles the admin-only role and active-flag edits.
func (ctrl *UserController) UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			User_role *string `json:"user_role"`
			Is_active *bool   `json:"is_active"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var role *models.Role
		if body.User_role != nil {
			r := models.Role(*body.User_role)
			role = &r
		}

		user, err := ctrl.users.UpdateRole(c.Request.Context(), actorFrom(c), c.Param("user_id"), role, body.Is_active)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, sanitize(user))
	}
}
