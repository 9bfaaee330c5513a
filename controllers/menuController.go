package controllers

import (
	"net/http"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func (ctrl *MenuController) GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		var category *models.Category
		if raw := c.Query("category"); raw != "" {
			cat := models.Category(raw)
			category = &cat
		}

		items, err := ctrl.menu.List(c.Request.Context(), category)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (ctrl *MenuController) GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := ctrl.menu.Get(c.Request.Context(), c.Param("menu_item_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (ctrl *MenuController) CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		created, err := ctrl.menu.Create(c.Request.Context(), actorFrom(c), item)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (ctrl *MenuController) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch services.MenuItemUpdate
		if err := c.BindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := ctrl.menu.Update(c.Request.Context(), actorFrom(c), c.Param("menu_item_id"), patch)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (ctrl *MenuController) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.menu.Delete(c.Request.Context(), actorFrom(c), c.Param("menu_item_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
	}
}
