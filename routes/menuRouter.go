package routes

import (
	controller "restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, ctrl *controller.MenuController) {
	incomingRoutes.GET("/menu-items", ctrl.GetMenuItems())
	incomingRoutes.GET("/menu-items/:menu_item_id", ctrl.GetMenuItem())
	incomingRoutes.POST("/menu-items", ctrl.CreateMenuItem())
	incomingRoutes.PATCH("/menu-items/:menu_item_id", ctrl.UpdateMenuItem())
	incomingRoutes.DELETE("/menu-items/:menu_item_id", ctrl.DeleteMenuItem())
}
