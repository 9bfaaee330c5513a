package routes

import (
	controller "restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, ctrl *controller.OrderController) {
	incomingRoutes.GET("/orders", ctrl.GetOrders())
	incomingRoutes.GET("/orders/active", ctrl.GetActiveOrders())
	incomingRoutes.GET("/orders/:order_id", ctrl.GetOrder())
	incomingRoutes.POST("/orders", ctrl.CreateOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", ctrl.UpdateOrderStatus())
}
