package routes

import (
	controller "restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine, ctrl *controller.TableController) {
	incomingRoutes.GET("/tables", ctrl.GetTables())
	incomingRoutes.GET("/tables/:table_id", ctrl.GetTable())
	incomingRoutes.POST("/tables", ctrl.CreateTable())
	incomingRoutes.PATCH("/tables/:table_id", ctrl.UpdateTable())
	incomingRoutes.DELETE("/tables/:table_id", ctrl.DeleteTable())
	incomingRoutes.PATCH("/tables/:table_id/status", ctrl.UpdateTableStatus())
}
