package routes

import (
	controller "restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes are the only routes reachable without a token.
func AuthRoutes(incomingRoutes *gin.Engine, ctrl *controller.UserController) {
	incomingRoutes.POST("/users/signup", ctrl.SignUp())
	incomingRoutes.POST("/users/login", ctrl.Login())
}

func UserRoutes(incomingRoutes *gin.Engine, ctrl *controller.UserController) {
	incomingRoutes.GET("/users", ctrl.GetUsers())
	incomingRoutes.GET("/users/:user_id", ctrl.GetUser())
	incomingRoutes.PATCH("/users/:user_id", ctrl.UpdateUser())
}
