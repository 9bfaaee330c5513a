package main

import (
	"log"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/controllers"
	"restaurant-pos/database"
	"restaurant-pos/logger"
	"restaurant-pos/middleware"
	"restaurant-pos/repository"
	"restaurant-pos/routes"
	"restaurant-pos/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	appLog := logger.NewLogger("restaurant-pos")

	users := repository.NewMongoUsers(database.Client)
	menu := repository.NewMongoMenu(database.Client)
	tables := repository.NewMongoTables(database.Client)
	orders := repository.NewMongoOrders(database.Client)
	tx := repository.NewMongoTx(database.Client)

	userService := services.NewUserService(users, appLog)
	menuService := services.NewMenuService(menu, appLog)
	tableService := services.NewTableService(tables, appLog)
	orderService := services.NewOrderService(orders, tables, menu, tx, appLog)

	userController := controllers.NewUserController(userService)
	menuController := controllers.NewMenuController(menuService)
	tableController := controllers.NewTableController(tableService)
	orderController := controllers.NewOrderController(orderService)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(router, userController)
	router.Use(middleware.Authentication())
	routes.UserRoutes(router, userController)
	routes.MenuRoutes(router, menuController)
	routes.TableRoutes(router, tableController)
	routes.OrderRoutes(router, orderController)

	log.Fatal(router.Run(":" + cfg.Port))
}
