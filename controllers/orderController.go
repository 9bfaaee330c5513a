package controllers

import (
	"net/http"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (ctrl *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		order, err := ctrl.orders.Create(c.Request.Context(), actorFrom(c), req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func (ctrl *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var status *models.OrderStatus
		if raw := c.Query("status"); raw != "" {
			s := models.OrderStatus(raw)
			status = &s
		}

		orders, err := ctrl.orders.List(c.Request.Context(), status)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctrl *OrderController) GetActiveOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ctrl.orders.GetActive(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctrl *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := ctrl.orders.Get(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (ctrl *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := ctrl.orders.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("order_id"), models.OrderStatus(body.Status))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
