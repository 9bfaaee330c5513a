package controllers

import (
	"net/http"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{tables: tables}
}

func (ctrl *TableController) GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		tables, err := ctrl.tables.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, tables)
	}
}

func (ctrl *TableController) GetTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		table, err := ctrl.tables.Get(c.Request.Context(), c.Param("table_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func (ctrl *TableController) CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&table); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		created, err := ctrl.tables.Create(c.Request.Context(), actorFrom(c), table)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (ctrl *TableController) UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Table_number *int `json:"table_number"`
			Capacity     *int `json:"capacity"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		table, err := ctrl.tables.Update(c.Request.Context(), actorFrom(c), c.Param("table_id"), body.Table_number, body.Capacity)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func (ctrl *TableController) DeleteTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.tables.Delete(c.Request.Context(), actorFrom(c), c.Param("table_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "table deleted"})
	}
}

func (ctrl *TableController) UpdateTableStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		table, err := ctrl.tables.SetStatus(c.Request.Context(), actorFrom(c), c.Param("table_id"), models.TableStatus(body.Status))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}
