package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryAppetizer  Category = "APPETIZER"
	CategoryMainCourse Category = "MAIN_COURSE"
	CategoryDessert    Category = "DESSERT"
	CategoryBeverage   Category = "BEVERAGE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

type MenuItem struct {
	ID               primitive.ObjectID `bson:"_id"`
	Name             *string            `json:"name" validate:"required,min=2,max=100"`
	Description      *string            `json:"description"`
	Price            *float64           `json:"price" validate:"required,min=0"`
	Category         Category           `json:"category" validate:"required,eq=APPETIZER|eq=MAIN_COURSE|eq=DESSERT|eq=BEVERAGE"`
	Image_url        *string            `json:"image_url"`
	Preparation_time *int               `json:"preparation_time"`
	Is_available     *bool              `json:"is_available"`
	Created_at       time.Time          `json:"created_at"`
	Updated_at       time.Time          `json:"updated_at"`
	Menu_item_id     string             `json:"menu_item_id"`
}
