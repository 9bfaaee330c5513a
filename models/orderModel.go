package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus moves monotonically PENDING -> PREPARING -> READY -> DELIVERED,
// with CANCELLED reachable from any non-terminal state. DELIVERED and
// CANCELLED are terminal.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Active reports whether the order still sits in the kitchen queue.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderPreparing
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is owned by exactly one Order and is never created or updated on
// its own. Price_at_time is snapshotted from the menu at order creation and
// never rewritten by later catalog edits.
type OrderItem struct {
	Menu_item_id  string  `json:"menu_item_id" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,min=1"`
	Price_at_time float64 `json:"price_at_time"`
	Notes         *string `json:"notes"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id"`
	Table_id     *string            `json:"table_id" validate:"required"`
	Items        []OrderItem        `json:"items"`
	Status       OrderStatus        `json:"status"`
	Total_amount float64            `json:"total_amount"`
	Waiter_id    *string            `json:"waiter_id"`
	Customer_id  *string            `json:"customer_id"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
	Order_id     string             `json:"order_id"`
	Version      int64              `json:"version"`
}
