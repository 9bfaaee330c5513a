package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
	TableReserved  TableStatus = "RESERVED"
	TableCleaning  TableStatus = "CLEANING"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return true
	}
	return false
}

// Table invariant: Current_order_id points to at most one unfinished order.
// Only the order engine sets and clears it; direct status edits leave it
// alone.
type Table struct {
	ID               primitive.ObjectID `bson:"_id"`
	Table_number     *int               `json:"table_number" validate:"required"`
	Capacity         *int               `json:"capacity" validate:"required,min=1"`
	Status           TableStatus        `json:"status"`
	Qr_code          *string            `json:"qr_code"`
	Current_order_id *string            `json:"current_order_id"`
	Created_at       time.Time          `json:"created_at"`
	Updated_at       time.Time          `json:"updated_at"`
	Table_id         string             `json:"table_id"`
	Version          int64              `json:"version"`
}
