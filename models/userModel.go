package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of user roles. Authorization decisions key off it,
// so it is a typed constant set rather than a free string.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleWaiter   Role = "WAITER"
	RoleKitchen  Role = "KITCHEN"
	RoleCustomer Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleKitchen, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Password      *string            `json:"password" validate:"required,min=6"`
	Email         *string            `json:"email" validate:"email,required"`
	User_role     Role               `json:"user_role" validate:"required,eq=ADMIN|eq=WAITER|eq=KITCHEN|eq=CUSTOMER"`
	Is_active     *bool              `json:"is_active"`
	Token         *string            `json:"token"`
	Refresh_Token *string            `json:"refresh_token"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
	User_id       string             `json:"user_id"`
}
