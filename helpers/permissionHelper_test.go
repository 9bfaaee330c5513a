package helpers

import (
	"testing"

	"restaurant-pos/models"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		role models.Role
		op   Operation
		want bool
	}{
		{models.RoleAdmin, OpMenuWrite, true},
		{models.RoleWaiter, OpMenuWrite, false},
		{models.RoleKitchen, OpMenuWrite, false},
		{models.RoleCustomer, OpMenuWrite, false},

		{models.RoleAdmin, OpTableWrite, true},
		{models.RoleWaiter, OpTableWrite, false},

		{models.RoleAdmin, OpTableStatusWrite, true},
		{models.RoleWaiter, OpTableStatusWrite, true},
		{models.RoleKitchen, OpTableStatusWrite, false},
		{models.RoleCustomer, OpTableStatusWrite, false},

		{models.RoleAdmin, OpOrderStatusWrite, true},
		{models.RoleKitchen, OpOrderStatusWrite, true},
		{models.RoleWaiter, OpOrderStatusWrite, false},
		{models.RoleCustomer, OpOrderStatusWrite, false},

		{models.RoleAdmin, OpOrderCreate, true},
		{models.RoleWaiter, OpOrderCreate, true},
		{models.RoleKitchen, OpOrderCreate, true},
		{models.RoleCustomer, OpOrderCreate, true},

		// unknown roles and operations always deny
		{models.Role("OWNER"), OpMenuWrite, false},
		{models.RoleAdmin, Operation("invoice.write"), false},
	}

	for _, tc := range cases {
		if got := Authorize(tc.role, tc.op); got != tc.want {
			t.Errorf("Authorize(%s, %s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}
