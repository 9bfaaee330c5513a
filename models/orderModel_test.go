package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPreparing, OrderReady, true},
		{OrderReady, OrderDelivered, true},

		{OrderPending, OrderCancelled, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderReady, OrderCancelled, true},

		{OrderPending, OrderReady, false},
		{OrderPending, OrderDelivered, false},
		{OrderPreparing, OrderDelivered, false},
		{OrderReady, OrderPreparing, false},

		{OrderDelivered, OrderPreparing, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderDelivered, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderPreparing, OrderReady} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderDelivered, OrderCancelled} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestOrderStatusActive(t *testing.T) {
	active := map[OrderStatus]bool{
		OrderPending:   true,
		OrderPreparing: true,
		OrderReady:     false,
		OrderDelivered: false,
		OrderCancelled: false,
	}
	for s, want := range active {
		if got := s.Active(); got != want {
			t.Errorf("%s.Active() = %v, want %v", s, got, want)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("PAID").Valid() {
		t.Errorf("PAID should not be a valid order status")
	}
}
