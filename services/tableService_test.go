package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-pos/apperrors"
	"restaurant-pos/models"
)

func TestCreateTableRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.tables.Create(ctx, actor(models.RoleWaiter), models.Table{
		Table_number: intPtr(1),
		Capacity:     intPtr(4),
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateTableAttachesQRCode(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	table, err := f.tables.Create(ctx, actor(models.RoleAdmin), models.Table{
		Table_number: intPtr(7),
		Capacity:     intPtr(2),
	})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	if table.Status != models.TableAvailable {
		t.Fatalf("expected AVAILABLE, got %s", table.Status)
	}
	if table.Qr_code == nil || *table.Qr_code == "" {
		t.Fatalf("expected QR artifact on created table")
	}
}

func TestCreateTableSurvivesQRFailure(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.tables.genQR = func(tableId string) (string, error) {
		return "", errors.New("encoder broken")
	}

	table, err := f.tables.Create(ctx, actor(models.RoleAdmin), models.Table{
		Table_number: intPtr(7),
		Capacity:     intPtr(2),
	})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	if table.Qr_code != nil {
		t.Fatalf("failed QR generation should leave Qr_code unset")
	}
}

func TestCreateTableDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seedTable(t, 3)

	_, err := f.tables.Create(ctx, actor(models.RoleAdmin), models.Table{
		Table_number: intPtr(3),
		Capacity:     intPtr(4),
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCreateTableBadCapacity(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.tables.Create(ctx, actor(models.RoleAdmin), models.Table{
		Table_number: intPtr(1),
		Capacity:     intPtr(0),
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetTableStatusRoleGating(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	table := f.seedTable(t, 1)

	if _, err := f.tables.SetStatus(ctx, actor(models.RoleWaiter), table.Table_id, models.TableReserved); err != nil {
		t.Fatalf("waiter status edit should succeed: %v", err)
	}
	if _, err := f.tables.SetStatus(ctx, actor(models.RoleCustomer), table.Table_id, models.TableAvailable); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for customer, got %v", err)
	}
	if _, err := f.tables.SetStatus(ctx, actor(models.RoleKitchen), table.Table_id, models.TableAvailable); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for kitchen, got %v", err)
	}
	if _, err := f.tables.SetStatus(ctx, actor(models.RoleAdmin), table.Table_id, models.TableCleaning); err != nil {
		t.Fatalf("admin status edit should succeed: %v", err)
	}
}

func TestSetTableStatusUnknownStatus(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	table := f.seedTable(t, 1)

	if _, err := f.tables.SetStatus(ctx, actor(models.RoleWaiter), table.Table_id, models.TableStatus("BROKEN")); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// A direct status edit while an order is open must not clear the
// current-order reference; completing the order afterwards still frees the
// table.
func TestDirectStatusEditKeepsCurrentOrderReference(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	burger := f.seedMenuItem(t, "Burger", 10.00, true)
	table := f.seedTable(t, 1)
	order, err := f.orders.Create(ctx, actor(models.RoleWaiter), CreateOrderRequest{
		Table_id: table.Table_id,
		Items:    []OrderItemRequest{{Menu_item_id: burger.Menu_item_id, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	edited, err := f.tables.SetStatus(ctx, actor(models.RoleWaiter), table.Table_id, models.TableReserved)
	if err != nil {
		t.Fatalf("direct status edit: %v", err)
	}
	if edited.Current_order_id == nil || *edited.Current_order_id != order.Order_id {
		t.Fatalf("direct status edit cleared current order reference")
	}

	kitchen := actor(models.RoleKitchen)
	for _, status := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderDelivered} {
		if _, err := f.orders.UpdateStatus(ctx, kitchen, order.Order_id, status); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}
	freed, _ := f.tables.Get(ctx, table.Table_id)
	if freed.Status != models.TableAvailable || freed.Current_order_id != nil {
		t.Fatalf("table not freed after delivery: %s", freed.Status)
	}
}

// Deleting a table out from under its open order would strand the order: the
// terminal transition could never free the table. The delete must refuse
// until the order is finished.
func TestDeleteTableWithOpenOrder(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	burger := f.seedMenuItem(t, "Burger", 10.00, true)
	table := f.seedTable(t, 1)
	order, err := f.orders.Create(ctx, actor(models.RoleWaiter), CreateOrderRequest{
		Table_id: table.Table_id,
		Items:    []OrderItemRequest{{Menu_item_id: burger.Menu_item_id, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	admin := actor(models.RoleAdmin)
	if err := f.tables.Delete(ctx, admin, table.Table_id); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict deleting occupied table, got %v", err)
	}

	if _, err := f.orders.UpdateStatus(ctx, admin, order.Order_id, models.OrderCancelled); err != nil {
		t.Fatalf("cancel order: %v", err)
	}
	if err := f.tables.Delete(ctx, admin, table.Table_id); err != nil {
		t.Fatalf("delete after cancel: %v", err)
	}
}

func TestUpdateAndDeleteTable(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	table := f.seedTable(t, 1)

	updated, err := f.tables.Update(ctx, actor(models.RoleAdmin), table.Table_id, intPtr(9), intPtr(6))
	if err != nil {
		t.Fatalf("update table: %v", err)
	}
	if *updated.Table_number != 9 || *updated.Capacity != 6 {
		t.Fatalf("table not updated: %+v", updated)
	}

	if err := f.tables.Delete(ctx, actor(models.RoleWaiter), table.Table_id); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for waiter delete, got %v", err)
	}
	if err := f.tables.Delete(ctx, actor(models.RoleAdmin), table.Table_id); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := f.tables.Get(ctx, table.Table_id); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
