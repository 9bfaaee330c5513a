package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"restaurant-pos/apperrors"
	"restaurant-pos/helpers"
	"restaurant-pos/logger"
	"restaurant-pos/models"
	"restaurant-pos/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService owns the order lifecycle: creation with price snapshotting,
// the status state machine, and the coupled table occupancy transitions.
type OrderService struct {
	orders repository.OrderRepository
	tables repository.TableRepository
	menu   repository.MenuRepository
	tx     repository.TxManager
	log    *logger.Logger
}

func NewOrderService(orders repository.OrderRepository, tables repository.TableRepository, menu repository.MenuRepository, tx repository.TxManager, log *logger.Logger) *OrderService {
	return &OrderService{orders: orders, tables: tables, menu: menu, tx: tx, log: log}
}

type OrderItemRequest struct {
	Menu_item_id string  `json:"menu_item_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	Notes        *string `json:"notes"`
}

type CreateOrderRequest struct {
	Table_id string             `json:"table_id" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func now() time.Time {
	t, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	return t
}

// Create places a new PENDING order against a table, snapshotting each
// line's price from the current menu and marking the table occupied. The
// whole read-validate-write sequence runs in one transaction so a failed
// line leaves no partial state behind.
func (s *OrderService) Create(ctx context.Context, actor *models.User, req CreateOrderRequest) (*models.Order, error) {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpOrderCreate) {
		return nil, fmt.Errorf("create order: %w", apperrors.ErrForbidden)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order needs at least one item: %w", apperrors.ErrValidation)
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive: %w", apperrors.ErrValidation)
		}
	}

	var created *models.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		table, err := s.tables.GetByID(ctx, req.Table_id)
		if err != nil {
			return err
		}
		if table.Current_order_id != nil {
			return fmt.Errorf("table %s already has an active order: %w", table.Table_id, apperrors.ErrConflict)
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		total := 0.0
		for _, line := range req.Items {
			menuItem, err := s.menu.GetByID(ctx, line.Menu_item_id)
			if err != nil {
				return err
			}
			if menuItem.Is_available == nil || !*menuItem.Is_available {
				return fmt.Errorf("menu item %s is unavailable: %w", menuItem.Menu_item_id, apperrors.ErrValidation)
			}
			price := round2(*menuItem.Price)
			items = append(items, models.OrderItem{
				Menu_item_id:  menuItem.Menu_item_id,
				Quantity:      line.Quantity,
				Price_at_time: price,
				Notes:         line.Notes,
			})
			total += price * float64(line.Quantity)
		}

		order := models.Order{
			ID:           primitive.NewObjectID(),
			Table_id:     &table.Table_id,
			Items:        items,
			Status:       models.OrderPending,
			Total_amount: round2(total),
			Created_at:   now(),
			Updated_at:   now(),
		}
		order.Order_id = order.ID.Hex()
		switch actor.User_role {
		case models.RoleWaiter:
			order.Waiter_id = &actor.User_id
		case models.RoleCustomer:
			order.Customer_id = &actor.User_id
		}

		if err := s.orders.Create(ctx, &order); err != nil {
			return err
		}

		table.Status = models.TableOccupied
		table.Current_order_id = &order.Order_id
		table.Updated_at = now()
		if err := s.tables.Update(ctx, table); err != nil {
			return err
		}

		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order_created", fmt.Sprintf("order %s created for table %s, total %.2f", created.Order_id, *created.Table_id, created.Total_amount))
	return created, nil
}

// UpdateStatus applies one transition of the order state machine. Kitchen
// staff progress orders through the queue; only admins may cancel. Moving an
// order into a terminal state frees its table in the same transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *models.User, orderId string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", newStatus, apperrors.ErrValidation)
	}
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpOrderStatusWrite) {
		return nil, fmt.Errorf("update order status: %w", apperrors.ErrForbidden)
	}
	if newStatus == models.OrderCancelled && actor.User_role != models.RoleAdmin {
		return nil, fmt.Errorf("only admins may cancel orders: %w", apperrors.ErrForbidden)
	}

	var updated *models.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderId)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("order %s cannot go %s -> %s: %w", orderId, order.Status, newStatus, apperrors.ErrInvalidTransition)
		}

		order.Status = newStatus
		order.Updated_at = now()
		if err := s.orders.Update(ctx, order); err != nil {
			return err
		}

		if newStatus.Terminal() && order.Table_id != nil {
			if err := s.releaseTable(ctx, *order.Table_id, order.Order_id); err != nil {
				return err
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order_status_updated", fmt.Sprintf("order %s -> %s by %s", orderId, newStatus, actor.User_role))
	return updated, nil
}

// releaseTable clears the table's back-pointer and frees it, but only when
// the pointer still names the finished order. A direct status edit may have
// already repointed or kept it; those edits are not ours to undo. A table
// that no longer exists counts as already released.
func (s *OrderService) releaseTable(ctx context.Context, tableId, orderId string) error {
	table, err := s.tables.GetByID(ctx, tableId)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if table.Current_order_id == nil || *table.Current_order_id != orderId {
		return nil
	}
	table.Current_order_id = nil
	table.Status = models.TableAvailable
	table.Updated_at = now()
	return s.tables.Update(ctx, table)
}

// GetActive returns the kitchen queue: PENDING and PREPARING orders, oldest
// first. Order ids are ObjectID hexes and therefore time-ordered, which
// breaks ties between orders created within the same second.
func (s *OrderService) GetActive(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx, repository.OrderFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Created_at.Equal(orders[j].Created_at) {
			return orders[i].Order_id < orders[j].Order_id
		}
		return orders[i].Created_at.Before(orders[j].Created_at)
	})
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, orderId string) (*models.Order, error) {
	return s.orders.GetByID(ctx, orderId)
}

func (s *OrderService) List(ctx context.Context, status *models.OrderStatus) ([]models.Order, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", *status, apperrors.ErrValidation)
	}
	return s.orders.List(ctx, repository.OrderFilter{Status: status})
}
