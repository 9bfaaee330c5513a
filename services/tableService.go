package services

import (
	"context"
	"fmt"

	"restaurant-pos/apperrors"
	"restaurant-pos/helpers"
	"restaurant-pos/logger"
	"restaurant-pos/models"
	"restaurant-pos/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TableService struct {
	tables repository.TableRepository
	genQR  func(tableId string) (string, error)
	log    *logger.Logger
}

func NewTableService(tables repository.TableRepository, log *logger.Logger) *TableService {
	return &TableService{tables: tables, genQR: helpers.GenerateTableQR, log: log}
}

// Create registers a table and attaches a QR artifact pointing at its menu.
// QR generation is a non-critical side effect: on failure the table is
// created without one.
func (s *TableService) Create(ctx context.Context, actor *models.User, table models.Table) (*models.Table, error) {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpTableWrite) {
		return nil, fmt.Errorf("create table: %w", apperrors.ErrForbidden)
	}
	if table.Table_number == nil || table.Capacity == nil || *table.Capacity <= 0 {
		return nil, fmt.Errorf("table needs a number and a positive capacity: %w", apperrors.ErrValidation)
	}
	if _, err := s.tables.GetByNumber(ctx, *table.Table_number); err == nil {
		return nil, fmt.Errorf("table number %d already exists: %w", *table.Table_number, apperrors.ErrConflict)
	}

	table.ID = primitive.NewObjectID()
	table.Table_id = table.ID.Hex()
	table.Status = models.TableAvailable
	table.Current_order_id = nil
	table.Created_at = now()
	table.Updated_at = now()
	table.Version = 0

	if qr, err := s.genQR(table.Table_id); err != nil {
		s.log.Warn("qr_generation_failed", fmt.Sprintf("table %s: %v", table.Table_id, err))
	} else {
		table.Qr_code = &qr
	}

	if err := s.tables.Create(ctx, &table); err != nil {
		return nil, err
	}
	s.log.Info("table_created", fmt.Sprintf("table %d (%s) created", *table.Table_number, table.Table_id))
	return &table, nil
}

// Update edits number and capacity. Status changes go through SetStatus and
// occupancy is owned by the order engine.
func (s *TableService) Update(ctx context.Context, actor *models.User, tableId string, number *int, capacity *int) (*models.Table, error) {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpTableWrite) {
		return nil, fmt.Errorf("update table: %w", apperrors.ErrForbidden)
	}
	if capacity != nil && *capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive: %w", apperrors.ErrValidation)
	}

	table, err := s.tables.GetByID(ctx, tableId)
	if err != nil {
		return nil, err
	}
	if number != nil && (table.Table_number == nil || *number != *table.Table_number) {
		if _, err := s.tables.GetByNumber(ctx, *number); err == nil {
			return nil, fmt.Errorf("table number %d already exists: %w", *number, apperrors.ErrConflict)
		}
		table.Table_number = number
	}
	if capacity != nil {
		table.Capacity = capacity
	}
	table.Updated_at = now()
	if err := s.tables.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Delete refuses while the table still carries an open order; the order must
// reach a terminal state first so it can free the table it references.
func (s *TableService) Delete(ctx context.Context, actor *models.User, tableId string) error {
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpTableWrite) {
		return fmt.Errorf("delete table: %w", apperrors.ErrForbidden)
	}
	table, err := s.tables.GetByID(ctx, tableId)
	if err != nil {
		return err
	}
	if table.Current_order_id != nil {
		return fmt.Errorf("table %s still has an open order: %w", tableId, apperrors.ErrConflict)
	}
	return s.tables.Delete(ctx, tableId)
}

// SetStatus is the direct waiter/admin status edit. It moves freely among
// the table statuses and never touches Current_order_id; only the order
// engine sets or clears that reference.
func (s *TableService) SetStatus(ctx context.Context, actor *models.User, tableId string, status models.TableStatus) (*models.Table, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown table status %q: %w", status, apperrors.ErrValidation)
	}
	if actor == nil || !helpers.Authorize(actor.User_role, helpers.OpTableStatusWrite) {
		return nil, fmt.Errorf("set table status: %w", apperrors.ErrForbidden)
	}

	table, err := s.tables.GetByID(ctx, tableId)
	if err != nil {
		return nil, err
	}
	table.Status = status
	table.Updated_at = now()
	if err := s.tables.Update(ctx, table); err != nil {
		return nil, err
	}
	s.log.Info("table_status_updated", fmt.Sprintf("table %s -> %s by %s", tableId, status, actor.User_role))
	return table, nil
}

func (s *TableService) Get(ctx context.Context, tableId string) (*models.Table, error) {
	return s.tables.GetByID(ctx, tableId)
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.tables.List(ctx)
}
