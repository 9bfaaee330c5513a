package repository

import (
	"context"

	"restaurant-pos/models"
)

// OrderFilter narrows order listings. ActiveOnly selects PENDING and
// PREPARING orders (the kitchen queue).
type OrderFilter struct {
	Status     *models.OrderStatus
	ActiveOnly bool
}

type MenuFilter struct {
	Category *models.Category
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type MenuRepository interface {
	Create(ctx context.Context, m *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Update(ctx context.Context, m *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MenuFilter) ([]models.MenuItem, error)
}

// TableRepository.Update and OrderRepository.Update are version-checked: the
// write only applies when the stored Version matches the entity's, and the
// stored Version is incremented. A mismatch yields ErrConflict.
type TableRepository interface {
	Create(ctx context.Context, t *models.Table) error
	GetByID(ctx context.Context, id string) (*models.Table, error)
	GetByNumber(ctx context.Context, number int) (*models.Table, error)
	Update(ctx context.Context, t *models.Table) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Table, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	List(ctx context.Context, f OrderFilter) ([]models.Order, error)
}

// TxManager delimits the read-modify-write sequence of a single request so
// concurrent writers against the same order or table cannot interleave
// partially.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
