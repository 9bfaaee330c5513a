package repository

import (
	"context"
	"fmt"
	"sync"

	"restaurant-pos/apperrors"
	"restaurant-pos/models"
)

// MemoryStore is an in-memory implementation of all repositories, used by
// tests and local development without a running mongo instance.
type MemoryStore struct {
	mu           sync.RWMutex
	usersByID    map[string]models.User
	menuByID     map[string]models.MenuItem
	tablesByID   map[string]models.Table
	ordersByID   map[string]models.Order
	orderInserts []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByID:  make(map[string]models.User),
		menuByID:   make(map[string]models.MenuItem),
		tablesByID: make(map[string]models.Table),
		ordersByID: make(map[string]models.Order),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v, ok := ctx.Value(txKey{}).(bool)
	return ok && v
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}

func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}

func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}

func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

func copyOrder(o models.Order) models.Order {
	cp := o
	cp.Items = make([]models.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return cp
}

// memSnapshot captures the store's state at the start of a transaction.
// Stored values are replaced wholesale on every write, never mutated in
// place, so shallow map copies are enough to restore them.
type memSnapshot struct {
	users        map[string]models.User
	menu         map[string]models.MenuItem
	tables       map[string]models.Table
	orders       map[string]models.Order
	orderInserts []string
}

func (m *MemoryStore) snapshot() memSnapshot {
	s := memSnapshot{
		users:        make(map[string]models.User, len(m.usersByID)),
		menu:         make(map[string]models.MenuItem, len(m.menuByID)),
		tables:       make(map[string]models.Table, len(m.tablesByID)),
		orders:       make(map[string]models.Order, len(m.ordersByID)),
		orderInserts: append([]string(nil), m.orderInserts...),
	}
	for k, v := range m.usersByID {
		s.users[k] = v
	}
	for k, v := range m.menuByID {
		s.menu[k] = v
	}
	for k, v := range m.tablesByID {
		s.tables[k] = v
	}
	for k, v := range m.ordersByID {
		s.orders[k] = v
	}
	return s
}

func (m *MemoryStore) restore(s memSnapshot) {
	m.usersByID = s.users
	m.menuByID = s.menu
	m.tablesByID = s.tables
	m.ordersByID = s.orders
	m.orderInserts = s.orderInserts
}

// MemoryTx emulates a serializable transaction boundary with the store's
// write lock. Repositories skip their own locking inside the transaction,
// and a failed closure rolls the store back to its pre-transaction state.
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	snap := tx.store.snapshot()
	ctx = context.WithValue(ctx, txKey{}, true)
	if err := fn(ctx); err != nil {
		tx.store.restore(snap)
		return err
	}
	return nil
}

var _ TxManager = (*MemoryTx)(nil)

// --- users ---

type MemoryUsers struct{ store *MemoryStore }

func NewMemoryUsers(store *MemoryStore) *MemoryUsers { return &MemoryUsers{store: store} }

var _ UserRepository = (*MemoryUsers)(nil)

func (r *MemoryUsers) Create(ctx context.Context, u *models.User) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.usersByID[u.User_id] = *u
	return nil
}

func (r *MemoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	u, ok := r.store.usersByID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	cp := u
	return &cp, nil
}

func (r *MemoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	for _, u := range r.store.usersByID {
		if u.Email != nil && *u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
}

func (r *MemoryUsers) Update(ctx context.Context, u *models.User) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.usersByID[u.User_id]; !ok {
		return fmt.Errorf("user %s: %w", u.User_id, apperrors.ErrNotFound)
	}
	r.store.usersByID[u.User_id] = *u
	return nil
}

func (r *MemoryUsers) List(ctx context.Context) ([]models.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]models.User, 0, len(r.store.usersByID))
	for _, u := range r.store.usersByID {
		out = append(out, u)
	}
	return out, nil
}

// --- menu ---

type MemoryMenu struct{ store *MemoryStore }

func NewMemoryMenu(store *MemoryStore) *MemoryMenu { return &MemoryMenu{store: store} }

var _ MenuRepository = (*MemoryMenu)(nil)

func (r *MemoryMenu) Create(ctx context.Context, m *models.MenuItem) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.menuByID[m.Menu_item_id] = *m
	return nil
}

func (r *MemoryMenu) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	m, ok := r.store.menuByID[id]
	if !ok {
		return nil, fmt.Errorf("menu item %s: %w", id, apperrors.ErrNotFound)
	}
	cp := m
	return &cp, nil
}

func (r *MemoryMenu) Update(ctx context.Context, m *models.MenuItem) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.menuByID[m.Menu_item_id]; !ok {
		return fmt.Errorf("menu item %s: %w", m.Menu_item_id, apperrors.ErrNotFound)
	}
	r.store.menuByID[m.Menu_item_id] = *m
	return nil
}

func (r *MemoryMenu) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.menuByID[id]; !ok {
		return fmt.Errorf("menu item %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.menuByID, id)
	return nil
}

func (r *MemoryMenu) List(ctx context.Context, f MenuFilter) ([]models.MenuItem, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]models.MenuItem, 0, len(r.store.menuByID))
	for _, m := range r.store.menuByID {
		if f.Category != nil && m.Category != *f.Category {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// --- tables ---

type MemoryTables struct{ store *MemoryStore }

func NewMemoryTables(store *MemoryStore) *MemoryTables { return &MemoryTables{store: store} }

var _ TableRepository = (*MemoryTables)(nil)

func (r *MemoryTables) Create(ctx context.Context, t *models.Table) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.tablesByID[t.Table_id] = *t
	return nil
}

func (r *MemoryTables) GetByID(ctx context.Context, id string) (*models.Table, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	t, ok := r.store.tablesByID[id]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", id, apperrors.ErrNotFound)
	}
	cp := t
	return &cp, nil
}

func (r *MemoryTables) GetByNumber(ctx context.Context, number int) (*models.Table, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	for _, t := range r.store.tablesByID {
		if t.Table_number != nil && *t.Table_number == number {
			cp := t
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("table number %d: %w", number, apperrors.ErrNotFound)
}

func (r *MemoryTables) Update(ctx context.Context, t *models.Table) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	stored, ok := r.store.tablesByID[t.Table_id]
	if !ok {
		return fmt.Errorf("table %s: %w", t.Table_id, apperrors.ErrNotFound)
	}
	if stored.Version != t.Version {
		return fmt.Errorf("table %s version %d: %w", t.Table_id, t.Version, apperrors.ErrConflict)
	}
	t.Version++
	r.store.tablesByID[t.Table_id] = *t
	return nil
}

func (r *MemoryTables) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.tablesByID[id]; !ok {
		return fmt.Errorf("table %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.tablesByID, id)
	return nil
}

func (r *MemoryTables) List(ctx context.Context) ([]models.Table, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]models.Table, 0, len(r.store.tablesByID))
	for _, t := range r.store.tablesByID {
		out = append(out, t)
	}
	return out, nil
}

// --- orders ---

type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (r *MemoryOrders) Create(ctx context.Context, o *models.Order) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.ordersByID[o.Order_id] = copyOrder(*o)
	r.store.orderInserts = append(r.store.orderInserts, o.Order_id)
	return nil
}

func (r *MemoryOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	o, ok := r.store.ordersByID[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (r *MemoryOrders) Update(ctx context.Context, o *models.Order) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	stored, ok := r.store.ordersByID[o.Order_id]
	if !ok {
		return fmt.Errorf("order %s: %w", o.Order_id, apperrors.ErrNotFound)
	}
	if stored.Version != o.Version {
		return fmt.Errorf("order %s version %d: %w", o.Order_id, o.Version, apperrors.ErrConflict)
	}
	o.Version++
	r.store.ordersByID[o.Order_id] = copyOrder(*o)
	return nil
}

func (r *MemoryOrders) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]models.Order, 0, len(r.store.ordersByID))
	for _, id := range r.store.orderInserts {
		o := r.store.ordersByID[id]
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		if f.ActiveOnly && !o.Status.Active() {
			continue
		}
		out = append(out, copyOrder(o))
	}
	return out, nil
}
