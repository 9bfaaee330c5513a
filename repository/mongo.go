package repository

import (
	"context"
	"fmt"

	"restaurant-pos/apperrors"
	"restaurant-pos/database"
	"restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo-backed repositories. Updates on tables and orders filter on the
// stored version, so a concurrent writer that already bumped it matches
// nothing and surfaces ErrConflict instead of silently losing the write.

type MongoUsers struct{ col *mongo.Collection }

func NewMongoUsers(client *mongo.Client) *MongoUsers {
	return &MongoUsers{col: database.OpenCollection(client, "user")}
}

var _ UserRepository = (*MongoUsers)(nil)

func (r *MongoUsers) Create(ctx context.Context, u *models.User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *MongoUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"user_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoUsers) Update(ctx context.Context, u *models.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"user_id": u.User_id}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", u.User_id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUsers) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type MongoMenu struct{ col *mongo.Collection }

func NewMongoMenu(client *mongo.Client) *MongoMenu {
	return &MongoMenu{col: database.OpenCollection(client, "menuItem")}
}

var _ MenuRepository = (*MongoMenu)(nil)

func (r *MongoMenu) Create(ctx context.Context, m *models.MenuItem) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MongoMenu) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var m models.MenuItem
	if err := r.col.FindOne(ctx, bson.M{"menu_item_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("menu item %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}

func (r *MongoMenu) Update(ctx context.Context, m *models.MenuItem) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"menu_item_id": m.Menu_item_id}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("menu item %s: %w", m.Menu_item_id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoMenu) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"menu_item_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoMenu) List(ctx context.Context, f MenuFilter) ([]models.MenuItem, error) {
	filter := bson.M{}
	if f.Category != nil {
		filter["category"] = *f.Category
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type MongoTables struct{ col *mongo.Collection }

func NewMongoTables(client *mongo.Client) *MongoTables {
	return &MongoTables{col: database.OpenCollection(client, "table")}
}

var _ TableRepository = (*MongoTables)(nil)

func (r *MongoTables) Create(ctx context.Context, t *models.Table) error {
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *MongoTables) GetByID(ctx context.Context, id string) (*models.Table, error) {
	var t models.Table
	if err := r.col.FindOne(ctx, bson.M{"table_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("table %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoTables) GetByNumber(ctx context.Context, number int) (*models.Table, error) {
	var t models.Table
	if err := r.col.FindOne(ctx, bson.M{"table_number": number}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("table number %d: %w", number, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoTables) Update(ctx context.Context, t *models.Table) error {
	next := *t
	next.Version = t.Version + 1
	res, err := r.col.ReplaceOne(ctx, bson.M{"table_id": t.Table_id, "version": t.Version}, &next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := r.col.CountDocuments(ctx, bson.M{"table_id": t.Table_id})
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("table %s: %w", t.Table_id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("table %s: %w", t.Table_id, apperrors.ErrConflict)
	}
	t.Version = next.Version
	return nil
}

func (r *MongoTables) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"table_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("table %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoTables) List(ctx context.Context) ([]models.Table, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "table_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

type MongoOrders struct{ col *mongo.Collection }

func NewMongoOrders(client *mongo.Client) *MongoOrders {
	return &MongoOrders{col: database.OpenCollection(client, "order")}
}

var _ OrderRepository = (*MongoOrders)(nil)

func (r *MongoOrders) Create(ctx context.Context, o *models.Order) error {
	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *MongoOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.col.FindOne(ctx, bson.M{"order_id": id}).Decode(&o); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

func (r *MongoOrders) Update(ctx context.Context, o *models.Order) error {
	next := *o
	next.Version = o.Version + 1
	res, err := r.col.ReplaceOne(ctx, bson.M{"order_id": o.Order_id, "version": o.Version}, &next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := r.col.CountDocuments(ctx, bson.M{"order_id": o.Order_id})
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("order %s: %w", o.Order_id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("order %s: %w", o.Order_id, apperrors.ErrConflict)
	}
	o.Version = next.Version
	return nil
}

func (r *MongoOrders) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	filter := bson.M{}
	if f.Status != nil {
		filter["status"] = *f.Status
	}
	if f.ActiveOnly {
		filter["status"] = bson.M{"$in": bson.A{models.OrderPending, models.OrderPreparing}}
	}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// MongoTx runs fn inside a mongo session transaction so the order write and
// its table side effect commit together.
type MongoTx struct{ client *mongo.Client }

func NewMongoTx(client *mongo.Client) *MongoTx { return &MongoTx{client: client} }

var _ TxManager = (*MongoTx)(nil)

func (tx *MongoTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := tx.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
