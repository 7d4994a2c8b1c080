package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

type OrderRepo struct {
	collection *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{
		collection: db.Collection("orders"),
	}
}

func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil: %w", api.ErrInvalidInput)
	}

	if _, err := r.collection.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("cannot create order: %v: %w", err, api.ErrStoreUnavailable)
	}

	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get order: %v: %w", err, api.ErrStoreUnavailable)
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list orders: %v: %w", err, api.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	var result []*order.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode orders: %v: %w", err, api.ErrStoreUnavailable)
	}

	return result, nil
}

// SetReadiness flips is_ready without touching the rest of the document,
// so concurrent item-level patches are not overwritten.
func (r *OrderRepo) SetReadiness(ctx context.Context, id uuid.UUID, isReady bool) error {
	if id == uuid.Nil {
		return fmt.Errorf("order id is required: %w", api.ErrInvalidInput)
	}

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"is_ready":   isReady,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update order readiness: %v: %w", err, api.ErrStoreUnavailable)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id, api.ErrNotFound)
	}

	return nil
}

// SetItemStatus patches a single cart item's status with an
// array-filter update, so one staff member's change cannot clobber
// another item edited concurrently on the same order.
func (r *OrderRepo) SetItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error {
	if orderID == uuid.Nil || itemID == uuid.Nil {
		return fmt.Errorf("order id and item id are required: %w", api.ErrInvalidInput)
	}
	if !order.ValidStatus(status) {
		return fmt.Errorf("unknown status %q: %w", status, api.ErrInvalidInput)
	}

	now := time.Now()
	set := bson.M{
		"cart.$[it].status": status,
		"updated_at":        now,
	}
	if status == order.StatusDelivered {
		set["cart.$[it].delivered_at"] = now
	}

	filter := bson.M{"_id": orderID}
	update := bson.M{"$set": set}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"it.id": itemID}},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("cannot update item status: %v: %w", err, api.ErrStoreUnavailable)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", orderID, api.ErrNotFound)
	}

	return nil
}
