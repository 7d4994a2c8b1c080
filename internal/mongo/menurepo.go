package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/menu"
)

type MenuRepo struct {
	collection *mongo.Collection
}

func NewMenuRepo(db *mongo.Database) *MenuRepo {
	return &MenuRepo{
		collection: db.Collection("menus"),
	}
}

func (r *MenuRepo) Create(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is nil: %w", api.ErrInvalidInput)
	}

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("cannot create menu item: %v: %w", err, api.ErrStoreUnavailable)
	}

	return nil
}

func (r *MenuRepo) Get(ctx context.Context, id uuid.UUID) (*menu.MenuItem, error) {
	var item menu.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get menu item: %v: %w", err, api.ErrStoreUnavailable)
	}
	return &item, nil
}

func (r *MenuRepo) List(ctx context.Context) ([]*menu.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list menu items: %v: %w", err, api.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	var result []*menu.MenuItem
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode menu items: %v: %w", err, api.ErrStoreUnavailable)
	}

	return result, nil
}

func (r *MenuRepo) FindByName(ctx context.Context, name string) (*menu.MenuItem, error) {
	var item menu.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot find menu item by name: %v: %w", err, api.ErrStoreUnavailable)
	}
	return &item, nil
}

func (r *MenuRepo) Save(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is nil: %w", api.ErrInvalidInput)
	}

	filter := bson.M{"_id": item.ID}
	update := bson.M{"$set": item}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update menu item: %v: %w", err, api.ErrStoreUnavailable)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, api.ErrNotFound)
	}

	return nil
}

func (r *MenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("cannot delete menu item: %v: %w", err, api.ErrStoreUnavailable)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id, api.ErrNotFound)
	}

	return nil
}
