package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/qr"
)

type QRCodeRepo struct {
	collection *mongo.Collection
}

func NewQRCodeRepo(db *mongo.Database) *QRCodeRepo {
	return &QRCodeRepo{
		collection: db.Collection("qr_codes"),
	}
}

func (r *QRCodeRepo) Create(ctx context.Context, code *qr.Code) error {
	if code == nil {
		return fmt.Errorf("qr code is nil: %w", api.ErrInvalidInput)
	}

	if _, err := r.collection.InsertOne(ctx, code); err != nil {
		return fmt.Errorf("cannot record qr code: %v: %w", err, api.ErrStoreUnavailable)
	}

	return nil
}

func (r *QRCodeRepo) FindByValue(ctx context.Context, value string) (*qr.Code, error) {
	var code qr.Code
	err := r.collection.FindOne(ctx, bson.M{"code": value}).Decode(&code)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot look up qr code: %v: %w", err, api.ErrStoreUnavailable)
	}
	return &code, nil
}
