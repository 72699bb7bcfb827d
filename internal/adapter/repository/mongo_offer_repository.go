package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type mongoOfferRepository struct {
	collection *mongo.Collection
}

func NewMongoOfferRepository(db *mongo.Database) repository.OfferRepository {
	return &mongoOfferRepository{
		collection: db.Collection("supplier_offers"),
	}
}

func (r *mongoOfferRepository) Create(ctx context.Context, offer *entity.SupplierOffer) error {
	if offer.ID == "" {
		offer.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = now
	}
	offer.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		return errors.Internal("Failed to create supplier offer", err)
	}

	return nil
}

func (r *mongoOfferRepository) GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error) {
	var offer entity.SupplierOffer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Supplier offer", err)
		}
		return nil, errors.Internal("Failed to get supplier offer", err)
	}

	return &offer, nil
}

func (r *mongoOfferRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	return r.list(ctx, filter, limit, offset)
}

func (r *mongoOfferRepository) ListBySupplierID(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	return r.list(ctx, bson.M{"supplierId": supplierID}, limit, offset)
}

func (r *mongoOfferRepository) list(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count supplier offers", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list supplier offers", err)
	}
	defer cursor.Close(ctx)

	var offers []*entity.SupplierOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, 0, errors.Internal("Failed to decode supplier offers", err)
	}

	return offers, total, nil
}

func (r *mongoOfferRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, errors.Internal("Failed to count supplier offers", err)
	}

	return total, nil
}

func (r *mongoOfferRepository) Update(ctx context.Context, offer *entity.SupplierOffer) error {
	offer.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": offer.ID}, offer)
	if err != nil {
		return errors.Internal("Failed to update supplier offer", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Supplier offer", nil)
	}

	return nil
}

func (r *mongoOfferRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete supplier offer", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Supplier offer", nil)
	}

	return nil
}
