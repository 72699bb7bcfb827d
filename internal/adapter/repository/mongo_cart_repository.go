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

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) repository.CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

// GetByUserID returns the user's cart, creating an empty one on first use.
func (r *mongoCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, errors.Internal("Failed to get cart", err)
	}

	now := time.Now()
	cart = entity.Cart{
		ID:        primitive.NewObjectID().Hex(),
		UserID:    userID,
		Items:     []entity.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, &cart); err != nil {
		return nil, errors.Internal("Failed to create cart", err)
	}

	return &cart, nil
}

func (r *mongoCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *mongoCartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{
		"$set": bson.M{
			"items":     []entity.CartItem{},
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return errors.Internal("Failed to clear cart", err)
	}

	return nil
}
