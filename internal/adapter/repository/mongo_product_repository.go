package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "deletedAt": nil}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	query := bson.M{"deletedAt": nil}
	for key, value := range filter {
		query[key] = value
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}

	sortDoc := bson.D{{Key: "createdAt", Value: -1}}
	switch sort {
	case "price_asc":
		sortDoc = bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		sortDoc = bson.D{{Key: "price", Value: -1}}
	case "name":
		sortDoc = bson.D{{Key: "name", Value: 1}}
	}

	opts := options.Find().
		SetSort(sortDoc).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Internal("Failed to decode products", err)
	}

	return products, total, nil
}

func (r *mongoProductRepository) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error) {
	// Case-insensitive substring match. A dedicated search index would do
	// better at scale; a regex keeps parity with the catalog size here.
	filter := bson.M{
		"deletedAt": nil,
		"name":      bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to search products", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to search products", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Internal("Failed to decode products", err)
	}

	return products, total, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}

	return nil
}

func (r *mongoProductRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"deletedAt": now,
			"status":    "inactive",
			"updatedAt": now,
		},
	})
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}

	return nil
}
