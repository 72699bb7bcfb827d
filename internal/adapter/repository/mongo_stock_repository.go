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

type mongoStockRepository struct {
	collection *mongo.Collection
}

func NewMongoStockRepository(db *mongo.Database) repository.StockRepository {
	return &mongoStockRepository{
		collection: db.Collection("stocks"),
	}
}

func (r *mongoStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	if stock.ID == "" {
		stock.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if stock.CreatedAt.IsZero() {
		stock.CreatedAt = now
	}
	stock.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, stock)
	if err != nil {
		return errors.Internal("Failed to create stock item", err)
	}

	return nil
}

func (r *mongoStockRepository) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&stock)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Stock item", err)
		}
		return nil, errors.Internal("Failed to get stock item", err)
	}

	return &stock, nil
}

func (r *mongoStockRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Stock, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count stock items", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list stock items", err)
	}
	defer cursor.Close(ctx)

	var stocks []*entity.Stock
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, 0, errors.Internal("Failed to decode stock items", err)
	}

	return stocks, total, nil
}

func (r *mongoStockRepository) ListLowStock(ctx context.Context) ([]*entity.Stock, error) {
	// quantity <= reorderLevel, compared per document
	filter := bson.M{
		"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorderLevel"}},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "quantity", Value: 1}}))
	if err != nil {
		return nil, errors.Internal("Failed to list low stock items", err)
	}
	defer cursor.Close(ctx)

	var stocks []*entity.Stock
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, errors.Internal("Failed to decode low stock items", err)
	}

	return stocks, nil
}

func (r *mongoStockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	stock.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": stock.ID}, stock)
	if err != nil {
		return errors.Internal("Failed to update stock item", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Stock item", nil)
	}

	return nil
}

func (r *mongoStockRepository) AdjustQuantity(ctx context.Context, id string, delta int, clampAtZero bool) error {
	// Read-modify-write; concurrent adjustments to the same item can race.
	stock, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	quantity := stock.Quantity + delta
	if clampAtZero && quantity < 0 {
		quantity = 0
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"quantity":  quantity,
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return errors.Internal("Failed to adjust stock quantity", err)
	}

	return nil
}

func (r *mongoStockRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete stock item", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Stock item", nil)
	}

	return nil
}
