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

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *mongoOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	return &order, nil
}

func (r *mongoOrderRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error) {
	query := bson.M{}
	for key, value := range filter {
		query[key] = value
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list orders", err)
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, errors.Internal("Failed to decode orders", err)
	}

	return orders, total, nil
}

func (r *mongoOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.List(ctx, map[string]interface{}{"userId": userID}, limit, offset)
}

func (r *mongoOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Order", nil)
	}

	return nil
}

func (r *mongoOrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Internal("Failed to count orders", err)
	}

	return total, nil
}

func (r *mongoOrderRepository) SumTotalByStatus(ctx context.Context, status string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": status}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Internal("Failed to sum order totals", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, errors.Internal("Failed to decode order totals", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
