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

type mongoFinanceRepository struct {
	collection *mongo.Collection
}

func NewMongoFinanceRepository(db *mongo.Database) repository.FinanceRepository {
	return &mongoFinanceRepository{
		collection: db.Collection("finance"),
	}
}

func (r *mongoFinanceRepository) Create(ctx context.Context, entry *entity.FinanceEntry) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to create finance entry", err)
	}

	return nil
}

func (r *mongoFinanceRepository) GetByID(ctx context.Context, id string) (*entity.FinanceEntry, error) {
	var entry entity.FinanceEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Finance entry", err)
		}
		return nil, errors.Internal("Failed to get finance entry", err)
	}

	return &entry, nil
}

func dateFilter(entryType string, from, to time.Time) bson.M {
	filter := bson.M{}
	if entryType != "" {
		filter["type"] = entryType
	}
	dateRange := bson.M{}
	if !from.IsZero() {
		dateRange["$gte"] = from
	}
	if !to.IsZero() {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}
	return filter
}

func (r *mongoFinanceRepository) List(ctx context.Context, entryType string, from, to time.Time, limit, offset int) ([]*entity.FinanceEntry, int64, error) {
	filter := dateFilter(entryType, from, to)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count finance entries", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list finance entries", err)
	}
	defer cursor.Close(ctx)

	var entries []*entity.FinanceEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, errors.Internal("Failed to decode finance entries", err)
	}

	return entries, total, nil
}

func (r *mongoFinanceRepository) SumByType(ctx context.Context, entryType string, from, to time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dateFilter(entryType, from, to)}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Internal("Failed to sum finance entries", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, errors.Internal("Failed to decode finance totals", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

func (r *mongoFinanceRepository) Update(ctx context.Context, entry *entity.FinanceEntry) error {
	entry.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return errors.Internal("Failed to update finance entry", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Finance entry", nil)
	}

	return nil
}

func (r *mongoFinanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete finance entry", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Finance entry", nil)
	}

	return nil
}
