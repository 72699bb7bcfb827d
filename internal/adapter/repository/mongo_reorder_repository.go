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

type mongoReorderRepository struct {
	collection *mongo.Collection
}

func NewMongoReorderRepository(db *mongo.Database) repository.ReorderRepository {
	return &mongoReorderRepository{
		collection: db.Collection("reorder_requests"),
	}
}

func (r *mongoReorderRepository) Create(ctx context.Context, req *entity.ReorderRequest) error {
	if req.ID == "" {
		req.ID = primitive.NewObjectID().Hex()
	}
	if req.Replies == nil {
		req.Replies = []entity.ReorderReply{}
	}

	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return errors.Internal("Failed to create reorder request", err)
	}

	return nil
}

func (r *mongoReorderRepository) GetByID(ctx context.Context, id string) (*entity.ReorderRequest, error) {
	var req entity.ReorderRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Reorder request", err)
		}
		return nil, errors.Internal("Failed to get reorder request", err)
	}

	return &req, nil
}

func (r *mongoReorderRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.ReorderRequest, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reorder requests", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list reorder requests", err)
	}
	defer cursor.Close(ctx)

	var reqs []*entity.ReorderRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, 0, errors.Internal("Failed to decode reorder requests", err)
	}

	return reqs, total, nil
}

func (r *mongoReorderRepository) Update(ctx context.Context, req *entity.ReorderRequest) error {
	req.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return errors.Internal("Failed to update reorder request", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Reorder request", nil)
	}

	return nil
}

func (r *mongoReorderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete reorder request", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Reorder request", nil)
	}

	return nil
}
