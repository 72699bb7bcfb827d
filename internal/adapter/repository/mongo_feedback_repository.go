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

type mongoFeedbackRepository struct {
	collection *mongo.Collection
}

func NewMongoFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &mongoFeedbackRepository{
		collection: db.Collection("feedback"),
	}
}

func (r *mongoFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = now
	}
	feedback.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return errors.Internal("Failed to create feedback", err)
	}

	return nil
}

func (r *mongoFeedbackRepository) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Feedback", err)
		}
		return nil, errors.Internal("Failed to get feedback", err)
	}

	return &feedback, nil
}

func (r *mongoFeedbackRepository) List(ctx context.Context, limit, offset int) ([]*entity.Feedback, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Internal("Failed to count feedback", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list feedback", err)
	}
	defer cursor.Close(ctx)

	var items []*entity.Feedback
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, errors.Internal("Failed to decode feedback", err)
	}

	return items, total, nil
}

func (r *mongoFeedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	feedback.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": feedback.ID}, feedback)
	if err != nil {
		return errors.Internal("Failed to update feedback", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Feedback", nil)
	}

	return nil
}

func (r *mongoFeedbackRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete feedback", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Feedback", nil)
	}

	return nil
}
