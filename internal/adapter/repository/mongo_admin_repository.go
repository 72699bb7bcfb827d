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

type mongoAdminRepository struct {
	collection *mongo.Collection
}

func NewMongoAdminRepository(db *mongo.Database) repository.AdminRepository {
	return &mongoAdminRepository{
		collection: db.Collection("admins"),
	}
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.ID == "" {
		admin.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Admin email already in use")
		}
		return errors.Internal("Failed to create admin", err)
	}

	return nil
}

func (r *mongoAdminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}

	return &admin, nil
}

func (r *mongoAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin by email", err)
	}

	return &admin, nil
}

func (r *mongoAdminRepository) List(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Internal("Failed to count admins", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list admins", err)
	}
	defer cursor.Close(ctx)

	var admins []*entity.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, 0, errors.Internal("Failed to decode admins", err)
	}

	return admins, total, nil
}

func (r *mongoAdminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	admin.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": admin.ID}, admin)
	if err != nil {
		return errors.Internal("Failed to update admin", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Admin", nil)
	}

	return nil
}

func (r *mongoAdminRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete admin", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Admin", nil)
	}

	return nil
}
