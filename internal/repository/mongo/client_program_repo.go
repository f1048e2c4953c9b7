package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

const clientProgramCollectionName = "client_programs"

type mongoClientProgramRepository struct {
	collection *mongo.Collection
}

func NewMongoClientProgramRepository(db *mongo.Database) repository.ClientProgramRepository {
	return &mongoClientProgramRepository{
		collection: db.Collection(clientProgramCollectionName),
	}
}

func (r *mongoClientProgramRepository) Create(ctx context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error) {
	if cp.ClientID.IsZero() || cp.ProgramID.IsZero() {
		return primitive.NilObjectID, errors.New("client program requires clientId and programId")
	}
	if cp.StartDate.IsZero() {
		return primitive.NilObjectID, errors.New("client program requires a start date")
	}

	cp.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	cp.AssignedAt = now
	cp.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, cp)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

func (r *mongoClientProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClientProgram, error) {
	return findOne[domain.ClientProgram](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoClientProgramRepository) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	return findAll[domain.ClientProgram](ctx, r.collection, bson.M{"clientId": clientID}, findOptions)
}

// GetActiveByClientID returns current and future active assignments, oldest
// start first.
func (r *mongoClientProgramRepository) GetActiveByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}, {Key: "_id", Value: 1}})
	return findAll[domain.ClientProgram](ctx, r.collection, bson.M{"clientId": clientID, "isActive": true}, findOptions)
}

func (r *mongoClientProgramRepository) GetActiveClientIDsByProgramID(ctx context.Context, programID primitive.ObjectID) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "clientId", bson.M{"programId": programID, "isActive": true})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected clientId type %T", v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *mongoClientProgramRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoClientProgramRepository) DeactivateOthers(ctx context.Context, clientID, keep primitive.ObjectID) error {
	filter := bson.M{
		"clientId": clientID,
		"isActive": true,
		"_id":      bson.M{"$ne": keep},
	}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}

	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUpdateFailed, err)
	}
	return nil
}

func EnsureClientProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "startDate", Value: 1}}},
		{Keys: bson.D{{Key: "programId", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "trainerId", Value: 1}}},
	})
}
