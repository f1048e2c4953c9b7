package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

const completionCollectionName = "workout_completions"

type mongoCompletionRepository struct {
	collection *mongo.Collection
}

func NewMongoCompletionRepository(db *mongo.Database) repository.CompletionRepository {
	return &mongoCompletionRepository{
		collection: db.Collection(completionCollectionName),
	}
}

// Create upserts on (clientId, workoutId, clientProgramId, scheduledDate) so
// that a retried request does not produce a second row.
func (r *mongoCompletionRepository) Create(ctx context.Context, c *domain.WorkoutCompletion) (primitive.ObjectID, error) {
	if c.ClientID.IsZero() || c.WorkoutID.IsZero() || c.ScheduledDate == "" {
		return primitive.NilObjectID, errors.New("completion requires clientId, workoutId and scheduledDate")
	}
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now().UTC()
	}

	filter := bson.M{
		"clientId":        c.ClientID,
		"workoutId":       c.WorkoutID,
		"clientProgramId": c.ClientProgramID,
		"scheduledDate":   c.ScheduledDate,
	}
	onInsert := bson.M{
		"_id":         primitive.NewObjectID(),
		"completedAt": c.CompletedAt,
	}
	if c.OccurrenceID != "" {
		onInsert["occurrenceId"] = c.OccurrenceID
	}
	if c.WorkoutLogID != nil {
		onInsert["workoutLogId"] = c.WorkoutLogID
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if err != nil {
		return primitive.NilObjectID, err
	}
	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		c.ID = id
		return id, nil
	}

	existing, err := findOne[domain.WorkoutCompletion](ctx, r.collection, filter)
	if err != nil {
		return primitive.NilObjectID, err
	}
	*c = *existing
	return existing.ID, nil
}

func (r *mongoCompletionRepository) GetInRange(ctx context.Context, clientID primitive.ObjectID, from, to string) ([]domain.WorkoutCompletion, error) {
	filter := bson.M{
		"clientId":      clientID,
		"scheduledDate": bson.M{"$gte": from, "$lte": to},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	return findAll[domain.WorkoutCompletion](ctx, r.collection, filter, findOptions)
}

func EnsureCompletionIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "clientId", Value: 1},
				{Key: "workoutId", Value: 1},
				{Key: "clientProgramId", Value: 1},
				{Key: "scheduledDate", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "scheduledDate", Value: 1}}},
	})
}
