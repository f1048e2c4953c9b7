package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

const workoutLogCollectionName = "workout_logs"

type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

func (r *mongoWorkoutLogRepository) Create(ctx context.Context, wl *domain.WorkoutLog) (primitive.ObjectID, error) {
	if wl.ClientID.IsZero() || wl.WorkoutID.IsZero() {
		return primitive.NilObjectID, errors.New("workout log requires clientId and workoutId")
	}

	wl.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if wl.StartedAt.IsZero() {
		wl.StartedAt = now
	}
	wl.UpdatedAt = now
	if wl.Sets == nil {
		// $push fails on a null array
		wl.Sets = []domain.SetLog{}
	}

	result, err := r.collection.InsertOne(ctx, wl)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

func (r *mongoWorkoutLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	return findOne[domain.WorkoutLog](ctx, r.collection, bson.M{"_id": id})
}

// UpsertSets writes each set in place when one with the same exercise and
// set number exists and appends it otherwise. Finished logs are not touched.
func (r *mongoWorkoutLogRepository) UpsertSets(ctx context.Context, logID primitive.ObjectID, sets []domain.SetLog) error {
	now := time.Now().UTC()
	for _, set := range sets {
		if set.LoggedAt.IsZero() {
			set.LoggedAt = now
		}
		match := bson.M{"exerciseId": set.ExerciseID, "setNumber": set.SetNumber}

		replaced, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": logID, "completedAt": bson.M{"$exists": false}, "sets": bson.M{"$elemMatch": match}},
			bson.M{"$set": bson.M{"sets.$": set, "updatedAt": now}},
		)
		if err != nil {
			return err
		}
		if replaced.MatchedCount > 0 {
			continue
		}

		pushed, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": logID, "completedAt": bson.M{"$exists": false}, "sets": bson.M{"$not": bson.M{"$elemMatch": match}}},
			bson.M{"$push": bson.M{"sets": set}, "$set": bson.M{"updatedAt": now}},
		)
		if err != nil {
			return err
		}
		if pushed.MatchedCount == 0 {
			return repository.ErrNotFound
		}
	}
	return nil
}

func (r *mongoWorkoutLogRepository) MarkCompleted(ctx context.Context, logID primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{"completedAt": at.UTC(), "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": logID, "completedAt": bson.M{"$exists": false}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "scheduledDate", Value: -1}}},
	})
}
