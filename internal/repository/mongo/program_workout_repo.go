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

const programWorkoutCollectionName = "program_workouts"

type mongoProgramWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoProgramWorkoutRepository(db *mongo.Database) repository.ProgramWorkoutRepository {
	return &mongoProgramWorkoutRepository{
		collection: db.Collection(programWorkoutCollectionName),
	}
}

func (r *mongoProgramWorkoutRepository) Create(ctx context.Context, workout *domain.ProgramWorkout) (primitive.ObjectID, error) {
	if workout.Name == "" || workout.ProgramID.IsZero() {
		return primitive.NilObjectID, errors.New("workout name and program ID are required")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

func (r *mongoProgramWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramWorkout, error) {
	return findOne[domain.ProgramWorkout](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoProgramWorkoutRepository) GetByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) ([]domain.ProgramWorkout, error) {
	if len(programIDs) == 0 {
		return []domain.ProgramWorkout{}, nil
	}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "programId", Value: 1},
		{Key: "orderIndex", Value: 1},
		{Key: "_id", Value: 1},
	})
	return findAll[domain.ProgramWorkout](ctx, r.collection, bson.M{"programId": bson.M{"$in": programIDs}}, findOptions)
}

// Update replaces the editable fields. Program and trainer never change.
func (r *mongoProgramWorkoutRepository) Update(ctx context.Context, workout *domain.ProgramWorkout) error {
	if workout.ID.IsZero() {
		return errors.New("workout ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"name":            workout.Name,
			"notes":           workout.Notes,
			"dayOfWeek":       workout.DayOfWeek,
			"weekNumber":      workout.WeekNumber,
			"parentWorkoutId": workout.ParentWorkoutID,
			"orderIndex":      workout.OrderIndex,
			"exercises":       workout.Exercises,
			"updatedAt":       time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": workout.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the workout together with its finishers.
func (r *mongoProgramWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"_id": id},
		bson.M{"parentWorkoutId": id},
	}}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureProgramWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "programId", Value: 1}, {Key: "orderIndex", Value: 1}}},
		{
			Keys:    bson.D{{Key: "parentWorkoutId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
}
