package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"

	"alcyxob/fitness-coach/internal/repository"
)

const (
	defaultTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

// ConnectDB connects to MongoDB and verifies the primary is reachable.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), pingTimeout)
		defer disconnectCancel()
		if dErr := client.Disconnect(disconnectCtx); dErr != nil {
			log.Warnf("disconnect after failed ping: %s", dErr)
		}
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. It keeps going when
// one collection fails and returns all failures together.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var err error
	err = multierr.Append(err, EnsureUserIndexes(ctx, db.Collection(userCollectionName)))
	err = multierr.Append(err, EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName)))
	err = multierr.Append(err, EnsureProgramIndexes(ctx, db.Collection(programCollectionName)))
	err = multierr.Append(err, EnsureProgramWorkoutIndexes(ctx, db.Collection(programWorkoutCollectionName)))
	err = multierr.Append(err, EnsureClientProgramIndexes(ctx, db.Collection(clientProgramCollectionName)))
	err = multierr.Append(err, EnsureCompletionIndexes(ctx, db.Collection(completionCollectionName)))
	err = multierr.Append(err, EnsureWorkoutLogIndexes(ctx, db.Collection(workoutLogCollectionName)))
	err = multierr.Append(err, EnsureProgressPhotoIndexes(ctx, db.Collection(progressPhotoCollectionName)))
	return err
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) error {
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	log.Debugf("indexes ensured for collection %s", collection.Name())
	return nil
}

// findAll runs a query and decodes every document. It never returns a nil
// slice on success.
func findAll[T any](ctx context.Context, collection *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// findOne decodes a single document, mapping a miss to repository.ErrNotFound.
func findOne[T any](ctx context.Context, collection *mongo.Collection, filter any) (*T, error) {
	var doc T
	if err := collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func insertedObjectID(result *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return id, nil
}
