package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aayush349/skybm-backend/internal/errs"
)

const (
	connectTimeout = 10 * time.Second
	queryTimeout   = 10 * time.Second
	opTimeout      = 5 * time.Second
)

// Connect dials MongoDB, verifies the connection with a ping and returns a
// handle to the named database. Callers are expected to treat an error here
// as fatal.
func Connect(uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// MongoRepository is a generic repository over a single collection.
type MongoRepository[T any] struct {
	collection *mongo.Collection
}

func NewMongoRepository[T any](db *mongo.Database, collection string) *MongoRepository[T] {
	return &MongoRepository[T]{
		collection: db.Collection(collection),
	}
}

// Collection exposes the underlying collection for queries the generic
// methods do not cover, such as projections.
func (r *MongoRepository[T]) Collection() *mongo.Collection {
	return r.collection
}

func (r *MongoRepository[T]) FindById(id string) (T, error) {
	return r.FindOneBy("_id", id)
}

func (r *MongoRepository[T]) FindOneBy(field string, value interface{}) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var result T
	err := r.collection.FindOne(ctx, bson.M{field: value}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return result, errs.ErrNotFound
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// FindAllSorted returns every document in the collection ordered by the
// given field; direction is 1 for ascending, -1 for descending.
func (r *MongoRepository[T]) FindAllSorted(field string, direction int) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: field, Value: direction}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *MongoRepository[T]) Insert(doc T) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// DeleteOneBy removes the first document matching field=value and reports
// how many documents were removed (0 or 1).
func (r *MongoRepository[T]) DeleteOneBy(field string, value interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{field: value})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoRepository[T]) ExistsBy(field string, value interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
