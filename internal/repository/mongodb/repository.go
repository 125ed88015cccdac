package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/repository"
)

const planSetCollection = "plan_sets"

var _ repository.PlanRepository = (*MongoDBRepository)(nil)

// MongoDBRepository implements repository.PlanRepository for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return newMongoDBRepository(client, dbName), nil
}

func newMongoDBRepository(client *mongo.Client, dbName string) *MongoDBRepository {
	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: planSetCollection,
	}
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SavePlanSet upserts a plan set keyed by its id.
func (r *MongoDBRepository) SavePlanSet(ctx context.Context, set models.PlanSet) error {
	if set.ID == "" {
		return errors.New("plan set id must not be empty")
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": set.ID}, set, opts); err != nil {
		return fmt.Errorf("failed to save plan set %s: %w", set.ID, err)
	}
	return nil
}

// GetPlanSet loads a plan set by id.
func (r *MongoDBRepository) GetPlanSet(ctx context.Context, id string) (models.PlanSet, error) {
	var set models.PlanSet
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.PlanSet{}, fmt.Errorf("%w: %s", repository.ErrPlanNotFound, id)
	}
	if err != nil {
		return models.PlanSet{}, fmt.Errorf("failed to load plan set %s: %w", id, err)
	}
	return set, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
