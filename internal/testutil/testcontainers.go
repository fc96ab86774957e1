//go:build integration

// Package testutil starts MongoDB testcontainers and seeds recipe fixtures for
// integration tests.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoImage is the image every integration test runs against.
const MongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer. Packages with many
// integration tests should prefer SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}

// SeedRecipes inserts raw recipe documents into the recipes collection of
// dbName and moves the id counter past the highest seeded _id so that recipes
// created afterwards do not collide. Documents are written as given, which
// lets tests store legacy shapes the repository would never produce.
func (m *MongoDBContainer) SeedRecipes(ctx context.Context, dbName string, docs ...bson.M) error {
	if len(docs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.URI))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(dbName)

	var maxID int64
	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		items[i] = doc
		if id, ok := doc["_id"].(int64); ok && id > maxID {
			maxID = id
		}
	}

	if _, err := db.Collection("recipes").InsertMany(ctx, items); err != nil {
		return fmt.Errorf("insert recipes: %w", err)
	}

	_, err = db.Collection("counters").UpdateOne(ctx,
		bson.M{"_id": "recipes"},
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("advance recipe counter: %w", err)
	}
	return nil
}
