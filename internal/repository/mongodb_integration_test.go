//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db)
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Recipes)
		assert.NotNil(t, db.Counters)
		assert.NotNil(t, db.Logs)
	})

	t.Run("ping successful", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := db.Client.Ping(pingCtx, nil)
		assert.NoError(t, err)
	})

	t.Run("set logs TTL", func(t *testing.T) {
		err := db.SetLogsTTL(ctx, 30)
		assert.NoError(t, err)
	})

	t.Run("set logs TTL multiple times", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
		assert.NoError(t, db.SetLogsTTL(ctx, 60))
	})

	t.Run("recipe indexes exist", func(t *testing.T) {
		cursor, err := db.Recipes.Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []struct {
			Name string `bson:"name"`
		}
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx.Name)
		}
		assert.Contains(t, names, "category_1")
		assert.Contains(t, names, "tags_1")
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})
}
