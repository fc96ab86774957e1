//go:build integration

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type integrationEnv struct {
	router  *gin.Engine
	logging service.LoggingService
}

// setupIntegrationRouter wires the full stack against a fresh database in the shared container.
func setupIntegrationRouter(t *testing.T) integrationEnv {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(getSharedContainerURI(), sanitizeDBNameForHTTP(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	recipeCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "it-recipes",
		IsExcluded:       repository.IsRecipeNotFound,
	})
	recipes := repository.NewRecipeRepositoryWithCircuitBreaker(repository.NewRecipeRepository(db), recipeCB)
	logging := service.NewLoggingService(repository.NewLogsRepository(db))

	shopping := service.NewShoppingListService(recipes, service.WithCache(100, time.Minute))
	recipeService := service.NewRecipeService(recipes, service.WithChangeHook(shopping.InvalidateCache))

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)
	health.RegisterCircuitBreaker("recipes", recipeCB)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.LoggingService = logging

	require.NoError(t, db.HealthCheck(ctx))
	return integrationEnv{
		router:  NewRouter(NewHandler(shopping), NewRecipeHandler(recipeService), health, cfg),
		logging: logging,
	}
}

func createRecipe(t *testing.T, router http.Handler, body string) model.Recipe {
	t.Helper()
	w := serve(router, http.MethodPost, "/api/recipes", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data model.Recipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestIntegration_RecipeLifecycle(t *testing.T) {
	env := setupIntegrationRouter(t)

	created := createRecipe(t, env.router,
		`{"name": "Pancakes", "category": "Breakfast", "servings": 2, "tags": ["sweet"],
		  "ingredients": [{"name": "Flour", "amount": 200, "unit": "g"}, {"name": "Milk", "amount": 300, "unit": "ml"}],
		  "instructions": ["Mix", "Fry"]}`)
	assert.Positive(t, created.ID)
	path := fmt.Sprintf("/api/recipes/%d", created.ID)

	w := serve(env.router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(env.router, http.MethodGet, "/api/recipes?tag=sweet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data dto.RecipeListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Data.Count)

	w = serve(env.router, http.MethodPut, path, `{"servings": 4}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Data model.Recipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Data.Servings)
	assert.Equal(t, 4, *updated.Data.Servings)
	assert.Equal(t, "Pancakes", updated.Data.Name)

	w = serve(env.router, http.MethodDelete, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(env.router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(env.router, http.MethodDelete, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Not-found responses must not trip the breaker.
	w = serve(env.router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// create, update and delete are audited even after the recipe is gone
	assert.Eventually(t, func() bool {
		w := serve(env.router, http.MethodGet, path+"/history", "", nil)
		if w.Code != http.StatusOK {
			return false
		}
		var history struct {
			Data dto.RecipeHistoryResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
			return false
		}
		if history.Data.Total != 3 {
			return false
		}
		actions := make(map[string]bool)
		for _, e := range history.Data.Entries {
			actions[e.ActionType] = true
		}
		return actions[model.ActionCreateRecipe] && actions[model.ActionUpdateRecipe] && actions[model.ActionDeleteRecipe]
	}, 5*time.Second, 50*time.Millisecond)
}

func TestIntegration_ShoppingList(t *testing.T) {
	env := setupIntegrationRouter(t)

	pancakes := createRecipe(t, env.router,
		`{"name": "Pancakes", "servings": 2,
		  "ingredients": [{"name": "Flour", "amount": 200, "unit": "g"}, {"name": "Salz", "amount": 1, "unit": "TL"}, {"name": "Milk", "amount": 300, "unit": "ml"}],
		  "instructions": ["Mix"]}`)
	bread := createRecipe(t, env.router,
		`{"name": "Bread", "servings": 4,
		  "ingredients": [{"name": "flour", "amount": 500, "unit": "g"}, {"name": "Water", "amount": 350, "unit": "ml"}],
		  "instructions": ["Bake"]}`)

	body := fmt.Sprintf(`{"recipes": [{"recipe_id": %d, "target_persons": 4}, {"recipe_id": %d, "target_persons": 4}, {"recipe_id": 9999}]}`,
		pancakes.ID, bread.ID)

	w := serve(env.router, http.MethodPost, "/api/shopping", body, map[string]string{"X-Request-ID": "it-shopping"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeShoppingResponse(t, w.Body.Bytes())
	assert.Equal(t, []model.ShoppingListItem{
		{Name: "Flour", Amount: 900, Unit: "g"},
		{Name: "Milk", Amount: 600, Unit: "ml"},
		{Name: "Water", Amount: 350, Unit: "ml"},
	}, resp.ShoppingList)
	assert.Equal(t, []int64{9999}, resp.SkippedRecipeIDs)

	// A recipe write invalidates the cached list.
	w = serve(env.router, http.MethodPut, fmt.Sprintf("/api/recipes/%d", bread.ID), `{"servings": 8}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(env.router, http.MethodPost, "/api/shopping", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeShoppingResponse(t, w.Body.Bytes())
	require.NotEmpty(t, resp.ShoppingList)
	assert.Equal(t, model.ShoppingListItem{Name: "Flour", Amount: 650, Unit: "g"}, resp.ShoppingList[0])

	assert.Eventually(t, func() bool {
		entries, err := env.logging.QueryLogs(context.Background(), model.LogQueryOptions{
			RequestID:  "it-shopping",
			ActionType: model.ActionShoppingList,
		})
		return err == nil && len(entries) == 1
	}, 5*time.Second, 50*time.Millisecond, "shopping list audit entry should be persisted")
}
