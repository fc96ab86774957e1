package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RecipeRoutes registers the recipe CRUD endpoints.
type RecipeRoutes struct {
	handler *RecipeHandler
}

// NewRecipeRoutes creates a new RecipeRoutes instance.
func NewRecipeRoutes(handler *RecipeHandler) *RecipeRoutes {
	return &RecipeRoutes{handler: handler}
}

// RegisterRoutes registers the recipe routes under /recipes.
func (r *RecipeRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.GET("", r.handler.ListRecipes)
	recipes.POST("", r.handler.CreateRecipe)
	recipes.GET("/:id", r.handler.GetRecipe)
	recipes.PUT("/:id", r.handler.UpdateRecipe)
	recipes.DELETE("/:id", r.handler.DeleteRecipe)
	recipes.GET("/:id/history", r.handler.RecipeHistory)
}

// ShoppingRoutes registers the shopping list endpoint.
type ShoppingRoutes struct {
	handler *Handler
}

// NewShoppingRoutes creates a new ShoppingRoutes instance.
func NewShoppingRoutes(handler *Handler) *ShoppingRoutes {
	return &ShoppingRoutes{handler: handler}
}

// RegisterRoutes registers POST /shopping.
func (r *ShoppingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shopping", r.handler.CreateShoppingList)
}
