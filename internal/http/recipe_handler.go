package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/guttosm/recipe-service/internal/service"
)

const defaultHistoryLimit = 20

// RecipeHandler provides HTTP handlers for recipe routes.
type RecipeHandler struct {
	recipes service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// ListRecipes handles GET /api/recipes requests.
//
// @Summary      List recipes
// @Description  Returns recipes ordered by id, optionally filtered by category or tag
// @Tags         Recipes
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        tag      query string false "Tag filter"
// @Param        limit    query int    false "Maximum number of recipes (0 = all)"
// @Param        skip     query int    false "Number of recipes to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeListResponse} "Recipes"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Recipe store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ListRecipesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), repository.RecipeListOptions{
		Category: query.Category,
		Tag:      query.Tag,
		Limit:    query.Limit,
		Skip:     query.Skip,
	})
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}

	builder.SuccessOK(dto.RecipeListResponse{Recipes: recipes, Count: len(recipes)})
}

// GetRecipe handles GET /api/recipes/:id requests.
//
// @Summary      Get a recipe
// @Tags         Recipes
// @Produce      json
// @Param        id path int true "Recipe id"
// @Success      200 {object} dto.SuccessResponse{data=model.Recipe} "Recipe"
// @Failure      400 {object} dto.ErrorResponse "Invalid recipe id"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     ApiKeyAuth
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := recipeID(c, builder)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(recipe)
}

// CreateRecipe handles POST /api/recipes requests.
//
// @Summary      Create a recipe
// @Description  Name, ingredients and instructions are required. Servings default to 1.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateRecipeRequest true "Recipe"
// @Success      201 {object} dto.SuccessResponse{data=model.Recipe} "Created recipe"
// @Failure      400 {object} dto.ErrorResponse "Recipe incomplete"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateRecipeRequest](c)
	if err != nil {
		if errors.Is(err, dto.ErrRecipeIncomplete) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyRecipeIncomplete, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	created, err := h.recipes.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		auditError(c, model.ActionCreateRecipe, "Recipe creation failed", err, nil, map[string]interface{}{"name": req.Name})
		respondServiceError(builder, err)
		return
	}

	audit(c, model.ActionCreateRecipe, "Recipe created", []int64{created.ID}, map[string]interface{}{"name": created.Name})
	builder.SuccessCreated(created)
}

// UpdateRecipe handles PUT /api/recipes/:id requests.
//
// @Summary      Update a recipe
// @Description  Partial update; omitted fields keep their value.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        id path int true "Recipe id"
// @Param        request body dto.UpdateRecipeRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Recipe} "Updated recipe"
// @Failure      400 {object} dto.ErrorResponse "Invalid update"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     ApiKeyAuth
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := recipeID(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateRecipeRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		switch {
		case errors.Is(err, dto.ErrNoUpdateData):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyNoUpdateData, err)
		case errors.As(err, &validationErr):
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	updated, err := h.recipes.Update(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		if !errors.Is(err, service.ErrRecipeNotFound) {
			auditError(c, model.ActionUpdateRecipe, "Recipe update failed", err, []int64{id}, nil)
		}
		respondServiceError(builder, err)
		return
	}

	audit(c, model.ActionUpdateRecipe, "Recipe updated", []int64{id}, nil)
	builder.SuccessOK(updated)
}

// DeleteRecipe handles DELETE /api/recipes/:id requests.
//
// @Summary      Delete a recipe
// @Tags         Recipes
// @Produce      json
// @Param        id path int true "Recipe id"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Recipe deleted"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     ApiKeyAuth
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := recipeID(c, builder)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if !errors.Is(err, service.ErrRecipeNotFound) {
			auditError(c, model.ActionDeleteRecipe, "Recipe deletion failed", err, []int64{id}, nil)
		}
		respondServiceError(builder, err)
		return
	}

	audit(c, model.ActionDeleteRecipe, "Recipe deleted", []int64{id}, nil)
	message := i18n.GetTranslator().Translate(i18n.SuccessKeyRecipeDeleted, i18n.GetLocale(c))
	builder.SuccessOK(dto.MessageResponse{Message: message})
}

// RecipeHistory handles GET /api/recipes/:id/history requests. Entries of
// deleted recipes stay visible until the log TTL removes them.
//
// @Summary      Recipe audit history
// @Description  Returns audit entries that reference the recipe, newest first
// @Tags         Recipes
// @Produce      json
// @Param        id     path  int    true  "Recipe id"
// @Param        action query string false "Action filter" Enums(create_recipe, update_recipe, delete_recipe, shopping_list, send_shopping_list)
// @Param        limit  query int    false "Maximum number of entries (default 20)"
// @Param        skip   query int    false "Number of entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeHistoryResponse} "History"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Audit log not available"
// @Security     ApiKeyAuth
// @Router       /api/recipes/{id}/history [get]
func (h *RecipeHandler) RecipeHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := recipeID(c, builder)
	if !ok {
		return
	}

	var query dto.RecipeHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	logs := loggingService(c)
	if logs == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryUnavailable, nil)
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	opts := model.LogQueryOptions{
		RecipeID:   id,
		ActionType: query.Action,
		Limit:      limit,
		Skip:       query.Skip,
	}

	ctx := c.Request.Context()
	total, err := logs.CountLogs(ctx, opts)
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	entries, err := logs.QueryLogs(ctx, opts)
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(dto.RecipeHistoryResponse{RecipeID: id, Total: total, Entries: entries})
}

func recipeID(c *gin.Context, builder *ResponseBuilder) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRecipeID, err)
		return 0, false
	}
	return id, true
}
