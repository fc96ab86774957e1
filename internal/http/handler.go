package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/middleware"
	"github.com/guttosm/recipe-service/internal/notifier"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ErrMailDisabled is reported in the notification block when an e-mail was
// requested but no SMTP account is configured.
var ErrMailDisabled = errors.New("email delivery is not configured")

// Handler provides the shopping list and service info endpoints.
type Handler struct {
	shopping service.ShoppingListBuilder
	notifier notifier.Notifier
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithNotifier enables sending shopping lists by e-mail.
func WithNotifier(n notifier.Notifier) HandlerOption {
	return func(h *Handler) {
		h.notifier = n
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(shopping service.ShoppingListBuilder, opts ...HandlerOption) *Handler {
	h := &Handler{shopping: shopping}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CreateShoppingList handles POST /api/shopping requests.
//
// @Summary      Build a shopping list
// @Description  Scales every selected recipe to its target number of persons, drops basic pantry ingredients and merges the rest by name and unit. Unknown recipe ids are skipped. When an email is given the list is also sent by mail; a failed delivery is reported in the notification block and never fails the request. Supports idempotency via Idempotency-Key header.
// @Tags         Shopping
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.ShoppingListRequest true "Selected recipes"
// @Success      200 {object} dto.SuccessResponse{data=dto.ShoppingListResponse} "Shopping list"
// @Failure      400 {object} dto.ErrorResponse "No recipes provided or invalid body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Recipe store failed"
// @Failure      503 {object} dto.ErrorResponse "Recipe store unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Security     ApiKeyAuth
// @Router       /api/shopping [post]
func (h *Handler) CreateShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	selections := req.Selections()
	recipeIDs := selectionIDs(selections)

	list, err := h.shopping.Build(c.Request.Context(), selections)
	if err != nil {
		if !errors.Is(err, service.ErrEmptyInput) {
			auditError(c, model.ActionShoppingList, "Shopping list failed", err, recipeIDs, nil)
		}
		respondServiceError(builder, err)
		return
	}

	audit(c, model.ActionShoppingList, "Shopping list generated", recipeIDs, map[string]interface{}{
		"items":   len(list.Items),
		"skipped": len(list.SkippedRecipeIDs),
	})

	resp := dto.NewShoppingListResponse(list)
	if req.Email != "" {
		resp.Notification = h.notify(c, req.Email, list, recipeIDs)
	}

	builder.SuccessOK(resp)
}

func (h *Handler) notify(c *gin.Context, email string, list model.ShoppingList, recipeIDs []int64) *dto.NotificationStatus {
	status := &dto.NotificationStatus{Email: email}

	err := ErrMailDisabled
	if h.notifier != nil {
		err = h.notifier.Send(c.Request.Context(), email, list)
	}
	if err != nil {
		status.Error = err.Error()
		log.Warn().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Shopping list was not sent")
		auditError(c, model.ActionSendShoppingList, "Shopping list e-mail failed", err, recipeIDs, nil)
		return status
	}

	status.Delivered = true
	audit(c, model.ActionSendShoppingList, "Shopping list e-mailed", recipeIDs, nil)
	return status
}

// Welcome handles GET / requests.
//
// @Summary      Welcome message
// @Tags         Info
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       / [get]
func (h *Handler) Welcome(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.SuccessKeyWelcome, i18n.GetLocale(c))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Ping handles GET /ping requests.
//
// @Summary      Ping
// @Tags         Info
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "pong"})
}

func selectionIDs(selections []model.MealSelection) []int64 {
	ids := make([]int64, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.RecipeID)
	}
	return ids
}
