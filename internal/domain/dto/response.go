package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeBadGateway indicates the recipe store failed.
	ErrCodeBadGateway = "bad_gateway"
	// ErrCodeServiceUnavailable indicates a dependency is temporarily unavailable.
	ErrCodeServiceUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload, e.g. a ShoppingListResponse.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Recipe incomplete"`
	// Details maps field names to error messages.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	default:
		return ErrCodeInternal
	}
}

// NotificationStatus reports whether the shopping list e-mail was delivered.
//
// @Description Outcome of sending the shopping list by e-mail
type NotificationStatus struct {
	Email     string `json:"email" example:"cook@example.com"`
	Delivered bool   `json:"delivered" example:"true"`
	Error     string `json:"error,omitempty" example:"mail delivery failed"`
} // @name NotificationStatus

// ShoppingListResponse is the payload of the shopping list endpoint.
//
// @Description Consolidated shopping list
// @Example {"shopping_list": [{"name": "Flour", "amount": 500, "unit": "g"}]}
type ShoppingListResponse struct {
	ShoppingList     []model.ShoppingListItem `json:"shopping_list"`
	SkippedRecipeIDs []int64                  `json:"skipped_recipe_ids,omitempty"`
	// Notification is present only when an e-mail address was supplied.
	Notification *NotificationStatus `json:"notification,omitempty"`
} // @name ShoppingListResponse

// NewShoppingListResponse wraps a domain shopping list.
func NewShoppingListResponse(list model.ShoppingList) ShoppingListResponse {
	items := list.Items
	if items == nil {
		items = []model.ShoppingListItem{}
	}
	return ShoppingListResponse{ShoppingList: items, SkippedRecipeIDs: list.SkippedRecipeIDs}
}

// RecipeListResponse is the payload of the recipe list endpoint.
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	Count   int            `json:"count" example:"2"`
} // @name RecipeListResponse

// RecipeHistoryResponse lists the audit entries that reference a recipe.
type RecipeHistoryResponse struct {
	RecipeID int64            `json:"recipe_id" example:"1"`
	Total    int64            `json:"total" example:"3"`
	Entries  []model.LogEntry `json:"entries"`
} // @name RecipeHistoryResponse

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message" example:"pong"`
} // @name MessageResponse
