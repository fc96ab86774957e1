package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyServiceUnavailable is used while a circuit breaker is open.
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyRecipeNotFound indicates that no recipe has the requested id.
	ErrKeyRecipeNotFound = "error.recipe.not_found"
	// ErrKeyRecipeIncomplete is returned when name, ingredients or instructions are missing.
	ErrKeyRecipeIncomplete = "error.recipe.incomplete"
	ErrKeyInvalidRecipeID  = "error.recipe.invalid_id"
	ErrKeyNoUpdateData     = "error.recipe.no_update_data"
	// ErrKeyNoRecipesSelected is returned for an empty shopping-list request.
	ErrKeyNoRecipesSelected = "error.shopping.no_recipes"
	// ErrKeyRecipeLookupFailed is returned when the recipe store fails mid-aggregation.
	ErrKeyRecipeLookupFailed = "error.shopping.lookup_failed"
	// ErrKeyHistoryUnavailable is returned when audit logs are not persisted.
	ErrKeyHistoryUnavailable = "error.recipe.history_unavailable"
)

// Success message translation keys.
const (
	SuccessKeyWelcome       = "success.welcome"
	SuccessKeyRecipeDeleted = "success.recipe.deleted"
)
