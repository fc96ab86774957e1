package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/middleware"
)

// Validator is implemented by request bodies with rules that binding tags
// cannot express, such as "a recipe needs a name, ingredients and instructions".
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into a new T and runs its
// Validate method when T has one. Errors are returned unchanged so handlers
// can pick the message.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes the API envelopes: dto.SuccessResponse around
// results and dto.ErrorResponse, translated to the caller's locale, for
// failures. Both carry the request id.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data inside the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the message for messageKey in the request locale. err,
// when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, message, err)
}

// ErrorWithMessage aborts with a message that is already final, typically a
// recipe validation error. A field-level *dto.ValidationError is also
// reported in Details.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, message, err)
}

func (b *ResponseBuilder) abort(statusCode int, message string, err error) {
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))

	if err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Details = map[string]string{ve.Field: ve.Message}
		}
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
}
