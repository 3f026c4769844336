package response

import (
	"Chirp/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Every body is the flat envelope {result: bool, ...}.

// OK writes a 200 success envelope merged with payload.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, payload))
}

// Created writes a 201 success envelope merged with payload.
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(true, payload))
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error maps err onto an HTTP status via the service ErrorMap and writes the
// failure envelope. Unmapped errors are logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "bad_request", service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "bad_request", service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, http.StatusInternalServerError, errorType(http.StatusInternalServerError), service.UnExpectedError.Error())
		return
	}
	Fail(c, status, errorType(status), err.Error())
}

// Fail writes the failure envelope with an explicit status.
func Fail(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"result":        false,
		"error_type":    errType,
		"error_message": message,
	})
}

// SoftFail reports a storage fault as HTTP 200 with a db_error envelope.
// The tweet-listing endpoint keeps this shape for client compatibility.
func SoftFail(c *gin.Context, err error) {
	log.ErrorContext(c.Request.Context(), "storage fault", "err", err)
	c.JSON(http.StatusOK, gin.H{
		"result":        false,
		"error_type":    "db_error",
		"error_message": service.UnExpectedError.Error(),
	})
}

func envelope(result bool, payload gin.H) gin.H {
	body := gin.H{"result": result}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

func errorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}
