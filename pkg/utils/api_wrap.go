package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

type errorMapping struct {
	err     error
	code    int
	message string
}

var serviceErrors = []errorMapping{
	{ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrForbidden, http.StatusForbidden, "You are not allowed to modify this resource"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidOtp, http.StatusBadRequest, "Invalid or expired code"},
	{ErrInvalidIDToken, http.StatusUnauthorized, "Invalid identity token"},
	{ErrTripNotFound, http.StatusNotFound, "Trip not found"},
	{ErrExpenseNotFound, http.StatusNotFound, "Expense not found"},
	{ErrItineraryNotFound, http.StatusNotFound, "Itinerary not found"},
	{ErrPostNotFound, http.StatusNotFound, "Post not found"},
	{ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{ErrPlaceNotFound, http.StatusNotFound, "No matching place found"},
	{ErrUnsupportedMedia, http.StatusUnsupportedMediaType, "Only image uploads are supported"},
	{ErrMediaTooLarge, http.StatusRequestEntityTooLarge, "File is too large"},
	{ErrFeatureNotConfigured, http.StatusServiceUnavailable, "Feature is not configured"},
	{ErrUnexpectedBehaviorOfAI, http.StatusBadGateway, "AI service returned an unexpected response"},
	{ErrUpstreamService, http.StatusBadGateway, "Upstream service error"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			if m.code >= http.StatusInternalServerError {
				zap.L().Warn("service error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
			}
			RespondError(c, m.code, m.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("database error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
	} else {
		zap.L().Error("unknown error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
