package util

import (
	"course_review_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for classified failures.
type ErrorResponse struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// PageResponse is the paging envelope for list endpoints.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c)
}

// HandleError renders a classified error with its own status, and anything
// else as an internal error.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		LogInternalError(c, err)
		return
	}
	if appErr.Status >= http.StatusInternalServerError {
		logger.Log.Error("Request failed", zap.Error(err), zap.String("path", c.FullPath()))
	}
	c.JSON(appErr.Status, ErrorResponse{
		Code:    appErr.Status,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// BindError reports a request that failed gin binding/validation.
func BindError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.Wrap(err))
}
