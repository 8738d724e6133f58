package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexboard/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a JSON error response
// when the handler did not write one itself. The status defaults to 500.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	last := c.Errors.Last()
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError aborts the request with status and a dto.ErrorResponse built
// from message and err. The error is also attached to the context for the
// request logger.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	AbortWithResponse(c, status, dto.NewErrorResponse(message, err), err)
}

// AbortWithResponse is AbortWithError for a prebuilt response, e.g. one
// carrying a hint.
func AbortWithResponse(c *gin.Context, status int, resp dto.ErrorResponse, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}
