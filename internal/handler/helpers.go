package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/gumutoni/tasktidy/internal/pkg/errors"
	"github.com/gumutoni/tasktidy/internal/pkg/response"
)

// handleError translates service-layer sentinels into the HTTP statuses and
// messages the front end keys off. Anything unrecognized is a 500.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, appErr.ErrConflict):
		response.Error(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "Invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
