package handlers

import (
	"errors"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/logger"
)

var monthParamRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// monthOrCurrent reads the month query parameter, defaulting to the current
// calendar month. Returns ErrInvalidInput for a malformed value.
func monthOrCurrent(c *gin.Context) (string, error) {
	month := c.Query("month")
	if month == "" {
		return time.Now().Format("2006-01"), nil
	}
	if !monthParamRegex.MatchString(month) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be YYYY-MM")
	}
	return month, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorResponse documents the error payload shape for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse documents simple acknowledgement payloads for swagger.
type MessageResponse struct {
	Message string `json:"message"`
}
