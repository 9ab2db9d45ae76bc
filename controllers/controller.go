package controllers

import (
	"errors"
	"net/http"

	"renthub/apperr"
	"renthub/logger"

	"github.com/gin-gonic/gin"
)

// CtxRequestIDKey holds the id the request logger assigned to the request.
const CtxRequestIDKey = "request_id"

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RespondAppError maps an error from the core onto a status code. Anything
// unrecognised is logged and reported as a generic 500.
func RespondAppError(c *gin.Context, err error) {
	var (
		policyErr     *apperr.PolicyError
		validationErr *apperr.ValidationError
		notFoundErr   *apperr.NotFoundError
		conflictErr   *apperr.ConflictError
	)

	switch {
	case errors.As(err, &policyErr):
		code := http.StatusForbidden
		if policyErr.Reason == apperr.ReasonUnauthenticated {
			code = http.StatusUnauthorized
		}
		c.JSON(code, gin.H{"error": policyErr.Error(), "reason": policyErr.Reason})
	case errors.As(err, &validationErr):
		RespondError(c, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		RespondError(c, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &conflictErr):
		RespondError(c, conflictErr.Error(), http.StatusConflict)
	case errors.Is(err, apperr.ErrInvalidOrExpired):
		RespondError(c, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		RespondError(c, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperr.ErrUnavailable):
		RespondError(c, err.Error(), http.StatusServiceUnavailable)
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(CtxRequestIDKey),
			"err", err.Error(),
		)
		RespondError(c, "internal server error", http.StatusInternalServerError)
	}
}
