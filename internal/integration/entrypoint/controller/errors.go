// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/middleware"
)

// statusOverrides pins codes whose HTTP status differs from their kind's default.
var statusOverrides = map[string]int{
	string(domainerror.ErrCodeEmailExists):              http.StatusConflict,
	string(domainerror.ErrCodeInvalidCredentials):       http.StatusUnauthorized,
	string(domainerror.ErrCodeInvalidToken):             http.StatusUnauthorized,
	string(domainerror.ErrCodeExpiredToken):             http.StatusUnauthorized,
	string(domainerror.ErrCodeMissingToken):             http.StatusUnauthorized,
	string(domainerror.ErrCodeRateLimited):              http.StatusTooManyRequests,
	string(domainerror.ErrCodeUnauthorizedGoalAccess):   http.StatusForbidden,
	string(domainerror.ErrCodeNotAuthorizedBudget):      http.StatusForbidden,
	string(domainerror.ErrCodeNotAuthorizedRule):        http.StatusForbidden,
	string(domainerror.ErrCodeNotAuthorizedTransaction): http.StatusForbidden,
}

// statusFor maps a domain error to its HTTP status code.
func statusFor(err error) int {
	if code, ok := domainerror.CodeOf(err); ok {
		if status, pinned := statusOverrides[code]; pinned {
			return status
		}
	}

	switch domainerror.KindOf(err) {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindInvalidOperation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response for a failed use case.
func handleError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		code, _ := domainerror.CodeOf(err)
		ctx.JSON(status, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  code,
		})
		return
	}

	code, _ := domainerror.CodeOf(err)
	ctx.JSON(status, dto.ErrorResponse{
		Error: domainerror.MessageOf(err),
		Code:  code,
	})
}

// badRequest writes a 400 response with the given code.
func badRequest[C ~string](ctx *gin.Context, message string, code C) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// currentUser returns the authenticated user's ID or writes a 401 response.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseOptionalDate parses an optional YYYY-MM-DD value.
func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	date, err := time.Parse(dto.DateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
