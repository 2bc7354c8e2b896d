package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/session"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// SessionController handles the per-user session state endpoints.
type SessionController struct {
	getUseCase    *session.GetSessionUseCase
	selectUseCase *session.SelectMonthUseCase
	resetUseCase  *session.ResetSessionUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	getUseCase *session.GetSessionUseCase,
	selectUseCase *session.SelectMonthUseCase,
	resetUseCase *session.ResetSessionUseCase,
) *SessionController {
	return &SessionController{
		getUseCase:    getUseCase,
		selectUseCase: selectUseCase,
		resetUseCase:  resetUseCase,
	}
}

// Get handles GET /session requests.
func (c *SessionController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), session.GetSessionInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.State))
}

// SelectMonth handles PUT /session/month requests.
func (c *SessionController) SelectMonth(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SelectMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", domainerror.ErrCodeInvalidSessionMonth)
		return
	}

	output, err := c.selectUseCase.Execute(ctx.Request.Context(), session.SelectMonthInput{
		UserID: userID,
		Month:  req.Month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"selected_month": output.Month.String()})
}

// Reset handles DELETE /session requests.
func (c *SessionController) Reset(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), session.ResetSessionInput{UserID: userID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
