package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// PredictionController handles the predicted transaction endpoints.
type PredictionController struct {
	listUseCase    *prediction.ListPredictionsUseCase
	convertUseCase *prediction.ConvertPredictionUseCase
	dismissUseCase *prediction.DismissPredictionUseCase
	restoreUseCase *prediction.RestorePredictionUseCase
}

// NewPredictionController creates a new prediction controller instance.
func NewPredictionController(
	listUseCase *prediction.ListPredictionsUseCase,
	convertUseCase *prediction.ConvertPredictionUseCase,
	dismissUseCase *prediction.DismissPredictionUseCase,
	restoreUseCase *prediction.RestorePredictionUseCase,
) *PredictionController {
	return &PredictionController{
		listUseCase:    listUseCase,
		convertUseCase: convertUseCase,
		dismissUseCase: dismissUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// List handles GET /predictions?horizon=N requests.
func (c *PredictionController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	input := prediction.ListPredictionsInput{UserID: userID}
	if raw := ctx.Query("horizon"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(ctx, "horizon must be an integer", domainerror.ErrCodeInvalidHorizon)
			return
		}
		input.Horizon = &horizon
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPredictionListResponse(output.Horizon, output.Predictions))
}

// Convert handles POST /predictions/:key/convert requests.
func (c *PredictionController) Convert(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.ConvertPredictionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidOverrides)
			return
		}
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		badRequest(ctx, "date must be in YYYY-MM-DD format", domainerror.ErrCodeInvalidOverrides)
		return
	}

	output, err := c.convertUseCase.Execute(ctx.Request.Context(), prediction.ConvertPredictionInput{
		UserID: userID,
		Key:    ctx.Param("key"),
		Overrides: prediction.ConvertOverrides{
			Description: req.Description,
			Category:    req.Category,
			Value:       dto.OptionalDecimal(req.Value),
			Date:        date,
			IsPaid:      req.IsPaid,
		},
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Dismiss handles DELETE /predictions/:key requests.
func (c *PredictionController) Dismiss(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.dismissUseCase.Execute(ctx.Request.Context(), prediction.DismissPredictionInput{
		UserID: userID,
		Key:    ctx.Param("key"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExclusionResponse(output.Key, output.Exclusions))
}

// Restore handles POST /predictions/:key/restore requests.
func (c *PredictionController) Restore(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), prediction.RestorePredictionInput{
		UserID: userID,
		Key:    ctx.Param("key"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExclusionResponse(output.Key, output.Exclusions))
}
