package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/transaction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// MonthController handles month navigation endpoints.
type MonthController struct {
	availableUseCase *transaction.AvailableMonthsUseCase
	startUseCase     *transaction.StartMonthUseCase
}

// NewMonthController creates a new month controller instance.
func NewMonthController(
	availableUseCase *transaction.AvailableMonthsUseCase,
	startUseCase *transaction.StartMonthUseCase,
) *MonthController {
	return &MonthController{
		availableUseCase: availableUseCase,
		startUseCase:     startUseCase,
	}
}

// List handles GET /months requests.
func (c *MonthController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.availableUseCase.Execute(ctx.Request.Context(), transaction.AvailableMonthsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthListResponse(output.Months))
}

// Start handles POST /months/:month/start requests. The body is optional.
func (c *MonthController) Start(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.StartMonthRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), transaction.StartMonthInput{
		UserID:           userID,
		Month:            ctx.Param("month"),
		CopyFromPrevious: req.CopyFromPrevious,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StartMonthResponse{
		Month:  output.Month.String(),
		Copied: dto.ToTransactionResponses(output.Copied),
	})
}
