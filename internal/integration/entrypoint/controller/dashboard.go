package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/dashboard"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	trendsUseCase    *dashboard.GetTrendsUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	trendsUseCase *dashboard.GetTrendsUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetTrends handles GET /dashboard/trends?from=YYYY-MM&to=YYYY-MM requests.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), dashboard.GetTrendsInput{
		UserID: userID,
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/categories?month=YYYY-MM requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}
