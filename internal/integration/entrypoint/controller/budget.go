package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/budget"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// BudgetController handles category budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	setUseCase    *budget.SetBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	statusUseCase *budget.GetBudgetStatusUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	setUseCase *budget.SetBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	statusUseCase *budget.GetBudgetStatusUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		setUseCase:    setUseCase,
		deleteUseCase: deleteUseCase,
		statusUseCase: statusUseCase,
	}
}

// List handles GET /budgets?month=YYYY-MM requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Set handles PUT /budgets requests. An existing budget for the same
// category and month is replaced.
func (c *BudgetController) Set(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingBudgetFields)
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		UserID:         userID,
		Category:       req.Category,
		Month:          req.Month,
		BudgetValue:    decimal.NewFromFloat(req.BudgetValue),
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid budget ID format", domainerror.ErrCodeMissingBudgetFields)
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Status handles GET /budgets/status?month=YYYY-MM[&category=] requests.
func (c *BudgetController) Status(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), budget.GetBudgetStatusInput{
		UserID:   userID,
		Month:    ctx.Query("month"),
		Category: ctx.Query("category"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusListResponse(output.Statuses))
}
