package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/recurring"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring rule endpoints.
type RecurringController struct {
	listUseCase   *recurring.ListRulesUseCase
	createUseCase *recurring.CreateRuleUseCase
	getUseCase    *recurring.GetRuleUseCase
	updateUseCase *recurring.UpdateRuleUseCase
	deleteUseCase *recurring.DeleteRuleUseCase
}

// NewRecurringController creates a new recurring rule controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRulesUseCase,
	createUseCase *recurring.CreateRuleUseCase,
	getUseCase *recurring.GetRuleUseCase,
	updateUseCase *recurring.UpdateRuleUseCase,
	deleteUseCase *recurring.DeleteRuleUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRulesInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active_only") == "true",
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringRuleListResponse(output.Rules))
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingRuleFields)
		return
	}

	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		badRequest(ctx, "start_date must be in YYYY-MM-DD format", domainerror.ErrCodeMissingRuleFields)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		badRequest(ctx, "end_date must be in YYYY-MM-DD format", domainerror.ErrCodeMissingRuleFields)
		return
	}
	incomeID, err := parseOptionalID(req.SelectedIncomeID)
	if err != nil {
		badRequest(ctx, "Invalid selected income ID format", domainerror.ErrCodeMissingIncomeRef)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRuleInput{
		UserID:            userID,
		Description:       req.Description,
		Type:              entity.TransactionType(req.Type),
		Category:          req.Category,
		Value:             decimal.NewFromFloat(req.Value),
		Kind:              entity.RecurrenceKind(req.Kind),
		DayOfMonth:        req.DayOfMonth,
		StartDate:         startDate,
		EndDate:           endDate,
		TotalInstallments: req.TotalInstallments,
		SelectedIncomeID:  incomeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringRuleResponse(output.Rule))
}

// Get handles GET /recurring/:id requests.
func (c *RecurringController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid rule ID format", domainerror.ErrCodeMissingRuleFields)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), recurring.GetRuleInput{
		RuleID: ruleID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringRuleResponse(output.Rule))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid rule ID format", domainerror.ErrCodeMissingRuleFields)
		return
	}

	var req dto.UpdateRecurringRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingRuleFields)
		return
	}

	input := recurring.UpdateRuleInput{
		RuleID:            ruleID,
		UserID:            userID,
		Description:       req.Description,
		Category:          req.Category,
		Value:             dto.OptionalDecimal(req.Value),
		DayOfMonth:        req.DayOfMonth,
		ClearEndDate:      req.ClearEndDate,
		TotalInstallments: req.TotalInstallments,
		IsActive:          req.IsActive,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.Kind != nil {
		k := entity.RecurrenceKind(*req.Kind)
		input.Kind = &k
	}
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		badRequest(ctx, "start_date must be in YYYY-MM-DD format", domainerror.ErrCodeMissingRuleFields)
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		badRequest(ctx, "end_date must be in YYYY-MM-DD format", domainerror.ErrCodeMissingRuleFields)
		return
	}
	if input.SelectedIncomeID, err = parseOptionalID(req.SelectedIncomeID); err != nil {
		badRequest(ctx, "Invalid selected income ID format", domainerror.ErrCodeMissingIncomeRef)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringRuleResponse(output.Rule))
}

// Delete handles DELETE /recurring/:id requests. The rule's real
// transactions and exclusions are removed with it.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid rule ID format", domainerror.ErrCodeMissingRuleFields)
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRuleInput{
		RuleID: ruleID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteRecurringRuleResponse{
		DeletedTransactions: output.DeletedTransactions,
	})
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
