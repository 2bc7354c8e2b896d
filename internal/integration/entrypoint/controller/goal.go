package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/goal"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase       *goal.ListGoalsUseCase
	createUseCase     *goal.CreateGoalUseCase
	getUseCase        *goal.GetGoalUseCase
	updateUseCase     *goal.UpdateGoalUseCase
	deleteUseCase     *goal.DeleteGoalUseCase
	contributeUseCase *goal.ContributeToGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.ContributeToGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingGoalFields)
		return
	}

	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		badRequest(ctx, "deadline must be in YYYY-MM-DD format", domainerror.ErrCodeMissingGoalFields)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		TargetValue:  dto.ToDecimal(req.TargetValue),
		CurrentValue: dto.ToDecimal(req.CurrentValue),
		Deadline:     deadline,
		Category:     req.Category,
		Color:        req.Color,
		Icon:         req.Icon,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingGoalFields)
		return
	}

	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		badRequest(ctx, "deadline must be in YYYY-MM-DD format", domainerror.ErrCodeMissingGoalFields)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		TargetValue:   dto.OptionalDecimal(req.TargetValue),
		CurrentValue:  dto.OptionalDecimal(req.CurrentValue),
		Deadline:      deadline,
		ClearDeadline: req.ClearDeadline,
		Category:      req.Category,
		Color:         req.Color,
		Icon:          req.Icon,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /goals/:id/contribute requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidContribution)
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), goal.ContributeToGoalInput{
		GoalID: goalID,
		UserID: userID,
		Amount: dto.ToDecimal(req.Amount),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

func parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid goal ID format", domainerror.ErrCodeMissingGoalFields)
		return uuid.Nil, false
	}
	return goalID, true
}
