package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/category"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase         *category.ListCategoriesUseCase
	createUseCase       *category.CreateCategoryUseCase
	updateLimitsUseCase *category.UpdateCategoryLimitsUseCase
	deleteUseCase       *category.DeleteCategoryUseCase
	showUseCase         *category.ShowCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateLimitsUseCase *category.UpdateCategoryLimitsUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	showUseCase *category.ShowCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateLimitsUseCase: updateLimitsUseCase,
		deleteUseCase:       deleteUseCase,
		showUseCase:         showUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingCategoryFields)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:        userID,
		Name:          req.Name,
		MaxPercentage: dto.OptionalDecimal(req.MaxPercentage),
		MaxValue:      dto.OptionalDecimal(req.MaxValue),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// UpdateLimits handles PATCH /categories/:name/limits requests.
func (c *CategoryController) UpdateLimits(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCategoryLimitsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidCategoryLimit)
		return
	}

	output, err := c.updateLimitsUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryLimitsInput{
		UserID:        userID,
		Name:          ctx.Param("name"),
		MaxPercentage: dto.OptionalDecimal(req.MaxPercentage),
		MaxValue:      dto.OptionalDecimal(req.MaxValue),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:name requests. Default categories are
// hidden instead of deleted.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	name := ctx.Param("name")
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID: userID,
		Name:   name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCategoryResponse{
		Name:   name,
		Hidden: output.Hidden,
	})
}

// Show handles POST /categories/:name/show requests.
func (c *CategoryController) Show(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	err := c.showUseCase.Execute(ctx.Request.Context(), category.ShowCategoryInput{
		UserID: userID,
		Name:   ctx.Param("name"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
