package controller

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/transaction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// maxImportFileSize bounds the size of an uploaded CSV file.
const maxImportFileSize = 5 << 20

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listMonthUseCase *transaction.ListMonthUseCase
	createUseCase    *transaction.CreateTransactionUseCase
	updateUseCase    *transaction.UpdateTransactionUseCase
	deleteUseCase    *transaction.DeleteTransactionUseCase
	toggleUseCase    *transaction.TogglePaymentStatusUseCase
	duplicateUseCase *transaction.DuplicateTransactionUseCase
	exportUseCase    *transaction.ExportMonthUseCase
	importUseCase    *transaction.ImportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listMonthUseCase *transaction.ListMonthUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	toggleUseCase *transaction.TogglePaymentStatusUseCase,
	duplicateUseCase *transaction.DuplicateTransactionUseCase,
	exportUseCase *transaction.ExportMonthUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listMonthUseCase: listMonthUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		toggleUseCase:    toggleUseCase,
		duplicateUseCase: duplicateUseCase,
		exportUseCase:    exportUseCase,
		importUseCase:    importUseCase,
	}
}

// List handles GET /transactions?month=YYYY-MM requests. The response merges
// real transactions with the month's live predictions.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listMonthUseCase.Execute(ctx.Request.Context(), transaction.ListMonthInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthViewResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingTransactionFields)
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		badRequest(ctx, "date must be in YYYY-MM-DD format", domainerror.ErrCodeInvalidTransactionDate)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Description: req.Description,
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Value:       decimal.NewFromFloat(req.Value),
		Date:        date,
		IsPaid:      req.IsPaid,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingTransactionFields)
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		badRequest(ctx, "date must be in YYYY-MM-DD format", domainerror.ErrCodeInvalidTransactionDate)
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:          ctx.Param("id"),
		UserID:      userID,
		Description: req.Description,
		Category:    req.Category,
		Value:       dto.OptionalDecimal(req.Value),
		Date:        date,
		IsPaid:      req.IsPaid,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		ID:     ctx.Param("id"),
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TogglePaid handles POST /transactions/:id/toggle-paid requests.
func (c *TransactionController) TogglePaid(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), transaction.TogglePaymentStatusInput{
		ID:     ctx.Param("id"),
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Duplicate handles POST /transactions/:id/duplicate requests.
func (c *TransactionController) Duplicate(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.duplicateUseCase.Execute(ctx.Request.Context(), transaction.DuplicateTransactionInput{
		ID:     ctx.Param("id"),
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Export handles GET /transactions/export?month=YYYY-MM requests.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	month := ctx.Query("month")
	var buf bytes.Buffer
	err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportMonthInput{
		UserID: userID,
		Month:  month,
	}, &buf)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="transacoes-`+month+`.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Import handles POST /transactions/import requests with a multipart "file" field.
func (c *TransactionController) Import(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		badRequest(ctx, "A CSV file is required in the 'file' field", domainerror.ErrCodeInvalidImportFile)
		return
	}
	if header.Size > maxImportFileSize {
		badRequest(ctx, "File exceeds the 5MB limit", domainerror.ErrCodeInvalidImportFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		badRequest(ctx, "Unable to read uploaded file", domainerror.ErrCodeInvalidImportFile)
		return
	}
	defer file.Close()

	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportTransactionsInput{
		UserID: userID,
		File:   file,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	created := output.CreatedCategories
	if created == nil {
		created = []string{}
	}
	ctx.JSON(http.StatusCreated, dto.ImportResponse{
		Imported:          output.Imported,
		CreatedCategories: created,
	})
}
