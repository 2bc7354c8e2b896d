package transaction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// MaxImportRows bounds the size of a single import.
const MaxImportRows = 5000

// ImportTransactionsInput represents the input for a file import.
type ImportTransactionsInput struct {
	UserID uuid.UUID
	File   io.Reader
}

// ImportTransactionsOutput represents the output of an import.
type ImportTransactionsOutput struct {
	Imported          int
	CreatedCategories []string
}

// ImportTransactionsUseCase creates real transactions from an uploaded file
// and registers any custom category it mentions.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	codec           adapter.TransactionCodec
	logger          *slog.Logger
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	codec adapter.TransactionCodec,
	logger *slog.Logger,
) *ImportTransactionsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		codec:           codec,
		logger:          logger,
	}
}

// Execute imports every row or none of them.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	records, err := uc.codec.Decode(input.File)
	if err != nil {
		return nil, invalidImport(err.Error())
	}
	if len(records) == 0 {
		return nil, invalidImport("file has no rows")
	}
	if len(records) > MaxImportRows {
		return nil, invalidImport(fmt.Sprintf("file has more than %d rows", MaxImportRows))
	}

	txns := make([]*entity.Transaction, 0, len(records))
	var categories []string
	seen := make(map[string]struct{})

	// Validate every row before touching storage
	for _, rec := range records {
		description := strings.TrimSpace(rec.Description)
		category := strings.TrimSpace(rec.Category)
		if err := validateFields(description, rec.Type, category, rec.Value, rec.Date); err != nil {
			return nil, invalidImport(fmt.Sprintf("line %d: %s", rec.Line, err.Error()))
		}

		txns = append(txns, entity.NewTransaction(input.UserID, description, rec.Type, category, rec.Value, rec.Date, rec.IsPaid))

		if _, ok := seen[category]; !ok && !entity.IsDefaultCategory(category) {
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}

	if err := uc.transactionRepo.CreateBatch(ctx, txns); err != nil {
		return nil, domainerror.NewPersistenceError("import transactions", err)
	}

	created := uc.registerCategories(ctx, input.UserID, categories)

	return &ImportTransactionsOutput{
		Imported:          len(txns),
		CreatedCategories: created,
	}, nil
}

// registerCategories creates the custom categories that do not exist yet.
// Failures are logged: the transactions are already stored.
func (uc *ImportTransactionsUseCase) registerCategories(ctx context.Context, userID uuid.UUID, names []string) []string {
	var created []string
	for _, name := range names {
		_, err := uc.categoryRepo.FindByName(ctx, userID, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			uc.logger.Warn("failed to look up imported category", "owner_id", userID.String(), "category", name, "error", err.Error())
			continue
		}
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(userID, name)); err != nil {
			uc.logger.Warn("failed to create imported category", "owner_id", userID.String(), "category", name, "error", err.Error())
			continue
		}
		created = append(created, name)
	}
	return created
}

func invalidImport(msg string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidImportFile,
		msg,
		domainerror.ErrInvalidImportFile,
	)
}
