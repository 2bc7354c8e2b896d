// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// batchSize bounds the rows sent per INSERT by CreateBatch.
const batchSize = 500

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch inserts all transactions in a single database transaction.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	models := make([]*model.TransactionModel, len(transactions))
	for i, t := range transactions {
		models[i] = model.TransactionFromEntity(t)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(models, batchSize).Error
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves every transaction of a user ordered by date.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.find(ctx, "user_id = ?", userID)
}

// FindByUserAndMonth retrieves the transactions of a user in one month.
func (r *transactionRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.Transaction, error) {
	return r.find(ctx, "user_id = ? AND month = ?", userID, month.String())
}

// FindByUserAndMonthRange retrieves the transactions of a user between two
// months, both inclusive.
func (r *transactionRepository) FindByUserAndMonthRange(ctx context.Context, userID uuid.UUID, from, to valueobject.Month) ([]*entity.Transaction, error) {
	return r.find(ctx, "user_id = ? AND month >= ? AND month <= ?", userID, from.String(), to.String())
}

// ListMonths returns the distinct months holding at least one transaction.
func (r *transactionRepository) ListMonths(ctx context.Context, userID uuid.UUID) ([]valueobject.Month, error) {
	var raw []string
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Distinct("month").
		Order("month DESC").
		Pluck("month", &raw)
	if result.Error != nil {
		return nil, result.Error
	}

	months := make([]valueobject.Month, 0, len(raw))
	for _, s := range raw {
		m, err := valueobject.ParseMonth(s)
		if err != nil {
			slog.Warn("Skipping malformed stored month", "user_id", userID, "month", s)
			continue
		}
		months = append(months, m)
	}
	return months, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Save(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) find(ctx context.Context, query string, args ...interface{}) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where(query, args...).
		Order("date ASC, id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}
