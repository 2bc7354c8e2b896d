// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// TransactionRepository defines the interface for real transaction persistence operations.
// Predictions are never passed to it.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates several transactions in a single database transaction.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserAndMonth retrieves a user's transactions for one month, ordered by date.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.Transaction, error)

	// FindByUserAndMonthRange retrieves a user's transactions for months in [from, to], ordered by date.
	FindByUserAndMonthRange(ctx context.Context, userID uuid.UUID, from, to valueobject.Month) ([]*entity.Transaction, error)

	// ListMonths returns the distinct months in which the user has transactions.
	ListMonths(ctx context.Context, userID uuid.UUID) ([]valueobject.Month, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
