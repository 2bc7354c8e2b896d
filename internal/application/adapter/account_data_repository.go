package adapter

import (
	"context"

	"github.com/google/uuid"
)

// AccountDataRepository removes everything a user owns except the account itself.
type AccountDataRepository interface {
	// DeleteAllByUser deletes transactions, rules, exclusions, budgets, goals and
	// categories of the user in a single database transaction.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
