package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// SelectMonthInput represents the input for selecting a month.
type SelectMonthInput struct {
	UserID uuid.UUID
	Month  string
}

// SelectMonthOutput represents the output of a month selection.
type SelectMonthOutput struct {
	Month valueobject.Month
}

// SelectMonthUseCase stores the month the user is looking at.
type SelectMonthUseCase struct {
	store adapter.SessionStore
}

// NewSelectMonthUseCase creates a new SelectMonthUseCase instance.
func NewSelectMonthUseCase(store adapter.SessionStore) *SelectMonthUseCase {
	return &SelectMonthUseCase{
		store: store,
	}
}

// Execute validates and stores the month.
func (uc *SelectMonthUseCase) Execute(ctx context.Context, input SelectMonthInput) (*SelectMonthOutput, error) {
	month, err := valueobject.ParseMonth(input.Month)
	if err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidSessionMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	if err := uc.store.SetSelectedMonth(ctx, input.UserID, month); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionStore,
			"failed to store selected month",
			err,
		)
	}

	return &SelectMonthOutput{
		Month: month,
	}, nil
}
