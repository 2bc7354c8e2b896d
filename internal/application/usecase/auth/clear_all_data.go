package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ClearConfirmation is the text a user must type to wipe their data.
const ClearConfirmation = "DELETE"

// ClearAllDataInput represents the input for wiping a user's data.
type ClearAllDataInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// ClearAllDataOutput represents the output of a data wipe.
type ClearAllDataOutput struct {
	Success bool
}

// ClearAllDataUseCase deletes every row the user owns and drops the cached
// session. The account itself survives.
type ClearAllDataUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	accountData     adapter.AccountDataRepository
	sessionStore    adapter.SessionStore
	logger          *slog.Logger
}

// NewClearAllDataUseCase creates a new ClearAllDataUseCase instance.
func NewClearAllDataUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	accountData adapter.AccountDataRepository,
	sessionStore adapter.SessionStore,
	logger *slog.Logger,
) *ClearAllDataUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClearAllDataUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		accountData:     accountData,
		sessionStore:    sessionStore,
		logger:          logger,
	}
}

// Execute performs the wipe.
func (uc *ClearAllDataUseCase) Execute(ctx context.Context, input ClearAllDataInput) (*ClearAllDataOutput, error) {
	if input.Confirmation != ClearConfirmation {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation must be exactly 'DELETE'",
			domainerror.ErrInvalidConfirmation,
		)
	}

	// Find user by ID
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials("invalid password")
	}

	if err := uc.accountData.DeleteAllByUser(ctx, input.UserID); err != nil {
		return nil, domainerror.NewPersistenceError("clear account data", err)
	}

	if err := uc.sessionStore.Clear(ctx, input.UserID); err != nil {
		uc.logger.Error("failed to clear session cache after data wipe",
			"owner_id", input.UserID.String(),
			"error", err.Error(),
		)
	}

	uc.logger.Info("account data cleared", "owner_id", input.UserID.String())

	return &ClearAllDataOutput{
		Success: true,
	}, nil
}
