// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/MatheusJosue/planilha-financeira-v2/config"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/auth"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/budget"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/category"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/dashboard"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/goal"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/recurring"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/session"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/transaction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/cache"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/db"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/server/router"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/adapters"
	integrationcache "github.com/MatheusJosue/planilha-financeira-v2/internal/integration/cache"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/csvio"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/email"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/email/templates"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/controller"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/middleware"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence"
)

// Options carries the pieces tests swap out.
type Options struct {
	// Clock defaults to the system clock.
	Clock adapter.Clock
	// BcryptCost defaults to adapters.DefaultBcryptCost.
	BcryptCost int
	Logger     *slog.Logger
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// EmailWorker is nil when no email provider is configured.
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database, redis *cache.Redis, opts Options) (*Injector, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = adapters.DefaultBcryptCost
	}
	gdb := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gdb)
	tokenRepo := persistence.NewTokenRepository(gdb)
	ruleRepo := persistence.NewRecurringRuleRepository(gdb)
	transactionRepo := persistence.NewTransactionRepository(gdb)
	exclusionRepo := persistence.NewExclusionRepository(gdb)
	categoryRepo := persistence.NewCategoryRepository(gdb)
	budgetRepo := persistence.NewBudgetRepository(gdb)
	goalRepo := persistence.NewGoalRepository(gdb)
	emailQueueRepo := persistence.NewEmailQueueRepository(gdb)
	accountDataRepo := persistence.NewAccountDataRepository(gdb)

	// Adapters/services
	passwordService := adapters.NewPasswordService(cost)
	tokenService := adapters.NewTokenService(&cfg.JWT, tokenRepo)
	sessionStore := integrationcache.NewSessionStore(redis.Client(), cfg.Redis.SessionTTL)
	codec := csvio.NewCodec(0)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Projection
	ledger := prediction.NewLedger(exclusionRepo, sessionStore, logger)
	projector := prediction.NewProjector(
		transactionRepo,
		ruleRepo,
		ledger,
		projection.NewEngine(logger),
		clock,
		prediction.HorizonConfig{
			Default: cfg.Projection.DefaultHorizon,
			Max:     cfg.Projection.MaxHorizon,
		},
	)
	alerter := budget.NewThresholdAlerter(budgetRepo, transactionRepo, userRepo, emailService, cfg.Email.BudgetAlerts, logger)

	// Auth
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(userRepo, tokenService),
		auth.NewLogoutUserUseCase(tokenService, sessionStore, logger),
		auth.NewClearAllDataUseCase(userRepo, passwordService, accountDataRepo, sessionStore, logger),
	)

	// Session
	sessionController := controller.NewSessionController(
		session.NewGetSessionUseCase(sessionStore, ledger, clock, logger),
		session.NewSelectMonthUseCase(sessionStore),
		session.NewResetSessionUseCase(sessionStore),
	)

	// Recurring rules
	recurringController := controller.NewRecurringController(
		recurring.NewListRulesUseCase(ruleRepo),
		recurring.NewCreateRuleUseCase(ruleRepo),
		recurring.NewGetRuleUseCase(ruleRepo),
		recurring.NewUpdateRuleUseCase(ruleRepo),
		recurring.NewDeleteRuleUseCase(ruleRepo, ledger, logger),
	)

	// Transactions and months
	transactionController := controller.NewTransactionController(
		transaction.NewListMonthUseCase(projector),
		transaction.NewCreateTransactionUseCase(transactionRepo, alerter),
		transaction.NewUpdateTransactionUseCase(transactionRepo, alerter),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		transaction.NewTogglePaymentStatusUseCase(transactionRepo),
		transaction.NewDuplicateTransactionUseCase(transactionRepo, alerter),
		transaction.NewExportMonthUseCase(transactionRepo, codec),
		transaction.NewImportTransactionsUseCase(transactionRepo, categoryRepo, codec, logger),
	)
	monthController := controller.NewMonthController(
		transaction.NewAvailableMonthsUseCase(transactionRepo, ruleRepo, clock),
		transaction.NewStartMonthUseCase(transactionRepo, sessionStore, logger),
	)

	// Predictions
	predictionController := controller.NewPredictionController(
		prediction.NewListPredictionsUseCase(projector),
		prediction.NewConvertPredictionUseCase(projector, transactionRepo, ledger, logger),
		prediction.NewDismissPredictionUseCase(ruleRepo, ledger),
		prediction.NewRestorePredictionUseCase(ledger),
	)

	// Categories, budgets and goals
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryLimitsUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
		category.NewShowCategoryUseCase(categoryRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewSetBudgetUseCase(budgetRepo),
		budget.NewDeleteBudgetUseCase(budgetRepo),
		budget.NewGetBudgetStatusUseCase(budgetRepo, transactionRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewGetGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
		goal.NewContributeToGoalUseCase(goalRepo),
	)

	// Dashboard
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetTrendsUseCase(projector),
		dashboard.NewGetCategoryBreakdownUseCase(projector),
	)

	healthController := controller.NewHealthController(database.HealthCheck, redis.HealthCheck)

	r := router.NewRouter(
		healthController,
		authController,
		sessionController,
		recurringController,
		transactionController,
		monthController,
		predictionController,
		categoryController,
		budgetController,
		goalController,
		dashboardController,
		middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow),
		middleware.NewAuthMiddleware(tokenService),
		logger,
	)

	injector := &Injector{
		Config: cfg,
		DB:     gdb,
		Router: r,
	}

	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			if err := sender.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
				return nil, err
			}
		}
		injector.EmailWorker = email.NewWorker(
			emailQueueRepo,
			sender,
			renderer,
			email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			},
			logger,
		)
	}

	return injector, nil
}
