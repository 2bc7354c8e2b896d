package email

import (
	"context"
	"fmt"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// Service queues emails for the worker.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueBudgetAlertEmail queues a budget alert for a category that reached
// its alert threshold.
func (s *Service) QueueBudgetAlertEmail(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Alerta de orçamento: %s em %s", input.Category, input.Month)
	if input.IsOverBudget {
		subject = fmt.Sprintf("Orçamento estourado: %s em %s", input.Category, input.Month)
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		input.UserEmail,
		input.UserName,
		subject,
		map[string]interface{}{
			"user_name":       input.UserName,
			"category":        input.Category,
			"month":           input.Month,
			"budget_value":    input.BudgetValue,
			"spent_value":     input.SpentValue,
			"percentage_used": input.PercentageUsed,
			"is_over_budget":  input.IsOverBudget,
			"budgets_url":     s.appBaseURL + "/budgets?month=" + input.Month,
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
