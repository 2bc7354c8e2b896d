package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/email/templates"
)

// sentRetentionDays is how long delivered jobs stay in the queue table.
const sentRetentionDays = 30

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval    time.Duration
	BatchSize       int
	CleanupInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       10,
		CleanupInterval: time.Hour,
	}
}

// Worker drains the email queue: it renders each pending job and hands it
// to the sender, rescheduling transient failures.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   WorkerConfig
	logger   *slog.Logger
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig, logger *slog.Logger) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
		logger:   logger,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Email worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
	)

	poll := time.NewTicker(w.config.PollInterval)
	defer poll.Stop()
	cleanup := time.NewTicker(w.config.CleanupInterval)
	defer cleanup.Stop()

	w.ProcessNow(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Email worker shutting down")
			return
		case <-poll.C:
			w.ProcessNow(ctx)
		case <-cleanup.C:
			w.cleanup(ctx)
		}
	}
}

// ProcessNow processes one batch of pending jobs and returns how many were sent.
func (w *Worker) ProcessNow(ctx context.Context) int {
	jobs, err := w.queue.GetPendingJobs(ctx, w.config.BatchSize)
	if err != nil {
		w.logger.Error("Failed to get pending email jobs", "error", err)
		return 0
	}

	sent := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if w.processJob(ctx, job) {
			sent++
		}
	}
	return sent
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) bool {
	logger := w.logger.With(
		"job_id", job.ID,
		"template", job.TemplateType,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return false
	}

	html, text, err := w.render(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.fail(ctx, job, err, true)
		return false
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		w.fail(ctx, job, err, IsPermanent(err))
		return false
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return false
	}

	logger.Info("Email sent", "resend_id", result.ResendID)
	return true
}

func (w *Worker) render(job *entity.EmailJob) (string, string, error) {
	switch job.TemplateType {
	case entity.TemplateBudgetAlert:
		over, _ := job.TemplateData["is_over_budget"].(bool)
		return w.renderer.Render(string(job.TemplateType), templates.BudgetAlertData{
			UserName:       stringField(job.TemplateData, "user_name"),
			Category:       stringField(job.TemplateData, "category"),
			Month:          stringField(job.TemplateData, "month"),
			BudgetValue:    stringField(job.TemplateData, "budget_value"),
			SpentValue:     stringField(job.TemplateData, "spent_value"),
			PercentageUsed: stringField(job.TemplateData, "percentage_used"),
			IsOverBudget:   over,
			BudgetsURL:     stringField(job.TemplateData, "budgets_url"),
		})
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type "+string(job.TemplateType),
			domainerror.ErrInvalidTemplate,
		)
	}
}

func (w *Worker) fail(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		w.logger.Error("Failed to update job after failure", "job_id", job.ID, "error", updateErr)
		return
	}

	if job.Status == entity.EmailStatusFailed {
		w.logger.Warn("Email job dropped",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	w.logger.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) cleanup(ctx context.Context) {
	removed, err := w.queue.DeleteOldSentJobs(ctx, sentRetentionDays)
	if err != nil {
		w.logger.Error("Failed to delete old sent email jobs", "error", err)
		return
	}
	if removed > 0 {
		w.logger.Info("Deleted old sent email jobs", "count", removed)
	}
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
