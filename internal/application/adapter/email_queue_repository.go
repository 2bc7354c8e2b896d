package adapter

import (
	"context"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// EmailQueueRepository stores outgoing notification jobs until the worker
// delivers them.
type EmailQueueRepository interface {
	// Create enqueues a job.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns up to limit due jobs that still have attempts
	// left, oldest schedule first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists the job's status, attempt count and next schedule.
	Update(ctx context.Context, job *entity.EmailJob) error

	// DeleteOldSentJobs prunes delivered jobs older than the given number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
