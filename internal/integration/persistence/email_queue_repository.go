package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewEmailQueueRepository creates the gorm-backed notification queue.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ? AND attempts < max_attempts", entity.EmailStatusPending, r.now()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*entity.EmailJob, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, rows[i].ToEntity())
	}
	return jobs, nil
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -olderThanDays)
	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, cutoff).
		Delete(&model.EmailQueueModel{})
	return result.RowsAffected, result.Error
}
