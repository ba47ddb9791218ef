package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"estatehub/server/config"
	"estatehub/server/internal/database"
	"estatehub/server/internal/models"
	"estatehub/server/internal/queue"
)

// BatchProcessor drains the inquiry queue into the leads database.
type BatchProcessor struct {
	db     *gorm.DB
	logger *logrus.Logger
	config *config.Config
	queue  *queue.InquiryQueue
	ctx    context.Context
	cancel context.CancelFunc
}

func NewBatchProcessor(db *gorm.DB, queue *queue.InquiryQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers the processor on the queue. Registration completes before
// Start returns, so a batch pushed any time afterwards reaches persistence.
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(p.processBatch)
}

// Stop aborts any retry backoff in progress.
func (p *BatchProcessor) Stop() {
	p.cancel()
}

// processBatch writes one batch inside a transaction, retrying failed writes
// with a fixed delay.
func (p *BatchProcessor) processBatch(batch []*models.Inquiry) error {
	var err error
	for attempt := 0; attempt <= p.config.InquiryProcessing.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying inquiry batch, attempt %d of %d", attempt, p.config.InquiryProcessing.MaxRetries)
			select {
			case <-p.ctx.Done():
				return p.ctx.Err()
			case <-time.After(time.Duration(p.config.InquiryProcessing.RetryDelay) * time.Second):
			}
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			return database.SaveInquiries(tx, batch)
		})
		if err == nil {
			p.logger.WithField("batch_size", len(batch)).Info("Persisted inquiry batch")
			return nil
		}

		p.logger.WithError(err).Error("Inquiry batch write failed")
	}

	return fmt.Errorf("failed to persist batch after %d attempts: %w", p.config.InquiryProcessing.MaxRetries, err)
}
