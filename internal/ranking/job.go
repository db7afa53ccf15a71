package ranking

import (
	"context"
	"time"

	"github.com/osse101/aion2-tracker/internal/logger"
)

// RecalibrateJob runs Recalibrate on the worker pool
type RecalibrateJob struct {
	service Service
}

// NewRecalibrateJob creates a new recalibration job
func NewRecalibrateJob(service Service) *RecalibrateJob {
	return &RecalibrateJob{service: service}
}

// Name identifies the job in logs
func (j *RecalibrateJob) Name() string {
	return JobNameRecalibrate
}

// Process executes the recalibration
func (j *RecalibrateJob) Process(ctx context.Context) error {
	start := time.Now()
	_, err := j.service.Recalibrate(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRecalibrateFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return err
	}
	return nil
}
