package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingConfirmation = "booking:confirmation"
	MailQueueName           = "mail"
)

// NewConfirmationTask packs a confirmation into an asynq task.
func NewConfirmationTask(msg BookingConfirmation) (*asynq.Task, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, payload), nil
}

// queuedMailService hands confirmations to a Redis backed queue so SMTP
// latency stays out of the booking request.
type queuedMailService struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewQueuedMailService(client *asynq.Client, logger *zap.Logger) MailServiceInterface {
	return &queuedMailService{client: client, logger: logger}
}

func (s *queuedMailService) SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error {
	task, err := NewConfirmationTask(msg)
	if err != nil {
		return err
	}
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.Queue(MailQueueName),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue booking confirmation: %w", err)
	}
	s.logger.Info("booking confirmation queued", zap.String("code", msg.Code), zap.String("task_id", info.ID))
	return nil
}

// NewConfirmationHandler delivers queued confirmations through mailer.
func NewConfirmationHandler(mailer MailServiceInterface, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var msg BookingConfirmation
		if err := json.Unmarshal(task.Payload(), &msg); err != nil {
			logger.Error("invalid booking confirmation payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err := mailer.SendBookingConfirmation(ctx, msg); err != nil {
			logger.Warn("booking confirmation delivery failed", zap.String("code", msg.Code), zap.Error(err))
			return err
		}
		return nil
	}
}

// NewMailWorker builds the asynq server and mux that drain the mail queue.
func NewMailWorker(opt asynq.RedisClientOpt, mailer MailServiceInterface, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 4,
		Queues:      map[string]int{MailQueueName: 1},
		Logger:      logger.Sugar(),
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmation, NewConfirmationHandler(mailer, logger))
	return srv, mux
}
