package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func TestConfirmationHandlerDeliversPayload(t *testing.T) {
	mailer := &recordingMailer{}
	task, err := NewConfirmationTask(testConfirmation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TypeBookingConfirmation {
		t.Fatalf("task type = %q", task.Type())
	}

	if err := NewConfirmationHandler(mailer, zap.NewNop())(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != testConfirmation() {
		t.Fatalf("sent = %+v", mailer.sent)
	}
}

func TestConfirmationHandlerSkipsRetryOnBadPayload(t *testing.T) {
	task := asynq.NewTask(TypeBookingConfirmation, []byte("{not json"))
	err := NewConfirmationHandler(&recordingMailer{}, zap.NewNop())(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v, want SkipRetry", err)
	}
}

func TestConfirmationHandlerReturnsDeliveryError(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	task, _ := NewConfirmationTask(testConfirmation())
	if err := NewConfirmationHandler(mailer, zap.NewNop())(context.Background(), task); err == nil {
		t.Fatal("expected delivery error so asynq retries")
	}
}
