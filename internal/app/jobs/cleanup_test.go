package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/pkg/logger"
)

type fakeNotificationRepo struct {
	deleted    int64
	lastCutoff time.Time
	err        error
}

func (r *fakeNotificationRepo) Insert(ctx context.Context, n *etnotify.Notification) error {
	return nil
}

func (r *fakeNotificationRepo) ListUnread(ctx context.Context, recipientType etnotify.RecipientType) ([]*etnotify.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.lastCutoff = cutoff
	return r.deleted, r.err
}

func (r *fakeNotificationRepo) CountUnreadByRecipient(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

type fakeAlertRepo struct {
	deleted    int64
	lastCutoff time.Time
	err        error
}

func (r *fakeAlertRepo) Insert(ctx context.Context, a *etnotify.Alert) error { return nil }

func (r *fakeAlertRepo) ListUnacknowledged(ctx context.Context) ([]*etnotify.Alert, error) {
	return nil, nil
}

func (r *fakeAlertRepo) Acknowledge(ctx context.Context, ids []string, acknowledgedBy string) (int64, error) {
	return 0, nil
}

func (r *fakeAlertRepo) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.lastCutoff = cutoff
	return r.deleted, r.err
}

func (r *fakeAlertRepo) CountUnacknowledgedByType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func newTestJob(notifyRepo *fakeNotificationRepo, alertRepo *fakeAlertRepo) *CleanupJob {
	return NewCleanupJob(notifyRepo, alertRepo, &CleanupConfig{
		Interval:      time.Hour,
		RetentionDays: 7,
		PassTimeout:   time.Minute,
	}, logger.NopLogger{})
}

func TestRunOnceUsesRetentionCutoff(t *testing.T) {
	notifyRepo := &fakeNotificationRepo{deleted: 3}
	alertRepo := &fakeAlertRepo{deleted: 1}
	job := newTestJob(notifyRepo, alertRepo)

	job.RunOnce(context.Background())

	expected := time.Now().AddDate(0, 0, -7)
	assert.WithinDuration(t, expected, notifyRepo.lastCutoff, time.Minute)
	assert.WithinDuration(t, expected, alertRepo.lastCutoff, time.Minute)
}

func TestRunOnceFailuresIndependent(t *testing.T) {
	// 通知清理失败不影响告警清理
	notifyRepo := &fakeNotificationRepo{err: errors.New("db down")}
	alertRepo := &fakeAlertRepo{deleted: 2}
	job := newTestJob(notifyRepo, alertRepo)

	job.RunOnce(context.Background())

	assert.False(t, alertRepo.lastCutoff.IsZero())
}

func TestStartStopsOnContextCancel(t *testing.T) {
	job := newTestJob(&fakeNotificationRepo{}, &fakeAlertRepo{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup job did not stop on context cancel")
	}
}
