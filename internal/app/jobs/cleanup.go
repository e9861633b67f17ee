package jobs

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"opne/internal/app/domains/repo/rpnotify"
	"opne/internal/app/pkg/logger"
)

// CleanupConfig 清理任务配置
type CleanupConfig struct {
	Interval      time.Duration // 两次清理之间的间隔
	RetentionDays int           // 已读通知/已确认告警的保留天数
	PassTimeout   time.Duration // 单次清理的超时
}

// CleanupJob 通知保留清理任务
// 定期删除超过保留期的已读通知与已确认告警；未读/未确认的数据永不删除
type CleanupJob struct {
	notifyRepo rpnotify.NotificationRepository
	alertRepo  rpnotify.AlertRepository
	cfg        *CleanupConfig
	logger     logger.Logger
	closing    *atomic.Bool
}

// NewCleanupJob 创建清理任务实例
func NewCleanupJob(
	notifyRepo rpnotify.NotificationRepository,
	alertRepo rpnotify.AlertRepository,
	cfg *CleanupConfig,
	log logger.Logger,
) *CleanupJob {
	return &CleanupJob{
		notifyRepo: notifyRepo,
		alertRepo:  alertRepo,
		cfg:        cfg,
		logger:     log,
		closing:    atomic.NewBool(false),
	}
}

// Start 启动定时清理循环，直到 ctx 取消
func (j *CleanupJob) Start(ctx context.Context) {
	j.logger.Infof(ctx, "[CleanupJob] started: interval=%v, retention=%dd",
		j.cfg.Interval, j.cfg.RetentionDays)

	ticker := time.NewTicker(j.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Infof(ctx, "[CleanupJob] stopped")
			return
		case <-ticker.C:
			if j.closing.Load() {
				return
			}
			j.RunOnce(ctx)
		}
	}
}

// Shutdown 停止后续清理
func (j *CleanupJob) Shutdown() {
	j.closing.CAS(false, true)
}

// RunOnce 执行一次清理
// 两类删除互相独立，一类失败不影响另一类
func (j *CleanupJob) RunOnce(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, j.cfg.PassTimeout)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -j.cfg.RetentionDays)

	notifications, err := j.notifyRepo.DeleteReadBefore(passCtx, cutoff)
	if err != nil {
		j.logger.Errorf(passCtx, "[CleanupJob] delete read notifications failed: %v", err)
	}

	alerts, err := j.alertRepo.DeleteAcknowledgedBefore(passCtx, cutoff)
	if err != nil {
		j.logger.Errorf(passCtx, "[CleanupJob] delete acknowledged alerts failed: %v", err)
	}

	j.logger.Infof(passCtx, "[CleanupJob] pass done: notifications=%d, alerts=%d, cutoff=%s",
		notifications, alerts, cutoff.Format(time.RFC3339))
}
