package jobs

import (
	"context"
	"time"

	"arenahub-backend/internal/logger"
)

// FlushPendingNotifications retries notifications whose initial store failed.
func (jr *JobRunner) FlushPendingNotifications() {
	jr.runWithRecovery("FlushPendingNotifications", func() {
		delivered := jr.services.Notification.FlushPending(context.Background())
		if delivered > 0 {
			logger.Info("Flushed parked notifications", "delivered", delivered)
		}
	})
}

// PurgeReadNotifications deletes read notifications older than the configured
// TTL so the feed table stays bounded.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ttl := time.Duration(jr.config.Scheduler.NotificationTTLDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-ttl)

		deleted, err := jr.store.DeleteReadBefore(context.Background(), cutoff)
		if err != nil {
			logger.Error("Failed to purge read notifications", "error", err)
			return
		}
		if deleted > 0 {
			logger.Info("Purged read notifications", "deleted", deleted, "cutoff", cutoff)
		}
	})
}
