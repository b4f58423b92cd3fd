package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"gorm.io/gorm"
)

// DeleteOlderThan removes system logs recorded before cutoff.
func DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup deletes system logs older than retentionDays once a day until
// done is closed. A non-positive retention keeps logs forever.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	if retentionDays <= 0 {
		slog.Info("system log cleanup disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := DeleteOlderThan(db, time.Now().AddDate(0, 0, -retentionDays))
				if err != nil {
					slog.Error("log cleanup failed", "action", "log_cleanup", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "action", "log_cleanup", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
