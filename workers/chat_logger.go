package workers

import (
	"time"

	"tonybot/db"
	"tonybot/models"

	"go.uber.org/zap"
)

// ChatLogger persists chat exchanges as best-effort telemetry. A failed
// insert loses that one row and nothing else; callers dispatch Record
// without waiting and never see its outcome.
type ChatLogger struct {
	Store         *db.ChatLogStore
	Log           *zap.SugaredLogger
	RetentionDays int
}

func NewChatLogger(store *db.ChatLogStore, log *zap.SugaredLogger, retentionDays int) *ChatLogger {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &ChatLogger{Store: store, Log: log, RetentionDays: retentionDays}
}

// Record inserts one exchange, then sweeps expired rows. Insert failure is
// logged and ends the call; a sweep failure never invalidates the insert.
func (l *ChatLogger) Record(entry models.ChatLog) error {
	if _, err := l.Store.Insert(entry); err != nil {
		l.Log.Errorw("chat log insert failed", "error", err)
		return err
	}

	if _, err := l.Sweep(); err != nil {
		l.Log.Errorw("chat log sweep failed", "error", err)
	}
	return nil
}

// Sweep deletes rows older than the retention window. Idempotent; running it
// again with no new old rows is a no-op.
func (l *ChatLogger) Sweep() (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -l.RetentionDays)
	deleted, err := l.Store.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		l.Log.Infow("cleaned up old chat logs", "deleted", deleted, "retention_days", l.RetentionDays)
	}
	return deleted, nil
}
