package workers

import (
	"path/filepath"
	"testing"
	"time"

	dbpkg "tonybot/db"
	"tonybot/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

func testStore(t *testing.T) *dbpkg.ChatLogStore {
	t.Helper()
	database, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	database.AutoMigrate(&models.ChatLog{})
	return dbpkg.NewChatLogStore(database)
}

func backdate(t *testing.T, store *dbpkg.ChatLogStore, id int64, at time.Time) {
	t.Helper()
	err := store.DB.Model(&models.ChatLog{}).
		Where("id = ?", id).
		UpdateColumn("created_at", at).Error
	if err != nil {
		t.Fatalf("backdate: %v", err)
	}
}

func insert(t *testing.T, store *dbpkg.ChatLogStore, msg string, age time.Duration) models.ChatLog {
	t.Helper()
	row, err := store.Insert(models.ChatLog{
		UserMessage: msg,
		AIResponse:  "ok",
		SessionID:   "sess-" + msg,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if age > 0 {
		backdate(t, store, row.ID, time.Now().Add(-age))
	}
	return row
}

func TestRecordInsertsRow(t *testing.T) {
	store := testStore(t)
	logger := NewChatLogger(store, zap.NewNop().Sugar(), 14)

	err := logger.Record(models.ChatLog{
		UserMessage: "What are Tony's skills?",
		AIResponse:  "React, Node.js, TypeScript.",
		UserIP:      "1.2.3.4",
		UserAgent:   "curl/8",
		SessionID:   "session_x",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	rows, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].UserMessage != "What are Tony's skills?" || rows[0].AIResponse != "React, Node.js, TypeScript." {
		t.Errorf("row = %+v, want exact message and reply", rows[0])
	}
	if rows[0].CreatedAt == nil {
		t.Error("created_at not assigned on insert")
	}
}

func TestSweepDeletesOnlyExpiredRows(t *testing.T) {
	store := testStore(t)
	logger := NewChatLogger(store, zap.NewNop().Sugar(), 14)

	insert(t, store, "ancient", 20*24*time.Hour)
	insert(t, store, "expired", 15*24*time.Hour)
	kept := insert(t, store, "inside", 13*24*time.Hour)
	fresh := insert(t, store, "fresh", 0)

	deleted, err := logger.Sweep()
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	rows, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", len(rows))
	}
	ids := map[int64]bool{rows[0].ID: true, rows[1].ID: true}
	if !ids[kept.ID] || !ids[fresh.ID] {
		t.Errorf("surviving ids = %v, want %d and %d", ids, kept.ID, fresh.ID)
	}

	// Idempotence: a second sweep with no new old rows is a no-op.
	deleted, err = logger.Sweep()
	if err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second sweep deleted %d rows, want 0", deleted)
	}
}

func TestRecordTriggersSweep(t *testing.T) {
	store := testStore(t)
	logger := NewChatLogger(store, zap.NewNop().Sugar(), 14)

	insert(t, store, "expired", 15*24*time.Hour)

	if err := logger.Record(models.ChatLog{UserMessage: "hi", AIResponse: "hello"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	total, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 1 {
		t.Errorf("count = %d, want the expired row swept on insert", total)
	}
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	store := testStore(t)
	logger := NewChatLogger(store, zap.NewNop().Sugar(), 14)

	// Force every insert to fail.
	store.DB.DropTable(&models.ChatLog{})

	err := logger.Record(models.ChatLog{UserMessage: "hi", AIResponse: "hello"})
	if err == nil {
		t.Fatal("expected insert error to be reported to the dispatcher")
	}
	// The point: it reports, it does not panic, and nothing upstream sees it.
}

func TestDispatchRecoversPanics(t *testing.T) {
	done := make(chan struct{})
	Dispatch(zap.NewNop().Sugar(), "boom", func() error {
		defer close(done)
		panic("kaboom")
	})
	<-done
	// Reaching here without the test process dying is the assertion.
}
