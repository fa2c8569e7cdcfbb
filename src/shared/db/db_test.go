package db

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"squadbot/src/shared/data"
	"squadbot/src/shared/types"
)

var testExpire = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestDB opens a fresh in-memory database with the full schema and foreign
// keys enforced, so the poll cascade behaves like it does on MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// Every pooled connection to :memory: would get its own database, so pin
	// the pool to a single connection. The pragma then sticks to it as well.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := data.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// createTestUser inserts a user row directly and returns it.
func createTestUser(t *testing.T, gdb *gorm.DB, telegramID int64, admin bool) types.User {
	t.Helper()

	user := types.User{TelegramID: telegramID, Admin: admin}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// createTestEvent creates a topic and an event under it via the handler layer.
func createTestEvent(t *testing.T, gdb *gorm.DB, topicID int64) EventInfo {
	t.Helper()

	if _, err := CreateTopic(gdb, topicID, "General"); err != nil {
		t.Fatalf("create test topic: %v", err)
	}
	info, err := CreateEventDetails(gdb, EventData{
		TopicID:    topicID,
		EventName:  "Meetup",
		Latitude:   10.0,
		Longitude:  20.0,
		Price:      0,
		ExpireDate: testExpire,
	})
	if err != nil {
		t.Fatalf("create test event: %v", err)
	}
	return info
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }
