package access

import (
	"testing"

	"github.com/glebarez/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"squadbot/src/shared/data"
	"squadbot/src/shared/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// One connection, one :memory: database.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := data.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func message(chatID int64, chatType string, fromID int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID, Type: chatType},
		From: &tgbotapi.User{ID: fromID},
	}
}

// recorder counts handler and refusal invocations.
type recorder struct {
	handled int
	refused int
}

func (r *recorder) handler(msg *tgbotapi.Message) error {
	r.handled++
	return nil
}

func (r *recorder) reply(chatID int64, text string) {
	r.refused++
}

func TestPrivateOnly(t *testing.T) {
	tests := []struct {
		name        string
		chatType    string
		wantHandled bool
	}{
		{"private chat passes", "private", true},
		{"group chat refused", "supergroup", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			guarded := PrivateOnly(rec.reply, rec.handler)
			if err := guarded(message(5, tt.chatType, 1)); err != nil {
				t.Fatalf("guard: %v", err)
			}
			if handled := rec.handled == 1; handled != tt.wantHandled {
				t.Errorf("handled = %t, want %t", handled, tt.wantHandled)
			}
			if tt.wantHandled == (rec.refused == 1) {
				t.Error("exactly one of handler and refusal should run")
			}
		})
	}
}

func TestGroupOnly(t *testing.T) {
	var rec recorder
	guarded := GroupOnly(-100, rec.reply, rec.handler)

	if err := guarded(message(-100, "supergroup", 1)); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if rec.handled != 1 {
		t.Error("squad group message should reach the handler")
	}

	if err := guarded(message(-200, "supergroup", 1)); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if rec.handled != 1 || rec.refused != 1 {
		t.Error("foreign group message should be refused")
	}
}

func TestAdminOnly(t *testing.T) {
	gdb := newTestDB(t)
	if err := gdb.Create(&types.User{TelegramID: 1, Admin: true}).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := gdb.Create(&types.User{TelegramID: 2}).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}

	tests := []struct {
		name        string
		fromID      int64
		wantHandled bool
	}{
		{"admin passes", 1, true},
		{"plain member refused", 2, false},
		{"unknown sender refused", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			guarded := AdminOnly(gdb, rec.reply, rec.handler)
			if err := guarded(message(5, "private", tt.fromID)); err != nil {
				t.Fatalf("guard: %v", err)
			}
			if handled := rec.handled == 1; handled != tt.wantHandled {
				t.Errorf("handled = %t, want %t", handled, tt.wantHandled)
			}
		})
	}
}
