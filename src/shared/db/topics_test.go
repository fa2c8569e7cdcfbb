package db

import (
	"errors"
	"testing"

	"squadbot/src/shared/types"
)

func TestCreateTopicAllowsDuplicateTopicIDs(t *testing.T) {
	gdb := newTestDB(t)

	first, err := CreateTopic(gdb, 100, "General")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := CreateTopic(gdb, 100, "General again")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct surrogate ids, both got %d", first.ID)
	}
}

func TestGetTopicInfoReturnsFirstMatch(t *testing.T) {
	gdb := newTestDB(t)

	if _, err := CreateTopic(gdb, 100, "General"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreateTopic(gdb, 100, "Shadow"); err != nil {
		t.Fatalf("create: %v", err)
	}

	topic, err := GetTopicInfo(gdb, 100)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if topic.TopicName != "General" {
		t.Errorf("expected first match %q, got %q", "General", topic.TopicName)
	}
}

func TestGetTopicInfoNotFound(t *testing.T) {
	gdb := newTestDB(t)

	_, err := GetTopicInfo(gdb, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameTopic(t *testing.T) {
	gdb := newTestDB(t)

	if _, err := CreateTopic(gdb, 100, "General"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := RenameTopic(gdb, 100, "Operations"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	topic, err := GetTopicInfo(gdb, 100)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if topic.TopicName != "Operations" {
		t.Errorf("expected %q, got %q", "Operations", topic.TopicName)
	}
}

func TestRenameTopicNotFound(t *testing.T) {
	gdb := newTestDB(t)

	if err := RenameTopic(gdb, 42, "Ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTopicLeavesEvents(t *testing.T) {
	gdb := newTestDB(t)

	created := createTestEvent(t, gdb, 100)
	if created.TopicName != "General" {
		t.Fatalf("expected topic name %q on create, got %q", "General", created.TopicName)
	}

	if err := DeleteTopic(gdb, 100); err != nil {
		t.Fatalf("delete topic: %v", err)
	}
	if _, err := GetTopicInfo(gdb, 100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected topic gone, got %v", err)
	}

	// The event survives as an orphan; only its topic name is blank now.
	info, err := GetEventDetails(gdb, created.ID)
	if err != nil {
		t.Fatalf("event should survive topic deletion: %v", err)
	}
	if info.TopicID != created.TopicID {
		t.Errorf("expected stored topic reference %d, got %d", created.TopicID, info.TopicID)
	}
	if info.TopicName != "" {
		t.Errorf("expected empty topic name for orphan, got %q", info.TopicName)
	}
}

func TestDeleteTopicNotFound(t *testing.T) {
	gdb := newTestDB(t)

	if err := DeleteTopic(gdb, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := gdb.Model(&types.Topic{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no topic rows, got %d", count)
	}
}
