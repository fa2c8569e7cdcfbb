package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"squadbot/src/shared/types"
)

// CreateTopic inserts a new topic row. Duplicate telegram topic ids are
// allowed; the schema does not require them to be unique.
func CreateTopic(gdb *gorm.DB, topicID int64, name string) (types.Topic, error) {
	topic := types.Topic{TopicID: topicID, TopicName: name}
	if err := gdb.Create(&topic).Error; err != nil {
		return types.Topic{}, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}

// GetTopicInfo returns the first topic matching the telegram topic id.
func GetTopicInfo(gdb *gorm.DB, topicID int64) (types.Topic, error) {
	return findTopic(gdb, topicID)
}

// RenameTopic sets a new display name on an existing topic.
func RenameTopic(gdb *gorm.DB, topicID int64, newName string) error {
	topic, err := findTopic(gdb, topicID)
	if err != nil {
		return err
	}
	topic.TopicName = newName
	return gdb.Save(&topic).Error
}

// DeleteTopic removes the topic row. Events that reference it stay in place;
// there is no constraint on events.topic_id.
func DeleteTopic(gdb *gorm.DB, topicID int64) error {
	topic, err := findTopic(gdb, topicID)
	if err != nil {
		return err
	}
	return gdb.Delete(&topic).Error
}

func findTopic(gdb *gorm.DB, topicID int64) (types.Topic, error) {
	var topic types.Topic
	err := gdb.Where("topic_id = ?", topicID).First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Topic{}, fmt.Errorf("topic with topic_id %d: %w", topicID, ErrNotFound)
	}
	if err != nil {
		return types.Topic{}, err
	}
	return topic, nil
}
