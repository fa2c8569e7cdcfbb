package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"squadbot/src/shared/types"
)

// EventData carries the fields for a new event. TopicID is the telegram topic
// id of the owning topic, not its surrogate key.
type EventData struct {
	TopicID        int64
	EventName      string
	EventLink      *string
	OrganizerRules *string
	Latitude       float64
	Longitude      float64
	Price          int64
	ExpireDate     time.Time
}

// EventInfo is the composite record returned by every event operation. It
// includes the owning topic's surrogate id and name. For an event whose topic
// was deleted the name is empty.
type EventInfo struct {
	ID             uint64
	EventName      string
	EventLink      *string
	OrganizerRules *string
	Latitude       float64
	Longitude      float64
	Price          int64
	ExpireDate     time.Time
	TopicID        uint64
	TopicName      string
}

// CreateEventDetails resolves the owning topic by telegram topic id and
// creates the event.
func CreateEventDetails(gdb *gorm.DB, data EventData) (EventInfo, error) {
	topic, err := findTopic(gdb, data.TopicID)
	if err != nil {
		return EventInfo{}, err
	}

	event := types.Event{
		TopicID:        topic.ID,
		EventName:      data.EventName,
		EventLink:      data.EventLink,
		OrganizerRules: data.OrganizerRules,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Price:          data.Price,
		ExpireDate:     data.ExpireDate,
	}
	if err := gdb.Create(&event).Error; err != nil {
		return EventInfo{}, fmt.Errorf("create event: %w", err)
	}

	return eventInfo(gdb, event)
}

// GetEventDetails returns the composite record for the event id.
func GetEventDetails(gdb *gorm.DB, id uint64) (EventInfo, error) {
	event, err := findEvent(gdb, id)
	if err != nil {
		return EventInfo{}, err
	}
	return eventInfo(gdb, event)
}

func UpdateEventName(gdb *gorm.DB, id uint64, name string) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.EventName = name })
}

func UpdateEventLink(gdb *gorm.DB, id uint64, link string) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.EventLink = &link })
}

func UpdateOrganizerRules(gdb *gorm.DB, id uint64, rules string) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.OrganizerRules = &rules })
}

func UpdateLatitude(gdb *gorm.DB, id uint64, latitude float64) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.Latitude = latitude })
}

func UpdateLongitude(gdb *gorm.DB, id uint64, longitude float64) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.Longitude = longitude })
}

func UpdatePrice(gdb *gorm.DB, id uint64, price int64) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.Price = price })
}

func UpdateExpireDate(gdb *gorm.DB, id uint64, expire time.Time) (EventInfo, error) {
	return updateEvent(gdb, id, func(e *types.Event) { e.ExpireDate = expire })
}

// DeleteEvent removes the event row; its polls cascade with it.
func DeleteEvent(gdb *gorm.DB, id uint64) error {
	event, err := findEvent(gdb, id)
	if err != nil {
		return err
	}
	return gdb.Delete(&event).Error
}

// updateEvent is the shared fetch-mutate-persist path of the narrow update
// operations. Each mutation touches exactly one field.
func updateEvent(gdb *gorm.DB, id uint64, mutate func(*types.Event)) (EventInfo, error) {
	event, err := findEvent(gdb, id)
	if err != nil {
		return EventInfo{}, err
	}
	mutate(&event)
	if err := gdb.Save(&event).Error; err != nil {
		return EventInfo{}, err
	}
	return eventInfo(gdb, event)
}

func findEvent(gdb *gorm.DB, id uint64) (types.Event, error) {
	var event types.Event
	err := gdb.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Event{}, fmt.Errorf("event with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Event{}, err
	}
	return event, nil
}

func eventInfo(gdb *gorm.DB, event types.Event) (EventInfo, error) {
	info := EventInfo{
		ID:             event.ID,
		EventName:      event.EventName,
		EventLink:      event.EventLink,
		OrganizerRules: event.OrganizerRules,
		Latitude:       event.Latitude,
		Longitude:      event.Longitude,
		Price:          event.Price,
		ExpireDate:     event.ExpireDate,
		TopicID:        event.TopicID,
	}

	var topic types.Topic
	err := gdb.First(&topic, event.TopicID).Error
	if err == nil {
		info.TopicName = topic.TopicName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EventInfo{}, err
	}

	return info, nil
}
