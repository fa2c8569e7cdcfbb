package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"squadbot/src/shared/types"
)

// PollData carries the fields for a new attendance poll. UserID and EventID
// are surrogate keys.
type PollData struct {
	UserID        uint64
	EventID       uint64
	Visitation    bool
	Reason        *string
	Car           bool
	Hitchhike     *bool
	StartLocation string
}

// PollInfo is the record returned by poll operations, including both owning
// ids.
type PollInfo struct {
	ID            uint64
	UserID        uint64
	EventID       uint64
	Visitation    bool
	Reason        *string
	Car           bool
	Hitchhike     *bool
	StartLocation string
}

// CreatePollResults validates that the owning user and event exist, then
// records the poll. The returned fault names whichever owner is missing.
func CreatePollResults(gdb *gorm.DB, data PollData) (PollInfo, error) {
	var user types.User
	err := gdb.First(&user, data.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PollInfo{}, fmt.Errorf("user with id %d: %w", data.UserID, ErrNotFound)
	}
	if err != nil {
		return PollInfo{}, err
	}

	var event types.Event
	err = gdb.First(&event, data.EventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PollInfo{}, fmt.Errorf("event with id %d: %w", data.EventID, ErrNotFound)
	}
	if err != nil {
		return PollInfo{}, err
	}

	poll := types.Poll{
		UserID:        user.ID,
		EventID:       event.ID,
		Visitation:    data.Visitation,
		Reason:        data.Reason,
		Car:           data.Car,
		Hitchhike:     data.Hitchhike,
		StartLocation: data.StartLocation,
	}
	if err := gdb.Create(&poll).Error; err != nil {
		return PollInfo{}, fmt.Errorf("create poll: %w", err)
	}

	return pollInfo(poll), nil
}

// GetPollResultsByUserID returns the first poll recorded for the user, or nil
// when the user has not taken one. A missing user is still a fault.
func GetPollResultsByUserID(gdb *gorm.DB, userID uint64) (*PollInfo, error) {
	var user types.User
	err := gdb.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user with id %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var poll types.Poll
	err = gdb.Where("user_id = ?", user.ID).First(&poll).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	info := pollInfo(poll)
	return &info, nil
}

// DeletePollResults removes the poll row.
func DeletePollResults(gdb *gorm.DB, id uint64) error {
	var poll types.Poll
	err := gdb.First(&poll, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("poll with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}
	return gdb.Delete(&poll).Error
}

func pollInfo(poll types.Poll) PollInfo {
	return PollInfo{
		ID:            poll.ID,
		UserID:        poll.UserID,
		EventID:       poll.EventID,
		Visitation:    poll.Visitation,
		Reason:        poll.Reason,
		Car:           poll.Car,
		Hitchhike:     poll.Hitchhike,
		StartLocation: poll.StartLocation,
	}
}
