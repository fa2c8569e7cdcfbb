package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"squadbot/src/shared/types"
)

// IsUserAdmin reports whether the user holds the admin flag. An unknown
// telegram id is not a fault here: it reports false.
func IsUserAdmin(gdb *gorm.DB, telegramID int64) (bool, error) {
	var user types.User
	err := gdb.Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Admin, nil
}

// GetUserInfo returns the user record for the telegram id.
func GetUserInfo(gdb *gorm.DB, telegramID int64) (types.User, error) {
	return findUser(gdb, telegramID)
}

// AddUsers registers every telegram id that is not present yet and returns
// only the records created on this call. Already registered ids are skipped,
// which makes the operation idempotent.
func AddUsers(gdb *gorm.DB, telegramIDs []int64) ([]types.User, error) {
	var added []types.User
	for _, id := range telegramIDs {
		var existing types.User
		err := gdb.Where("telegram_id = ?", id).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return added, err
		}
		user := types.User{TelegramID: id}
		if err := gdb.Create(&user).Error; err != nil {
			return added, fmt.Errorf("create user %d: %w", id, err)
		}
		added = append(added, user)
	}
	return added, nil
}

// DeleteUser removes the user row; the user's polls cascade with it.
func DeleteUser(gdb *gorm.DB, telegramID int64) error {
	user, err := findUser(gdb, telegramID)
	if err != nil {
		return err
	}
	return gdb.Delete(&user).Error
}

// UpdateCallsign assigns a callsign after checking that no other user already
// holds it. The check and the write are separate statements; the unique
// column on users.callsign is the backstop if two assignments race.
func UpdateCallsign(gdb *gorm.DB, telegramID int64, callsign string) (types.User, error) {
	user, err := findUser(gdb, telegramID)
	if err != nil {
		return types.User{}, err
	}

	var holder types.User
	err = gdb.Where("callsign = ? AND id <> ?", callsign, user.ID).First(&holder).Error
	if err == nil {
		return types.User{}, fmt.Errorf("callsign %q already exists: %w", callsign, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return types.User{}, err
	}

	user.Callsign = &callsign
	if err := gdb.Save(&user).Error; err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateReserved flips the reserved flag and returns the updated record.
func UpdateReserved(gdb *gorm.DB, telegramID int64) (types.User, error) {
	user, err := findUser(gdb, telegramID)
	if err != nil {
		return types.User{}, err
	}
	user.Reserved = !user.Reserved
	if err := gdb.Model(&user).Update("reserved", user.Reserved).Error; err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateWarn sets the warning count to the given absolute value.
func UpdateWarn(gdb *gorm.DB, telegramID int64, warn int) (types.User, error) {
	user, err := findUser(gdb, telegramID)
	if err != nil {
		return types.User{}, err
	}
	user.Warn = warn
	if err := gdb.Model(&user).Update("warn", warn).Error; err != nil {
		return types.User{}, err
	}
	return user, nil
}

func findUser(gdb *gorm.DB, telegramID int64) (types.User, error) {
	var user types.User
	err := gdb.Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.User{}, fmt.Errorf("user with telegram_id %d: %w", telegramID, ErrNotFound)
	}
	if err != nil {
		return types.User{}, err
	}
	return user, nil
}
