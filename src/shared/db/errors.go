// Package db is the data-access layer of the bot: stateless operations over
// an injected gorm handle, one fetch/validate/mutate/persist unit per call.
// Lookups that miss fail with ErrNotFound wrapped with the entity and
// identifier; uniqueness violations fail with ErrConflict. The two exceptions
// are IsUserAdmin and GetPollResultsByUserID, whose absent case is a normal
// result rather than a fault.
package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
