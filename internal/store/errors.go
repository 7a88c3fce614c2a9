package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrStorage wraps every failure reported by the database.
	ErrStorage = errors.New("storage error")
	// ErrContentNotFound is returned when no content row matches.
	ErrContentNotFound = errors.New("content not found")
	// ErrMetaNotFound is returned when no meta row matches.
	ErrMetaNotFound = errors.New("meta not found")
)

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// notFound maps gorm's record-not-found to target and wraps everything else.
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return wrap(err)
}
