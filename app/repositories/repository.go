// Package repositories is the persistence layer. Every repository receives
// its *gorm.DB at construction, so handlers and tests choose the database
// (and tests run against in-memory sqlite without any global state).
package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row. gorm's sentinel is
// translated here so callers never import gorm to check an error.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
