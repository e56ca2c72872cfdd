package postgres

import (
	"errors"
	"fmt"

	"github.com/switchyard-web/switchyard"
	"gorm.io/gorm"
)

// A Store is the conventional persistence collaborator for resource handlers.
// The embedded *gorm.DB is available directly for more complex composition.
type Store struct {
	*gorm.DB
}

// FindByID receives a record as a pointer and fetches it using the primary ID,
// returning ErrNotExist when no such record exists.
func (s *Store) FindByID(record any, id any) error {
	err := s.Where("id = ?", id).First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %T %v", switchyard.ErrNotExist, record, id)
	}

	return err
}

// All receives a slice of records as a pointer and fetches every one,
// ordered by primary ID.
func (s *Store) All(records any) error {
	return s.Order("id").Find(records).Error
}

// Insert receives a record as a pointer and inserts it.
func (s *Store) Insert(record any) error {
	return s.Create(record).Error
}
