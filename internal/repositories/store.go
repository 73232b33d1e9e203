package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a strict lookup, update or delete targets an
// ID that has no row. Callers check it with errors.Is.
var ErrNotFound = errors.New("record not found")

// ListQuery shapes a collection read.
type ListQuery struct {
	OrderBy string   // column to sort by, ascending
	Columns []string // optional projection; empty selects everything
}

// Store defines the data access operations every resource needs.
type Store[T any] interface {
	Count() (int64, error)
	List(q ListQuery) ([]T, error)
	Find(cond string, arg any, orderBy string) ([]T, error)
	Get(id uint) (*T, error)
	Create(rec *T) error
	Update(id uint, fields map[string]any) (*T, error)
	Delete(id uint) error
}

// GormStore is a GORM implementation of Store.
type GormStore[T any] struct {
	db *gorm.DB
}

// NewGormStore creates a new instance of GormStore for one record type.
func NewGormStore[T any](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{
		db: db,
	}
}

// Count returns the total number of rows in the resource's table.
func (s *GormStore[T]) Count() (int64, error) {
	var model T
	var total int64
	if err := s.db.Model(&model).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return total, nil
}

// List retrieves all rows, ordered and optionally projected per q.
func (s *GormStore[T]) List(q ListQuery) ([]T, error) {
	var recs []T
	tx := s.db.Order(q.OrderBy)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	if err := tx.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return recs, nil
}

// Find retrieves the rows matching cond (a parameterized WHERE fragment),
// ordered ascending by orderBy. No matches is an empty slice, not an error.
func (s *GormStore[T]) Find(cond string, arg any, orderBy string) ([]T, error) {
	var recs []T
	if err := s.db.Where(cond, arg).Order(orderBy).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to find records: %w", err)
	}
	return recs, nil
}

// Get retrieves a single row by its ID. A missing row yields ErrNotFound.
func (s *GormStore[T]) Get(id uint) (*T, error) {
	var rec T
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("record with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get record by ID %d: %w", id, err)
	}
	return &rec, nil
}

// Create inserts a new row. The database assigns the ID and GORM writes it
// back into rec.
func (s *GormStore[T]) Create(rec *T) error {
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update applies only the supplied fields to the row with the given ID and
// returns the resulting record. An empty fields map is a no-op read. The
// existence check runs first so a missing ID yields ErrNotFound even when
// there is nothing to write.
func (s *GormStore[T]) Update(id uint, fields map[string]any) (*T, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		var model T
		if err := s.db.Model(&model).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update record %d: %w", id, err)
		}
	}
	return s.Get(id)
}

// Delete removes the row with the given ID. GORM's Delete does not error on
// a missing row, so RowsAffected is checked to signal ErrNotFound.
func (s *GormStore[T]) Delete(id uint) error {
	var model T
	res := s.db.Delete(&model, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
