package services

import (
	"mercado/internal/repositories"
)

// Crud handles business logic shared by every resource. For plain CRUD that
// is a pass-through to the store; resources with extra behavior (orders)
// wrap it.
type Crud[T any] struct {
	store repositories.Store[T]
}

// NewCrud creates a new Crud service on top of a store.
func NewCrud[T any](store repositories.Store[T]) *Crud[T] {
	return &Crud[T]{
		store: store,
	}
}

// Count returns the total number of records.
func (s *Crud[T]) Count() (int64, error) {
	return s.store.Count()
}

// List retrieves all records.
func (s *Crud[T]) List(q repositories.ListQuery) ([]T, error) {
	return s.store.List(q)
}

// Find retrieves the records matching a filter condition.
func (s *Crud[T]) Find(cond string, arg any, orderBy string) ([]T, error) {
	return s.store.Find(cond, arg, orderBy)
}

// Get retrieves a single record by its ID.
func (s *Crud[T]) Get(id uint) (*T, error) {
	return s.store.Get(id)
}

// Create inserts a new record.
func (s *Crud[T]) Create(rec *T) error {
	return s.store.Create(rec)
}

// Update applies a partial update to an existing record.
func (s *Crud[T]) Update(id uint, fields map[string]any) (*T, error) {
	return s.store.Update(id, fields)
}

// Delete removes a record by its ID.
func (s *Crud[T]) Delete(id uint) error {
	return s.store.Delete(id)
}
