package services

import (
	"context"

	"campuscoffee/internal/adapters/persistence/repositories"
)

// CrudService provides the CRUD operations shared by all entity services.
// Concrete services hold a CrudService instance for their entity type and add
// entity-specific operations on top. All persistence concerns, including the
// translation of uniqueness violations into typed duplication errors, live
// behind the repository port.
type CrudService[D any] struct {
	repo repositories.CrudRepository[D]
}

// NewCrudService creates a CRUD service over the given repository
func NewCrudService[D any](repo repositories.CrudRepository[D]) *CrudService[D] {
	return &CrudService[D]{repo: repo}
}

// GetAll returns every stored entity; an empty slice if none exist
func (s *CrudService[D]) GetAll(ctx context.Context) ([]D, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the entity with the given ID
func (s *CrudService[D]) GetByID(ctx context.Context, id uint) (D, error) {
	return s.repo.GetByID(ctx, id)
}

// Upsert creates the entity when it carries no identifier, otherwise updates
// the existing record.
func (s *CrudService[D]) Upsert(ctx context.Context, d D) (D, error) {
	return s.repo.Upsert(ctx, d)
}

// Delete removes the entity with the given ID
func (s *CrudService[D]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Clear deletes every record of the entity type and resets the identifier
// sequence. Not exposed over the API; intended for tests and administrative
// resets.
func (s *CrudService[D]) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
