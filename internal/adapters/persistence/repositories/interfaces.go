package repositories

import (
	"context"

	"campuscoffee/internal/core/domain"
)

// CrudRepository defines the generic storage port shared by all entities.
// Implementations translate uniqueness violations into domain duplication
// errors and report missing records as domain not-found errors.
type CrudRepository[D any] interface {
	GetAll(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id uint) (D, error)
	Upsert(ctx context.Context, d D) (D, error)
	Delete(ctx context.Context, id uint) error
	Clear(ctx context.Context) error
}

// PosRepository defines the POS storage port
type PosRepository interface {
	CrudRepository[domain.Pos]
	GetByName(ctx context.Context, name string) (domain.Pos, error)
}

// UserRepository defines the user storage port
type UserRepository interface {
	CrudRepository[domain.User]
	GetByLoginName(ctx context.Context, loginName string) (domain.User, error)
}

// ReviewRepository defines the review storage port
type ReviewRepository interface {
	CrudRepository[domain.Review]
	FilterByApproval(ctx context.Context, posID uint, approved bool) ([]domain.Review, error)
	FilterByAuthor(ctx context.Context, posID, authorID uint) ([]domain.Review, error)
}
