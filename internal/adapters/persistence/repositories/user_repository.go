package repositories

import (
	"context"

	"campuscoffee/internal/adapters/persistence/models"
	"campuscoffee/internal/core/domain"

	"gorm.io/gorm"
)

// userRepository implements UserRepository
type userRepository struct {
	*crudRepository[domain.User, models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, registry *ConstraintRegistry) UserRepository {
	return &userRepository{
		crudRepository: newCrudRepository(db, registry, descriptor[domain.User, models.User]{
			kind:      domain.KindUser,
			table:     models.UserTableName,
			id:        func(u domain.User) uint { return u.ID },
			fromModel: func(m *models.User) domain.User { return m.ToDomain() },
			newModel:  models.UserFromDomain,
			apply:     func(u domain.User, m *models.User) { m.ApplyDomain(u) },
			uniqueFields: []uniqueField[domain.User]{
				{field: "login name", column: "login_name", value: func(u domain.User) string { return u.LoginName }},
				{field: "email address", column: "email_address", value: func(u domain.User) string { return u.EmailAddress }},
			},
		}),
	}
}

// GetByLoginName gets a user by their unique login name
func (r *userRepository) GetByLoginName(ctx context.Context, loginName string) (domain.User, error) {
	return r.findByField(ctx, "login name", loginName, "login_name = ?")
}
