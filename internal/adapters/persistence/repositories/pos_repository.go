package repositories

import (
	"context"

	"campuscoffee/internal/adapters/persistence/models"
	"campuscoffee/internal/core/domain"

	"gorm.io/gorm"
)

// posRepository implements PosRepository
type posRepository struct {
	*crudRepository[domain.Pos, models.Pos]
}

// NewPosRepository creates a new POS repository
func NewPosRepository(db *gorm.DB, registry *ConstraintRegistry) PosRepository {
	return &posRepository{
		crudRepository: newCrudRepository(db, registry, descriptor[domain.Pos, models.Pos]{
			kind:      domain.KindPos,
			table:     models.PosTableName,
			id:        func(p domain.Pos) uint { return p.ID },
			fromModel: func(m *models.Pos) domain.Pos { return m.ToDomain() },
			newModel:  models.PosFromDomain,
			apply:     func(p domain.Pos, m *models.Pos) { m.ApplyDomain(p) },
			uniqueFields: []uniqueField[domain.Pos]{
				{field: "name", column: "name", value: func(p domain.Pos) string { return p.Name }},
			},
		}),
	}
}

// GetByName gets a POS by its unique name
func (r *posRepository) GetByName(ctx context.Context, name string) (domain.Pos, error) {
	return r.findByField(ctx, "name", name, "name = ?")
}
