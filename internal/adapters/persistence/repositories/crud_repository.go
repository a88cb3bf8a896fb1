package repositories

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"campuscoffee/internal/core/domain"

	"gorm.io/gorm"
)

// descriptor wires a domain type D to its gorm model type M: table and kind
// names for error messages, the mapping functions, and the declared unique
// fields. Each concrete repository supplies one descriptor; the engine itself
// is stateless.
type descriptor[D any, M any] struct {
	kind         string
	table        string
	id           func(D) uint
	fromModel    func(*M) D
	newModel     func(D) *M
	apply        func(D, *M)
	uniqueFields []uniqueField[D]
}

// crudRepository is the generic CRUD engine over a gorm-backed table.
// Uniqueness violations raised by the database are translated into typed
// duplication errors using the constraint registry; any other storage failure
// propagates unchanged.
type crudRepository[D any, M any] struct {
	db       *gorm.DB
	registry *ConstraintRegistry
	desc     descriptor[D, M]

	once        sync.Once
	constraints []constraintMapping[D]
}

func newCrudRepository[D any, M any](db *gorm.DB, registry *ConstraintRegistry, desc descriptor[D, M]) *crudRepository[D, M] {
	return &crudRepository[D, M]{db: db, registry: registry, desc: desc}
}

// GetAll returns every stored entity; an empty slice if none exist
func (r *crudRepository[D, M]) GetAll(ctx context.Context) ([]D, error) {
	var ms []M
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	result := make([]D, len(ms))
	for i := range ms {
		result[i] = r.desc.fromModel(&ms[i])
	}
	return result, nil
}

// GetByID returns the entity with the given ID
func (r *crudRepository[D, M]) GetByID(ctx context.Context, id uint) (D, error) {
	var m M
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		var zero D
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, domain.NewNotFound(r.desc.kind, id)
		}
		return zero, err
	}
	return r.desc.fromModel(&m), nil
}

// Upsert creates the entity when it carries no identifier, otherwise updates
// the existing record. On update, the stored record's identifier and
// timestamps are preserved; only caller-supplied fields are applied.
func (r *crudRepository[D, M]) Upsert(ctx context.Context, d D) (D, error) {
	var zero D

	id := r.desc.id(d)
	if id == 0 {
		m := r.desc.newModel(d)
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return zero, r.translate(err, d)
		}
		return r.desc.fromModel(m), nil
	}

	var existing M
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, domain.NewNotFound(r.desc.kind, id)
		}
		return zero, err
	}

	r.desc.apply(d, &existing)
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return zero, r.translate(err, d)
	}
	return r.desc.fromModel(&existing), nil
}

// Delete removes the entity with the given ID
func (r *crudRepository[D, M]) Delete(ctx context.Context, id uint) error {
	var m M
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound(r.desc.kind, id)
		}
		return err
	}
	return r.db.WithContext(ctx).Delete(&m).Error
}

// Clear deletes every record and resets the identifier sequence.
// Intended for tests and administrative resets only.
func (r *crudRepository[D, M]) Clear(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM " + r.desc.table).Error; err != nil {
		return err
	}
	switch r.db.Dialector.Name() {
	case "mysql":
		return db.Exec("ALTER TABLE " + r.desc.table + " AUTO_INCREMENT = 1").Error
	case "sqlite":
		return db.Exec("UPDATE sqlite_sequence SET seq = 0 WHERE name = ?", r.desc.table).Error
	default:
		log.Printf("⚠️ Sequence reset not supported for dialect %s", r.db.Dialector.Name())
		return nil
	}
}

// findByField runs the given query for a single model and maps the result,
// returning a field-level not-found error when no row matches.
func (r *crudRepository[D, M]) findByField(ctx context.Context, field, value string, query string) (D, error) {
	var m M
	if err := r.db.WithContext(ctx).Where(query, value).First(&m).Error; err != nil {
		var zero D
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, domain.NewNotFoundByField(r.desc.kind, field, value)
		}
		return zero, err
	}
	return r.desc.fromModel(&m), nil
}

// translate inspects a write failure: if its message (or the message of any
// wrapped cause) contains the identifier of a known unique constraint of this
// entity, a typed duplication error carrying the offending field and value is
// returned. Otherwise the failure propagates unchanged.
func (r *crudRepository[D, M]) translate(err error, d D) error {
	for _, cm := range r.constraintsFor() {
		if messageContains(err, cm.constraintName) {
			return domain.NewDuplication(r.desc.kind, cm.field, cm.value(d))
		}
	}
	return err
}

// constraintsFor resolves the declared unique fields against the registry.
// Built lazily once per repository; fields whose constraint cannot be resolved
// are skipped with a warning, never a failure.
func (r *crudRepository[D, M]) constraintsFor() []constraintMapping[D] {
	r.once.Do(func() {
		for _, uf := range r.desc.uniqueFields {
			name, ok := r.registry.ConstraintName(r.desc.table, uf.column)
			if !ok {
				log.Printf("⚠️ Skipping unique field %s.%s: constraint could not be resolved", r.desc.table, uf.column)
				continue
			}
			r.constraints = append(r.constraints, constraintMapping[D]{
				uniqueField:    uf,
				constraintName: name,
			})
		}
	})
	return r.constraints
}

func messageContains(err error, s string) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if strings.Contains(e.Error(), s) {
			return true
		}
	}
	return false
}
