package repositories

import (
	"log"
	"sync"

	"gorm.io/gorm"
)

// uniqueField declares a unique field of an entity: the domain field name used
// in error messages, the database column it maps to, and an extractor for the
// current value on a domain instance.
type uniqueField[D any] struct {
	field  string
	column string
	value  func(D) string
}

// constraintMapping associates a declared unique field with the database-level
// constraint identifier that protects it.
type constraintMapping[D any] struct {
	uniqueField[D]
	constraintName string
}

// ConstraintRegistry resolves the database constraint identifier protecting a
// (table, column) pair from schema metadata. Resolutions are cached; the cache
// is derived from static schema shape and safe to share across concurrent
// calls. A lookup that fails resolves to "not found" and is cached too, so the
// schema is never introspected twice for the same pair.
type ConstraintRegistry struct {
	db    *gorm.DB
	mu    sync.Mutex
	names map[string]string // "table.column" -> identifier; "" when unresolvable
}

// NewConstraintRegistry creates a registry backed by the given database
func NewConstraintRegistry(db *gorm.DB) *ConstraintRegistry {
	return &ConstraintRegistry{
		db:    db,
		names: make(map[string]string),
	}
}

// ConstraintName returns the identifier of the unique constraint protecting
// table.column, or false if none could be resolved.
func (r *ConstraintRegistry) ConstraintName(table, column string) (string, bool) {
	key := table + "." + column

	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.names[key]; ok {
		return name, name != ""
	}

	name := r.lookup(table, column)
	r.names[key] = name
	return name, name != ""
}

// lookup queries the schema metadata for a unique index covering exactly the
// given column. Failures are logged and reported as unresolvable, never raised.
func (r *ConstraintRegistry) lookup(table, column string) string {
	indexes, err := r.db.Migrator().GetIndexes(table)
	if err != nil {
		log.Printf("⚠️ Failed to read index metadata for table %s: %v", table, err)
		return ""
	}

	for _, idx := range indexes {
		if unique, ok := idx.Unique(); !ok || !unique {
			continue
		}
		columns := idx.Columns()
		if len(columns) != 1 || columns[0] != column {
			continue
		}
		if r.db.Dialector.Name() == "sqlite" {
			// SQLite reports violations as "table.column" rather than by
			// the index name.
			return table + "." + column
		}
		return idx.Name()
	}

	log.Printf("⚠️ No unique constraint found for %s.%s", table, column)
	return ""
}
