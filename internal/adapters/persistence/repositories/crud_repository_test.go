package repositories

import (
	"context"
	"fmt"
	"testing"

	"campuscoffee/internal/adapters/persistence/models"
	"campuscoffee/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database: plain ":memory:" gives every pooled
	// connection its own empty database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newTestPos(name string) domain.Pos {
	return domain.Pos{
		Name:        name,
		Description: "good coffee",
		Type:        domain.PosTypeCafe,
		Campus:      domain.CampusINF,
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "205",
		PostalCode:  69120,
		City:        "Heidelberg",
	}
}

func newTestUser(loginName string) domain.User {
	return domain.User{
		LoginName:    loginName,
		EmailAddress: loginName + "@stud.uni-heidelberg.de",
		FirstName:    "Erika",
		LastName:     "Mustermann",
	}
}

func TestPosRepositoryUpsertCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "Botanik Cafe", loaded.Name)
	assert.Equal(t, domain.PosTypeCafe, loaded.Type)
	assert.Equal(t, 69120, loaded.PostalCode)
}

func TestPosRepositoryUpsertUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	require.NoError(t, err)

	changed := created
	changed.Description = "renovated, now with oat milk"
	changed.Type = domain.PosTypeCafeteria

	updated, err := repo.Upsert(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "renovated, now with oat milk", updated.Description)
	assert.Equal(t, domain.PosTypeCafeteria, updated.Type)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "creation timestamp is storage-owned")
}

func TestPosRepositoryUpsertUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))

	pos := newTestPos("Botanik Cafe")
	pos.ID = 4711

	_, err := repo.Upsert(context.Background(), pos)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.KindPos, notFound.Kind)
	assert.Equal(t, uint(4711), notFound.ID)
}

func TestPosRepositoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	var dup *domain.DuplicationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.KindPos, dup.Kind)
	assert.Equal(t, "name", dup.Field)
	assert.Equal(t, "Botanik Cafe", dup.Value)
}

func TestPosRepositoryGetByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	require.NoError(t, err)

	found, err := repo.GetByName(ctx, "Botanik Cafe")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByName(ctx, "Nonexistent Cafe")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "name", notFound.Field)
	assert.Equal(t, "Nonexistent Cafe", notFound.Value)
}

func TestPosRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newTestPos("Botanik Cafe"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestPosRepositoryGetAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for i := 0; i < 3; i++ {
		_, err := repo.Upsert(ctx, newTestPos(fmt.Sprintf("Cafe %d", i)))
		require.NoError(t, err)
	}

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPosRepositoryClearResetsSequence(t *testing.T) {
	db := newTestDB(t)
	repo := NewPosRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newTestPos("Cafe A"))
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, newTestPos("Cafe B"))
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	require.NoError(t, repo.Clear(ctx))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	fresh, err := repo.Upsert(ctx, newTestPos("Cafe C"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), fresh.ID, "identifier sequence restarts after clear")
}

func TestUserRepositoryDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newTestUser("emuster"))
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, newTestUser("emuster"))
	var dup *domain.DuplicationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.KindUser, dup.Kind)
	assert.Equal(t, "login name", dup.Field)
	assert.Equal(t, "emuster", dup.Value)

	other := newTestUser("emuster2")
	other.EmailAddress = "emuster@stud.uni-heidelberg.de"
	_, err = repo.Upsert(ctx, other)
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email address", dup.Field)
	assert.Equal(t, "emuster@stud.uni-heidelberg.de", dup.Value)
}

func TestUserRepositoryGetByLoginName(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, NewConstraintRegistry(db))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newTestUser("emuster"))
	require.NoError(t, err)

	found, err := repo.GetByLoginName(ctx, "emuster")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByLoginName(ctx, "nobody")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "login name", notFound.Field)
}

func TestReviewRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	registry := NewConstraintRegistry(db)
	repo := NewReviewRepository(db, registry)
	ctx := context.Background()

	seed := []domain.Review{
		{PosID: 1, AuthorID: 1, Review: "great espresso, friendly staff"},
		{PosID: 1, AuthorID: 2, Review: "long queues but worth the wait", ApprovalCount: 2, Approved: true},
		{PosID: 2, AuthorID: 1, Review: "machine was out of order twice this week"},
	}
	for _, r := range seed {
		_, err := repo.Upsert(ctx, r)
		require.NoError(t, err)
	}

	approved, err := repo.FilterByApproval(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, uint(2), approved[0].AuthorID)

	pending, err := repo.FilterByApproval(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint(1), pending[0].AuthorID)

	byAuthor, err := repo.FilterByAuthor(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "great espresso, friendly staff", byAuthor[0].Review)

	none, err := repo.FilterByAuthor(ctx, 1, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestConstraintRegistry(t *testing.T) {
	db := newTestDB(t)
	registry := NewConstraintRegistry(db)

	name, ok := registry.ConstraintName(models.PosTableName, "name")
	require.True(t, ok)
	assert.Equal(t, "pos.name", name, "sqlite identifies constraints by table.column")

	again, ok := registry.ConstraintName(models.PosTableName, "name")
	require.True(t, ok)
	assert.Equal(t, name, again)

	_, ok = registry.ConstraintName(models.PosTableName, "city")
	assert.False(t, ok, "city carries no unique constraint")

	_, ok = registry.ConstraintName("no_such_table", "name")
	assert.False(t, ok)
}
