package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Board{}, &models.Article{}))
	return &GormRepo{DB: db}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h1", Role: domain.RoleUser}
	require.NoError(t, r.CreateUser(ctx, &first))
	require.NotZero(t, first.ID)

	// Same email straight into Create, bypassing the ExistsByEmail pre-check.
	// The unique index must still reject it.
	second := models.User{Username: "mallory", Email: "a@x.com", PasswordHash: "h2", Role: domain.RoleUser}
	err := r.CreateUser(ctx, &second)
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestFindByEmail(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	user := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleUser}
	require.NoError(t, r.CreateUser(ctx, &user))

	found, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice", found.Username)

	_, err = r.FindByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExistsByEmail(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	ok, err := r.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.CreateUser(ctx, &models.User{
		Username: "alice", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleUser,
	}))

	ok, err = r.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryDirectory_SameContract(t *testing.T) {
	t.Parallel()

	d := NewMemoryDirectory()
	ctx := context.Background()

	u := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleUser}
	require.NoError(t, d.CreateUser(ctx, &u))
	require.NotZero(t, u.ID)

	err := d.CreateUser(ctx, &models.User{Username: "bob", Email: "a@x.com"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	found, err := d.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = d.FindByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
