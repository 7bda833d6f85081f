package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/roommate-backend/internal/adapter/postgres/testhelper"
	"github.com/campusshare/roommate-backend/internal/adapter/postgres/user"
	"github.com/campusshare/roommate-backend/internal/domain"
)

func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func TestRepo_GetContactSummaries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedUser(t, pool)
	b := testhelper.SeedUser(t, pool)
	missing := uuid.New()

	got, err := repo.GetContactSummaries(ctx, []uuid.UUID{a.ID, b.ID, missing})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, a.ContactSummary(), got[a.ID])
	assert.Equal(t, b.ContactSummary(), got[b.ID])
	assert.NotContains(t, got, missing)
}

func TestRepo_GetContactSummaries_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.GetContactSummaries(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRepo_CreateAndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	u := &domain.User{
		Username:       "priya-" + suffix,
		Email:          "priya-" + suffix + "@campus.example",
		Name:           "Priya",
		PhoneNumber:    "+15550123",
		WhatsAppNumber: "+15550124",
	}

	created, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.WhatsAppNumber, got.WhatsAppNumber)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	dup := *u
	dup.Email = "other-" + suffix + "@campus.example"
	_, err = repo.Create(ctx, &dup)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
