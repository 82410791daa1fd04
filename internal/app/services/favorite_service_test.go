package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteFixture(t *testing.T) (FavoriteService, *fakeSchoolStore) {
	t.Helper()
	users := newFakeUserStore()
	schools := newFakeSchoolStore()
	schools.schools["123"] = models.School{SchoolID: "123", SchoolName: "Te Aro School"}
	schools.schools["456"] = models.School{SchoolID: "456", SchoolName: "Aurora College"}
	return NewFavoriteService(users, schools, zerolog.Nop()), schools
}

func TestAddFavoriteLifecycle(t *testing.T) {
	svc, _ := newFavoriteFixture(t)

	require.NoError(t, svc.Add(context.Background(), "user-1", "123"))

	check, err := svc.Check(context.Background(), "user-1", "123")
	require.NoError(t, err)
	assert.True(t, check.IsInList)

	// Adding twice conflicts.
	err = svc.Add(context.Background(), "user-1", "123")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	require.NoError(t, svc.Add(context.Background(), "user-1", "456"))

	ids, err := svc.SchoolIDs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "456"}, ids.SchoolIDs)

	require.NoError(t, svc.Remove(context.Background(), "user-1", "123"))

	check, err = svc.Check(context.Background(), "user-1", "123")
	require.NoError(t, err)
	assert.False(t, check.IsInList)
}

func TestAddFavoriteUnknownSchool(t *testing.T) {
	svc, _ := newFavoriteFixture(t)

	err := svc.Add(context.Background(), "user-1", "999")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRemoveFavoriteNotOnList(t *testing.T) {
	svc, _ := newFavoriteFixture(t)

	err := svc.Remove(context.Background(), "user-1", "123")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "School not in your list", err.Error())
}

func TestFavoriteListsAreScopedPerUser(t *testing.T) {
	svc, _ := newFavoriteFixture(t)

	require.NoError(t, svc.Add(context.Background(), "user-1", "123"))
	require.NoError(t, svc.Add(context.Background(), "user-2", "456"))

	list, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "123", list.Schools[0].SchoolID)
}
