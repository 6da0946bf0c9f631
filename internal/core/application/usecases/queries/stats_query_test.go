package queries_test

import (
	"testing"

	"campus/internal/core/application/usecases/queries"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatsQuery_Valid(t *testing.T) {
	admin, err := user.NewActor(kernel.NewUUID(), user.RoleAdmin, user.ScopeUnknown)
	require.NoError(t, err)

	query, err := queries.NewStatsQuery(admin)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, user.RoleAdmin, query.Actor().Role())
}

func TestNewStatsQuery_UnconstructedActor(t *testing.T) {
	_, err := queries.NewStatsQuery(user.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrActorIsNotConstructed)
}

func TestStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.StatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrStatsQueryIsNotConstructed)
}
