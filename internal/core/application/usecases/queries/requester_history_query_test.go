package queries_test

import (
	"testing"

	"campus/internal/core/application/usecases/queries"
	"campus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequesterHistoryQuery_Valid(t *testing.T) {
	requesterID := kernel.NewUUID()

	query, err := queries.NewRequesterHistoryQuery(requesterID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.RequesterID().IsEqual(requesterID))
}

func TestNewRequesterHistoryQuery_InvalidRequester(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewRequesterHistoryQuery(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRequesterHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.RequesterHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrRequesterHistoryQueryIsNotConstructed)
}
