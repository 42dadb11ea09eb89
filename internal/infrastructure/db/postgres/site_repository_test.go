package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByHost(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	repo := NewSiteRepository(db)

	found, err := repo.FindByHost(context.Background(), "alpha.example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, site.ID, found.ID)

	none, err := repo.FindByHost(context.Background(), "unknown.example.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}
