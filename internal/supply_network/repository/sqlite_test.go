package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

func setupSQLiteRepo(t *testing.T) *SQLiteRepository {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return repo
}

func TestSQLiteRepository_Lifecycle(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "user-1", sampleNetwork())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Nodes, got.Nodes)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Empty(t, got.Edges)

	got.Edges = []domain.Edge{{ID: "link_1", Source: "supplier_1", Target: "supplier_1"}}
	require.NoError(t, repo.Update(ctx, "user-1", created.ID, got))

	list, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].NodeCount)
	assert.Equal(t, 1, list[0].EdgeCount)
	assert.Equal(t, 0, list[0].DemandCount)

	require.NoError(t, repo.Rename(ctx, "user-1", created.ID, "Renamed"))
	got, err = repo.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, "user-1", created.ID))
	_, err = repo.Get(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "user-1", created.ID), domain.ErrNetworkNotFound)
}

func TestSQLiteRepository_OwnerScoping(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	mine, err := repo.Create(ctx, "user-1", domain.Network{Name: "Mine"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, "user-2", domain.Network{Name: "Theirs"})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, "user-1", domain.Network{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNetworkName, newer.Name)

	list, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, mine.ID, list[1].ID)

	_, err = repo.Get(ctx, "user-2", mine.ID)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.ErrorIs(t, repo.Update(ctx, "user-2", mine.ID, mine), domain.ErrAccessDenied)
	assert.ErrorIs(t, repo.Rename(ctx, "user-2", mine.ID, "Stolen"), domain.ErrAccessDenied)
	assert.Error(t, repo.Rename(ctx, "user-1", mine.ID, "  "))
}
