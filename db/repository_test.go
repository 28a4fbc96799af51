// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/store"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()

	conn, err := Open(TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, CreateSchema(conn))
	// Second call must be a no-op
	require.NoError(t, CreateSchema(conn))

	return NewRepository(conn, TypeSQLite)
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestSaveAndLoadElections(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	elections := []models.Election{
		{ID: 4, Name: "Club Vote", Status: models.ElectionDraft, StartDate: "2025-01-01", EndDate: "2025-01-02"},
		{ID: 1, Name: "Student Council 2024", Status: models.ElectionActive, StartDate: "2024-10-20", EndDate: "2024-10-21", TotalVotes: 1245},
	}
	require.NoError(t, repo.SaveElections(ctx, elections))

	got, err := repo.LoadElections(ctx)
	require.NoError(t, err)
	assert.Equal(t, elections, got, "order is preserved")

	require.NoError(t, repo.SaveElections(ctx, elections[1:]))
	got, err = repo.LoadElections(ctx)
	require.NoError(t, err)
	assert.Equal(t, elections[1:], got, "save replaces the whole table")
}

func TestSaveAndLoadCandidates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	candidates := []models.Candidate{
		{ID: 2, Name: "Vivek Kumar", Party: "Progress Alliance", Image: "/b.png", Status: models.CandidateValid},
		{ID: 1, Name: "Aditi Rao", Party: "", Image: "/a.png", Status: models.CandidateInvalid},
	}
	require.NoError(t, repo.SaveCandidates(ctx, candidates))

	got, err := repo.LoadCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, candidates, got)
}

func TestLoadEmpty(t *testing.T) {
	repo := setupRepo(t)

	elections, err := repo.LoadElections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, elections)
}

func TestSave_ConstraintViolationRollsBack(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	good := []models.Election{{ID: 1, Name: "A", Status: models.ElectionActive, StartDate: "2025-01-01", EndDate: "2025-01-02"}}
	require.NoError(t, repo.SaveElections(ctx, good))

	bad := []models.Election{
		{ID: 2, Name: "B", Status: models.ElectionActive, StartDate: "2025-01-01", EndDate: "2025-01-02"},
		{ID: 2, Name: "dup", Status: models.ElectionActive, StartDate: "2025-01-01", EndDate: "2025-01-02"},
	}
	require.Error(t, repo.SaveElections(ctx, bad))

	got, err := repo.LoadElections(ctx)
	require.NoError(t, err)
	assert.Equal(t, good, got)
}

func TestRepositoryAsStoreSink(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	candidates := store.NewCandidateStore(nil, repo)
	_, _, err := candidates.Save(ctx, store.CreateIntent(), models.CandidateForm{Name: "Priya Sharma", Party: "Unity Party"})
	require.NoError(t, err)
	_, err = candidates.ToggleStatus(ctx, 1)
	require.NoError(t, err)

	got, err := repo.LoadCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, candidates.List(), got)
	assert.Equal(t, models.CandidateInvalid, got[0].Status)
}

func TestRebind(t *testing.T) {
	pg := NewRepository(nil, TypePostgres)
	assert.Equal(t, "VALUES ($1, $2, $3)", pg.rebind("VALUES (?, ?, ?)"))

	lite := NewRepository(nil, TypeSQLite)
	assert.Equal(t, "VALUES (?, ?)", lite.rebind("VALUES (?, ?)"))
}
