//go:build integration

package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.PurgePostgres()
	os.Exit(code)
}

func TestPostgres_TaskStatusIdentity(t *testing.T) {
	repo := NewTaskStatusRepository(testutils.NewPostgresDB(t))

	first, err := repo.Create(models.NewTaskStatus{StatusName: "open"})
	require.NoError(t, err)
	second, err := repo.Create(models.NewTaskStatus{StatusName: "done"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), first.ID)
	assert.Equal(t, int32(2), second.ID)

	count, err := repo.Delete(first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.Delete(first.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgres_AssignmentUpdateSameValues(t *testing.T) {
	repo := NewAssignmentRepository(testutils.NewPostgresDB(t))

	_, err := repo.Create(models.NewAssignment{UserID: 1, TaskID: 1, TaskStatusID: 1})
	require.NoError(t, err)

	updated, err := repo.Update(models.AssignmentKey{UserID: 1, TaskID: 1},
		models.NewAssignment{UserID: 1, TaskID: 1, TaskStatusID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.Assignment{UserID: 1, TaskID: 1, TaskStatusID: 1}, *updated)

	_, err = repo.Create(models.NewAssignment{UserID: 1, TaskID: 1, TaskStatusID: 2})
	assert.Error(t, err)
}
