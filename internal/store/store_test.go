package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanaresoma/sanaresoma-backend/internal/notify"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

func TestNew_WithoutDatabaseIsInMemory(t *testing.T) {
	repos := New(nil)

	assert.IsType(t, &user.InMemoryRepository{}, repos.Users)
	assert.IsType(t, &notify.InMemoryJobStore{}, repos.Jobs)

	snap, err := repos.Sources().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
}

func TestNew_WithDatabaseIsPostgres(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repos := New(db)

	assert.IsType(t, &user.PostgresRepository{}, repos.Users)
	assert.IsType(t, &notify.PostgresJobStore{}, repos.Jobs)
}
