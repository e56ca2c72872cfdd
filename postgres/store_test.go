package postgres_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/postgres"
	"gorm.io/gorm"
)

type Widget struct {
	switchyard.Model
	Name string
}

func newTestStore(t *testing.T) *postgres.Store {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	migrations := []postgres.Migration{
		{
			Key: "create-widgets",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE widgets (
						id SERIAL PRIMARY KEY,
						created_at timestamp,
						updated_at timestamp,
						name text
					)
				`).Error
			},
		},
	}

	store, err := postgres.Connect(&postgres.CxnConfig{IsTestDB: true, URL: url}, migrations, switchyard.Testing)
	require.Nil(t, err)
	return store
}

func TestStore(t *testing.T) {
	store := newTestStore(t)

	require.Nil(t, store.Insert(&Widget{Name: "sprocket"}))
	require.Nil(t, store.Insert(&Widget{Name: "gear"}))

	var w Widget
	require.Nil(t, store.FindByID(&w, 1))
	require.Equal(t, "sprocket", w.Name)

	var ws []Widget
	require.Nil(t, store.All(&ws))
	require.Len(t, ws, 2)

	err := store.FindByID(&w, 99)
	require.ErrorIs(t, err, switchyard.ErrNotExist)
}
