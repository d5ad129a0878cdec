package jobs

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/righttool/righttool-backend/pkg/db/models"
)

func setupJobsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertJob(t *testing.T, db *gorm.DB, slug, title, category string) {
	t.Helper()

	require.NoError(t, db.Create(&models.Job{
		ID:       uuid.New(),
		Slug:     slug,
		Title:    title,
		Category: category,
	}).Error)
}

func TestRepositoryListAllGroupsByCategory(t *testing.T) {
	db := setupJobsTestDB(t)
	repo := NewRepository(db)

	insertJob(t, db, "spark-plugs", "Spark Plugs", "Ignition")
	insertJob(t, db, "rear-brake-pads", "Rear Brake Pads", "Brakes")
	insertJob(t, db, "front-brake-pads", "Front Brake Pads", "Brakes")
	insertJob(t, db, "engine-oil-filter", "Engine Oil & Filter", "Maintenance")

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "front-brake-pads", rows[0].Slug)
	assert.Equal(t, "rear-brake-pads", rows[1].Slug)
	assert.Equal(t, "spark-plugs", rows[2].Slug)
	assert.Equal(t, "engine-oil-filter", rows[3].Slug)
}

func TestRepositoryFindBySlug(t *testing.T) {
	db := setupJobsTestDB(t)
	repo := NewRepository(db)

	insertJob(t, db, "front-brake-pads", "Front Brake Pads", "Brakes")

	job, err := repo.FindBySlug(context.Background(), "front-brake-pads")
	require.NoError(t, err)
	assert.Equal(t, "Front Brake Pads", job.Title)

	_, err = repo.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
