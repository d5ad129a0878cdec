package vehicles

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

func setupVehiclesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS vehicles (
  id TEXT PRIMARY KEY,
  year INTEGER NOT NULL,
  make TEXT NOT NULL,
  model TEXT NOT NULL,
  engine TEXT NOT NULL,
  trim TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertVehicle(t *testing.T, db *gorm.DB, year int, mk, model, engine string) {
	t.Helper()

	require.NoError(t, db.Create(&models.Vehicle{
		ID:     uuid.New(),
		Year:   year,
		Make:   mk,
		Model:  model,
		Engine: engine,
	}).Error)
}

func TestRepositoryListAllOrdering(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)

	insertVehicle(t, db, 2015, "Honda", "Accord", "2.4L I4")
	insertVehicle(t, db, 2019, "Toyota", "RAV4", "2.5L I4")
	insertVehicle(t, db, 2019, "Chevrolet", "Silverado 1500", "5.3L V8")
	insertVehicle(t, db, 2017, "Toyota", "Camry", "2.5L I4")
	insertVehicle(t, db, 2017, "Jeep", "Wrangler", "3.6L V6")

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Year descending, then make/model ascending within a year.
	assert.Equal(t, 2019, rows[0].Year)
	assert.Equal(t, "Chevrolet", rows[0].Make)
	assert.Equal(t, 2019, rows[1].Year)
	assert.Equal(t, "Toyota", rows[1].Make)
	assert.Equal(t, 2017, rows[2].Year)
	assert.Equal(t, "Jeep", rows[2].Make)
	assert.Equal(t, 2017, rows[3].Year)
	assert.Equal(t, "Toyota", rows[3].Make)
	assert.Equal(t, 2015, rows[4].Year)
	assert.Equal(t, "Accord", rows[4].Model)
}

func TestRepositoryListAllEmpty(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
