package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/righttool/righttool-backend/pkg/db/models"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
  id TEXT PRIMARY KEY,
  year INTEGER NOT NULL,
  make TEXT NOT NULL,
  model TEXT NOT NULL,
  engine TEXT NOT NULL,
  trim TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS tools (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT,
  size TEXT,
  drive TEXT,
  spec TEXT,
  notes TEXT,
  price NUMERIC,
  buy_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS requirements (
  id TEXT PRIMARY KEY,
  vehicle_id TEXT NOT NULL,
  job_id TEXT NOT NULL,
  tool_id TEXT NOT NULL,
  qty INTEGER,
  notes TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestRunSeedsFullCatalog(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Run(context.Background(), db, nil))

	assert.EqualValues(t, 10, countRows(t, db, &models.Vehicle{}))
	assert.EqualValues(t, 8, countRows(t, db, &models.Job{}))
	assert.EqualValues(t, 23, countRows(t, db, &models.Tool{}))
	assert.NotZero(t, countRows(t, db, &models.Requirement{}))
}

func TestRunAccordFrontBrakeSet(t *testing.T) {
	db := setupSeedTestDB(t)
	require.NoError(t, Run(context.Background(), db, nil))

	var vehicle models.Vehicle
	require.NoError(t, db.Where("make = ? AND model = ? AND year = ?", "Honda", "Accord", 2015).First(&vehicle).Error)
	var job models.Job
	require.NoError(t, db.Where("slug = ?", "front-brake-pads").First(&job).Error)

	var rows []models.Requirement
	require.NoError(t, db.
		Preload("Tool").
		Where("vehicle_id = ? AND job_id = ?", vehicle.ID, job.ID).
		Order("position ASC").
		Find(&rows).Error)

	require.Len(t, rows, 9)

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		require.NotNil(t, row.Tool)
		names = append(names, row.Tool.Name)
	}
	assert.Equal(t, []string{
		"Hydraulic Floor Jack",
		"Jack Stands (x2)",
		"Socket",
		"Ratchet",
		"Extension",
		"Socket",
		"Socket",
		"C-Clamp / Piston Compressor",
		"Torque Wrench",
	}, names)

	// Lug socket carries its note, torque wrench its reminder.
	require.NotNil(t, rows[2].Notes)
	assert.Equal(t, "Lug nuts", *rows[2].Notes)
	require.NotNil(t, rows[2].Tool.Size)
	assert.Equal(t, "19mm", *rows[2].Tool.Size)
	require.NotNil(t, rows[8].Notes)
	assert.Equal(t, "Check manual for torque", *rows[8].Notes)

	// Qty stays null in storage; readers default it.
	for _, row := range rows {
		assert.Nil(t, row.Qty)
	}
}

func TestRunLeavesConfiguredPairsEmpty(t *testing.T) {
	db := setupSeedTestDB(t)
	require.NoError(t, Run(context.Background(), db, nil))

	var vehicle models.Vehicle
	require.NoError(t, db.Where("make = ? AND model = ?", "BMW", "328i").First(&vehicle).Error)
	var job models.Job
	require.NoError(t, db.Where("slug = ?", "serpentine-belt").First(&job).Error)

	var count int64
	require.NoError(t, db.Model(&models.Requirement{}).
		Where("vehicle_id = ? AND job_id = ?", vehicle.ID, job.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestRunStoresExplicitQty(t *testing.T) {
	db := setupSeedTestDB(t)
	require.NoError(t, Run(context.Background(), db, nil))

	var vehicle models.Vehicle
	require.NoError(t, db.Where("model = ?", "F-150").First(&vehicle).Error)
	var job models.Job
	require.NoError(t, db.Where("slug = ?", "front-brake-pads").First(&job).Error)
	var tool models.Tool
	require.NoError(t, db.Where("name = ?", "Brake Cleaner").First(&tool).Error)

	var row models.Requirement
	require.NoError(t, db.
		Where("vehicle_id = ? AND job_id = ? AND tool_id = ?", vehicle.ID, job.ID, tool.ID).
		First(&row).Error)
	require.NotNil(t, row.Qty)
	assert.Equal(t, 2, *row.Qty)
}

func TestRunFixturesUnresolvedKeyAborts(t *testing.T) {
	db := setupSeedTestDB(t)

	f := DefaultFixtures()
	f.Requirements = append(f.Requirements,
		RequirementFixture{Vehicle: "accord-2015", Job: "front-brake-pads", Tool: "no-such-tool"},
		RequirementFixture{Vehicle: "ghost-vehicle", Job: "front-brake-pads", Tool: "floor-jack"},
	)

	err := RunFixtures(context.Background(), db, nil, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool key "no-such-tool"`)
	assert.Contains(t, err.Error(), `unknown vehicle key "ghost-vehicle"`)

	// Nothing may be written when resolution fails.
	assert.Zero(t, countRows(t, db, &models.Vehicle{}))
	assert.Zero(t, countRows(t, db, &models.Job{}))
	assert.Zero(t, countRows(t, db, &models.Tool{}))
	assert.Zero(t, countRows(t, db, &models.Requirement{}))
}

func TestRunFixturesDuplicateKeyAborts(t *testing.T) {
	db := setupSeedTestDB(t)

	f := DefaultFixtures()
	f.Tools = append(f.Tools, ToolFixture{Key: "floor-jack", Name: "Another Jack"})

	err := RunFixtures(context.Background(), db, nil, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate tool key "floor-jack"`)
	assert.Zero(t, countRows(t, db, &models.Tool{}))
}

func TestResetClearsCatalog(t *testing.T) {
	db := setupSeedTestDB(t)
	require.NoError(t, Run(context.Background(), db, nil))
	require.NoError(t, Reset(context.Background(), db))

	assert.Zero(t, countRows(t, db, &models.Vehicle{}))
	assert.Zero(t, countRows(t, db, &models.Job{}))
	assert.Zero(t, countRows(t, db, &models.Tool{}))
	assert.Zero(t, countRows(t, db, &models.Requirement{}))
}

func TestDefaultFixturesEveryJobReachable(t *testing.T) {
	f := DefaultFixtures()

	covered := map[string]bool{}
	for _, r := range f.Requirements {
		covered[r.Job] = true
	}
	for _, j := range f.Jobs {
		assert.Truef(t, covered[j.Slug], "job %s has no requirements anywhere", j.Slug)
	}
}
