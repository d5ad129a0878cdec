package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/righttool/righttool-backend/pkg/db/models"
	"github.com/righttool/righttool-backend/pkg/logger"
)

// Run seeds the shipped catalog inside the given transaction. It is intended
// to run against an empty database; rerunning it without Reset duplicates
// vehicles and tools since only job slugs carry a unique constraint.
func Run(ctx context.Context, tx *gorm.DB, logg *logger.Logger) error {
	return RunFixtures(ctx, tx, logg, DefaultFixtures())
}

// RunFixtures seeds an arbitrary fixture set. All fixture keys are resolved
// to row IDs up front; any unresolved or duplicate key aborts the run before
// a single row is written, with every violation aggregated into one error.
func RunFixtures(ctx context.Context, tx *gorm.DB, logg *logger.Logger, f Fixtures) error {
	if tx == nil {
		return fmt.Errorf("seed transaction required")
	}

	vehicleRows, vehicleIDs, err := buildVehicles(f.Vehicles)
	if err != nil {
		return err
	}
	jobRows, jobIDs, err := buildJobs(f.Jobs)
	if err != nil {
		return err
	}
	toolRows, toolIDs, err := buildTools(f.Tools)
	if err != nil {
		return err
	}
	requirementRows, err := buildRequirements(f.Requirements, vehicleIDs, jobIDs, toolIDs)
	if err != nil {
		return err
	}

	if len(vehicleRows) > 0 {
		if err := tx.WithContext(ctx).Create(&vehicleRows).Error; err != nil {
			return fmt.Errorf("insert vehicles: %w", err)
		}
	}
	if len(jobRows) > 0 {
		if err := tx.WithContext(ctx).Create(&jobRows).Error; err != nil {
			return fmt.Errorf("insert jobs: %w", err)
		}
	}
	if len(toolRows) > 0 {
		if err := tx.WithContext(ctx).Create(&toolRows).Error; err != nil {
			return fmt.Errorf("insert tools: %w", err)
		}
	}
	if len(requirementRows) > 0 {
		if err := tx.WithContext(ctx).Create(&requirementRows).Error; err != nil {
			return fmt.Errorf("insert requirements: %w", err)
		}
	}

	if logg != nil {
		lctx := logg.WithFields(ctx, map[string]any{
			"vehicles":     len(vehicleRows),
			"jobs":         len(jobRows),
			"tools":        len(toolRows),
			"requirements": len(requirementRows),
		})
		logg.Info(lctx, "catalog seeded")
	}
	return nil
}

// Reset deletes all catalog rows in foreign-key order.
func Reset(ctx context.Context, tx *gorm.DB) error {
	if tx == nil {
		return fmt.Errorf("seed transaction required")
	}
	for _, model := range []any{
		&models.Requirement{},
		&models.Tool{},
		&models.Job{},
		&models.Vehicle{},
	} {
		if err := tx.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("reset catalog: %w", err)
		}
	}
	return nil
}

func buildVehicles(fixtures []VehicleFixture) ([]models.Vehicle, map[string]uuid.UUID, error) {
	rows := make([]models.Vehicle, 0, len(fixtures))
	ids := make(map[string]uuid.UUID, len(fixtures))
	var errs error
	for _, v := range fixtures {
		if _, dup := ids[v.Key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate vehicle key %q", v.Key))
			continue
		}
		id := uuid.New()
		ids[v.Key] = id
		rows = append(rows, models.Vehicle{
			ID:     id,
			Year:   v.Year,
			Make:   v.Make,
			Model:  v.Model,
			Engine: v.Engine,
		})
	}
	if errs != nil {
		return nil, nil, errs
	}
	return rows, ids, nil
}

func buildJobs(fixtures []JobFixture) ([]models.Job, map[string]uuid.UUID, error) {
	rows := make([]models.Job, 0, len(fixtures))
	ids := make(map[string]uuid.UUID, len(fixtures))
	var errs error
	for _, j := range fixtures {
		if _, dup := ids[j.Slug]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate job slug %q", j.Slug))
			continue
		}
		id := uuid.New()
		ids[j.Slug] = id
		rows = append(rows, models.Job{
			ID:       id,
			Slug:     j.Slug,
			Title:    j.Title,
			Category: j.Category,
		})
	}
	if errs != nil {
		return nil, nil, errs
	}
	return rows, ids, nil
}

func buildTools(fixtures []ToolFixture) ([]models.Tool, map[string]uuid.UUID, error) {
	rows := make([]models.Tool, 0, len(fixtures))
	ids := make(map[string]uuid.UUID, len(fixtures))
	var errs error
	for _, t := range fixtures {
		if _, dup := ids[t.Key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate tool key %q", t.Key))
			continue
		}
		id := uuid.New()
		ids[t.Key] = id
		rows = append(rows, models.Tool{
			ID:     id,
			Name:   t.Name,
			Brand:  t.Brand,
			Size:   t.Size,
			Drive:  t.Drive,
			Spec:   t.Spec,
			Notes:  t.Notes,
			Price:  t.Price,
			BuyURL: t.BuyURL,
		})
	}
	if errs != nil {
		return nil, nil, errs
	}
	return rows, ids, nil
}

// buildRequirements resolves every fixture key and assigns Position per
// (vehicle, job) pair in fixture order. Resolution failures never produce a
// partial slice: the first unresolved key poisons the whole build.
func buildRequirements(fixtures []RequirementFixture, vehicleIDs, jobIDs, toolIDs map[string]uuid.UUID) ([]models.Requirement, error) {
	var errs error
	for _, r := range fixtures {
		if _, ok := vehicleIDs[r.Vehicle]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("requirement references unknown vehicle key %q", r.Vehicle))
		}
		if _, ok := jobIDs[r.Job]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("requirement references unknown job slug %q", r.Job))
		}
		if _, ok := toolIDs[r.Tool]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("requirement references unknown tool key %q", r.Tool))
		}
	}
	if errs != nil {
		return nil, errs
	}

	rows := make([]models.Requirement, 0, len(fixtures))
	positions := map[[2]uuid.UUID]int{}
	for _, r := range fixtures {
		pair := [2]uuid.UUID{vehicleIDs[r.Vehicle], jobIDs[r.Job]}
		row := models.Requirement{
			ID:        uuid.New(),
			VehicleID: pair[0],
			JobID:     pair[1],
			ToolID:    toolIDs[r.Tool],
			Position:  positions[pair],
		}
		positions[pair]++
		if r.Qty > 0 {
			qty := r.Qty
			row.Qty = &qty
		}
		if r.Notes != "" {
			notes := r.Notes
			row.Notes = &notes
		}
		rows = append(rows, row)
	}
	return rows, nil
}
