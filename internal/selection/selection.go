// Package selection implements the cascading vehicle-picker state machine.
// It is a pure reducer over the loaded vehicle list: the single transition
// law is that changing a coarser field clears every finer field, whether or
// not the old finer values would still match. Clients compare the returned
// value against the previous one to know when to drop a stale result.
package selection

import (
	"sort"

	"github.com/google/uuid"

	"github.com/righttool/righttool-backend/internal/vehicles"
)

// Selection is the user's current pick. Zero values mean unset: Year 0,
// empty strings, uuid.Nil. The type is comparable so callers can detect
// transitions with ==.
type Selection struct {
	Year   int
	Make   string
	Model  string
	Engine string
	JobID  uuid.UUID
}

// Options are the derived dropdown choices for the current selection.
type Options struct {
	Years   []int
	Makes   []string
	Models  []string
	Engines []string
}

// WithYear sets the year and clears make, model and engine.
func (s Selection) WithYear(year int) Selection {
	s.Year = year
	s.Make = ""
	s.Model = ""
	s.Engine = ""
	return s
}

// WithMake sets the make and clears model and engine.
func (s Selection) WithMake(make string) Selection {
	s.Make = make
	s.Model = ""
	s.Engine = ""
	return s
}

// WithModel sets the model and clears engine.
func (s Selection) WithModel(model string) Selection {
	s.Model = model
	s.Engine = ""
	return s
}

// WithEngine sets the engine leaf field.
func (s Selection) WithEngine(engine string) Selection {
	s.Engine = engine
	return s
}

// WithJob sets the chosen job. The job axis is independent of the vehicle
// cascade and clears nothing.
func (s Selection) WithJob(jobID uuid.UUID) Selection {
	s.JobID = jobID
	return s
}

// OptionsFor derives the deduplicated dropdown lists from the loaded vehicle
// list. Years are sorted descending and makes/models ascending; engines keep
// the listing order since they are typically singleton.
func OptionsFor(list []vehicles.VehicleDTO, s Selection) Options {
	opts := Options{
		Years: distinctYears(list),
	}
	if s.Year == 0 {
		return opts
	}

	makeSet := map[string]struct{}{}
	for _, v := range list {
		if v.Year != s.Year {
			continue
		}
		if _, seen := makeSet[v.Make]; !seen {
			makeSet[v.Make] = struct{}{}
			opts.Makes = append(opts.Makes, v.Make)
		}
	}
	sort.Strings(opts.Makes)
	if s.Make == "" {
		return opts
	}

	modelSet := map[string]struct{}{}
	for _, v := range list {
		if v.Year != s.Year || v.Make != s.Make {
			continue
		}
		if _, seen := modelSet[v.Model]; !seen {
			modelSet[v.Model] = struct{}{}
			opts.Models = append(opts.Models, v.Model)
		}
	}
	sort.Strings(opts.Models)
	if s.Model == "" {
		return opts
	}

	engineSet := map[string]struct{}{}
	for _, v := range list {
		if v.Year != s.Year || v.Make != s.Make || v.Model != s.Model {
			continue
		}
		if _, seen := engineSet[v.Engine]; !seen {
			engineSet[v.Engine] = struct{}{}
			opts.Engines = append(opts.Engines, v.Engine)
		}
	}
	return opts
}

// ResolveVehicle returns the concrete vehicle ID when the full tuple matches
// exactly one vehicle in the loaded list. Any unset field, or an ambiguous
// tuple, blocks resolution.
func (s Selection) ResolveVehicle(list []vehicles.VehicleDTO) (uuid.UUID, bool) {
	if s.Year == 0 || s.Make == "" || s.Model == "" || s.Engine == "" {
		return uuid.Nil, false
	}
	var (
		matched uuid.UUID
		count   int
	)
	for _, v := range list {
		if v.Year == s.Year && v.Make == s.Make && v.Model == s.Model && v.Engine == s.Engine {
			matched = v.ID
			count++
		}
	}
	if count != 1 {
		return uuid.Nil, false
	}
	return matched, true
}

// CanSubmit reports whether a lookup request may be issued: a uniquely
// resolved vehicle plus a chosen job.
func (s Selection) CanSubmit(list []vehicles.VehicleDTO) bool {
	if s.JobID == uuid.Nil {
		return false
	}
	_, ok := s.ResolveVehicle(list)
	return ok
}

func distinctYears(list []vehicles.VehicleDTO) []int {
	set := map[int]struct{}{}
	var years []int
	for _, v := range list {
		if _, seen := set[v.Year]; !seen {
			set[v.Year] = struct{}{}
			years = append(years, v.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
