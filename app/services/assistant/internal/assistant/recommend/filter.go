package recommend

import (
	"errors"

	"SproutAI/app/services/assistant/internal/assistant/catalog"
)

// ErrNoMatches reports that the conjunction of filters eliminated every
// candidate. Recoverable: callers either relax constraints or present an
// empty result.
var ErrNoMatches = errors.New("no plants match the constraints")

// relaxOrder lists constraint fields loosest-first. When a filter pass comes
// up empty the engine drops them cumulatively in this order until candidates
// appear. The original system's behavior here was inconsistent; this order is
// the documented policy.
var relaxOrder = []Slot{SlotHumidity, SlotMaintenance, SlotExperience, SlotLight, SlotRoom}

// Filter reduces the snapshot to plants compatible with every populated
// field of the constraint. Unset fields impose no restriction, so an empty
// constraint returns the whole catalog. Returns ErrNoMatches on an empty
// result and catalog.ErrCatalogEmpty when the snapshot has no plants at all.
func Filter(snap *catalog.Snapshot, c Constraint) ([]catalog.PlantRecord, error) {
	if snap == nil || len(snap.Plants) == 0 {
		return nil, catalog.ErrCatalogEmpty
	}

	var out []catalog.PlantRecord
	for _, plant := range snap.Plants {
		if matches(plant, c) {
			out = append(out, plant)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// FilterRelaxed applies Filter, then progressively drops constraint fields
// loosest-first until candidates appear. At least one populated field always
// survives: a single-field constraint that matches nothing is a genuine
// NoMatches, not an invitation to return the whole catalog. The returned
// slice names the fields that had to be relaxed; it is empty when the full
// constraint matched.
func FilterRelaxed(snap *catalog.Snapshot, c Constraint) ([]catalog.PlantRecord, []Slot, error) {
	candidates, err := Filter(snap, c)
	if err == nil {
		return candidates, nil, nil
	}
	if !errors.Is(err, ErrNoMatches) {
		return nil, nil, err
	}

	populated := 0
	for _, slot := range relaxOrder {
		if c.Filled(slot) {
			populated++
		}
	}

	relaxed := make([]Slot, 0, len(relaxOrder))
	current := c
	for _, slot := range relaxOrder {
		if len(relaxed) >= populated-1 {
			break
		}
		if !current.Filled(slot) {
			continue
		}
		current = current.Without(slot)
		relaxed = append(relaxed, slot)

		candidates, err = Filter(snap, current)
		if err == nil {
			return candidates, relaxed, nil
		}
		if !errors.Is(err, ErrNoMatches) {
			return nil, nil, err
		}
	}
	return nil, relaxed, ErrNoMatches
}

func matches(plant catalog.PlantRecord, c Constraint) bool {
	if c.Room != nil && !plant.SuitsRoom(*c.Room) {
		return false
	}
	if c.Light != nil && !lightCompatible(plant.Light, *c.Light) {
		return false
	}
	if c.Experience != nil && plant.Difficulty > c.Experience.DifficultyCeiling() {
		return false
	}
	if c.Maintenance != nil && plant.Maintenance != *c.Maintenance {
		return false
	}
	if c.Humidity != nil && plant.Humidity.Tier() > c.Humidity.Tier() {
		return false
	}
	return true
}

// lightCompatible implements the light compatibility table: a plant passes
// when its requirement is within one tier of the available light, except that
// direct-light plants only pass under direct light. A medium room therefore
// accepts plants rated low through bright_indirect.
func lightCompatible(need, have catalog.Light) bool {
	if need == catalog.LightDirect {
		return have == catalog.LightDirect
	}
	diff := need.Tier() - have.Tier()
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
