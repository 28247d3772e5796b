package recommend

import (
	"testing"

	"SproutAI/app/services/assistant/internal/assistant/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plantFixture(id string, light catalog.Light, difficulty int, humidity catalog.Humidity, rooms ...catalog.Room) catalog.PlantRecord {
	return catalog.PlantRecord{
		ID:             id,
		Name:           id,
		Light:          light,
		WaterEveryDays: 7,
		Humidity:       humidity,
		Difficulty:     difficulty,
		Maintenance:    catalog.MaintenanceForDifficulty(difficulty),
		Rooms:          rooms,
	}
}

func snapshotOf(plants ...catalog.PlantRecord) *catalog.Snapshot {
	return &catalog.Snapshot{Plants: plants}
}

func constraintOf(t *testing.T, values map[Slot]string) Constraint {
	t.Helper()
	var c Constraint
	for slot, value := range values {
		require.NoError(t, c.Set(slot, value))
	}
	return c
}

func ids(plants []catalog.PlantRecord) []string {
	out := make([]string, 0, len(plants))
	for _, p := range plants {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterEmptyConstraintReturnsAll(t *testing.T) {
	snap := snapshotOf(
		plantFixture("a", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("b", catalog.LightDirect, 8, catalog.HumidityHigh, catalog.RoomBalcony),
	)
	got, err := Filter(snap, Constraint{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterEmptySnapshot(t *testing.T) {
	_, err := Filter(&catalog.Snapshot{}, Constraint{})
	assert.ErrorIs(t, err, catalog.ErrCatalogEmpty)
}

func TestFilterRoom(t *testing.T) {
	snap := snapshotOf(
		plantFixture("a", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom, catalog.RoomOffice),
		plantFixture("b", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomKitchen),
	)
	got, err := Filter(snap, constraintOf(t, map[Slot]string{SlotRoom: "bedroom"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterLightCompatibility(t *testing.T) {
	cases := []struct {
		plantLight catalog.Light
		available  string
		pass       bool
	}{
		{catalog.LightLow, "low", true},
		{catalog.LightMedium, "low", true},
		{catalog.LightBrightIndirect, "low", false},
		{catalog.LightLow, "medium", true},
		{catalog.LightBrightIndirect, "medium", true},
		{catalog.LightDirect, "medium", false},
		{catalog.LightDirect, "bright_indirect", false},
		{catalog.LightDirect, "direct", true},
		{catalog.LightBrightIndirect, "direct", true},
		{catalog.LightLow, "direct", false},
	}
	for _, tc := range cases {
		snap := snapshotOf(plantFixture("x", tc.plantLight, 1, catalog.HumidityLow, catalog.RoomBedroom))
		_, err := Filter(snap, constraintOf(t, map[Slot]string{SlotLight: tc.available}))
		if tc.pass {
			assert.NoError(t, err, "%s plant under %s light", tc.plantLight, tc.available)
		} else {
			assert.ErrorIs(t, err, ErrNoMatches, "%s plant under %s light", tc.plantLight, tc.available)
		}
	}
}

func TestFilterExperienceCeiling(t *testing.T) {
	snap := snapshotOf(
		plantFixture("easy", catalog.LightLow, 4, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("hard", catalog.LightLow, 5, catalog.HumidityLow, catalog.RoomBedroom),
	)

	got, err := Filter(snap, constraintOf(t, map[Slot]string{SlotExperience: "beginner"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"easy"}, ids(got))

	got, err = Filter(snap, constraintOf(t, map[Slot]string{SlotExperience: "intermediate"}))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterMaintenanceExact(t *testing.T) {
	snap := snapshotOf(
		plantFixture("low", catalog.LightLow, 2, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("med", catalog.LightLow, 5, catalog.HumidityLow, catalog.RoomBedroom),
	)
	got, err := Filter(snap, constraintOf(t, map[Slot]string{SlotMaintenance: "medium"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"med"}, ids(got))
}

func TestFilterHumidityCeiling(t *testing.T) {
	snap := snapshotOf(
		plantFixture("dry", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("tropical", catalog.LightLow, 1, catalog.HumidityHigh, catalog.RoomBedroom),
	)
	got, err := Filter(snap, constraintOf(t, map[Slot]string{SlotHumidity: "medium"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"dry"}, ids(got))
}

func TestFilterDroppingFieldNeverShrinksResults(t *testing.T) {
	// Clearing any single field may only widen the candidate set: every plant
	// that passed the full constraint must still pass the loosened one.
	snap := snapshotOf(
		plantFixture("a", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom, catalog.RoomOffice),
		plantFixture("b", catalog.LightMedium, 3, catalog.HumidityMedium, catalog.RoomBedroom),
		plantFixture("c", catalog.LightBrightIndirect, 5, catalog.HumidityHigh, catalog.RoomBathroom),
		plantFixture("d", catalog.LightDirect, 8, catalog.HumidityLow, catalog.RoomBalcony),
		plantFixture("e", catalog.LightLow, 2, catalog.HumidityHigh, catalog.RoomBedroom),
	)

	matchedIDs := func(c Constraint) map[string]bool {
		out := map[string]bool{}
		got, err := Filter(snap, c)
		if err != nil {
			require.ErrorIs(t, err, ErrNoMatches)
			return out
		}
		for _, p := range got {
			out[p.ID] = true
		}
		return out
	}

	constraints := []map[Slot]string{
		{
			SlotRoom:        "bedroom",
			SlotLight:       "low",
			SlotExperience:  "beginner",
			SlotMaintenance: "low",
			SlotHumidity:    "low",
		},
		{
			SlotRoom:        "bathroom",
			SlotLight:       "bright_indirect",
			SlotExperience:  "intermediate",
			SlotMaintenance: "medium",
			SlotHumidity:    "high",
		},
		{
			SlotRoom:  "balcony",
			SlotLight: "direct",
		},
		{
			SlotLight:    "medium",
			SlotHumidity: "medium",
		},
	}

	for _, values := range constraints {
		c := constraintOf(t, values)
		strict := matchedIDs(c)
		for slot := range values {
			loose := matchedIDs(c.Without(slot))
			for id := range strict {
				assert.True(t, loose[id], "plant %s passed %v but not without %s", id, values, slot)
			}
		}
	}
}

func TestFilterRelaxedDropsHumidityFirst(t *testing.T) {
	snap := snapshotOf(
		plantFixture("tropical", catalog.LightLow, 1, catalog.HumidityHigh, catalog.RoomBedroom),
	)
	c := constraintOf(t, map[Slot]string{
		SlotRoom:     "bedroom",
		SlotHumidity: "low",
	})

	got, relaxed, err := FilterRelaxed(snap, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"tropical"}, ids(got))
	assert.Equal(t, []Slot{SlotHumidity}, relaxed)
}

func TestFilterRelaxedOrderIsCumulative(t *testing.T) {
	// Only an office plant with high humidity and high maintenance exists;
	// finding it from a bedroom/low/low constraint requires dropping
	// humidity, then maintenance, then experience, then light before room is
	// allowed to stand alone.
	snap := snapshotOf(
		plantFixture("fussy", catalog.LightDirect, 9, catalog.HumidityHigh, catalog.RoomBedroom),
	)
	c := constraintOf(t, map[Slot]string{
		SlotRoom:        "bedroom",
		SlotLight:       "low",
		SlotExperience:  "beginner",
		SlotMaintenance: "low",
		SlotHumidity:    "low",
	})

	got, relaxed, err := FilterRelaxed(snap, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"fussy"}, ids(got))
	assert.Equal(t, []Slot{SlotHumidity, SlotMaintenance, SlotExperience, SlotLight}, relaxed)
}

func TestFilterRelaxedNeverDropsLastField(t *testing.T) {
	// A lone unsatisfiable field must yield no matches rather than relax
	// into the whole catalog.
	snap := snapshotOf(
		plantFixture("shade", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
	)
	c := constraintOf(t, map[Slot]string{SlotLight: "direct"})

	_, relaxed, err := FilterRelaxed(snap, c)
	assert.ErrorIs(t, err, ErrNoMatches)
	assert.Empty(t, relaxed)
}

func TestFilterRelaxedKeepsRoomWhenAllElseFails(t *testing.T) {
	snap := snapshotOf(
		plantFixture("kitchen-only", catalog.LightDirect, 9, catalog.HumidityHigh, catalog.RoomKitchen),
	)
	c := constraintOf(t, map[Slot]string{
		SlotRoom:  "bedroom",
		SlotLight: "low",
	})

	_, relaxed, err := FilterRelaxed(snap, c)
	assert.ErrorIs(t, err, ErrNoMatches)
	assert.Equal(t, []Slot{SlotLight}, relaxed)
}
