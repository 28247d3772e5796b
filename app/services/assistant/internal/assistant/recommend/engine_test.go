package recommend

import (
	"testing"

	"SproutAI/app/services/assistant/internal/assistant/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoSnapshot() *catalog.Snapshot {
	snake := plantFixture("p1", catalog.LightLow, 2, catalog.HumidityLow, catalog.RoomBedroom, catalog.RoomOffice)
	snake.Popularity = 95
	fern := plantFixture("p2", catalog.LightBrightIndirect, 5, catalog.HumidityHigh, catalog.RoomBathroom)
	fern.WaterEveryDays = 3
	cactus := plantFixture("p3", catalog.LightDirect, 2, catalog.HumidityLow, catalog.RoomBalcony)

	return &catalog.Snapshot{
		Plants: []catalog.PlantRecord{snake, fern, cactus},
		Products: []catalog.ProductRecord{
			{ID: "pr1", Name: "Planter", Category: "pot", PriceCents: 1899, PlantIDs: []string{"p1", "p2"}, Rooms: []catalog.Room{catalog.RoomBedroom}, Popularity: 90},
			{ID: "pr2", Name: "Potting Mix", Category: "soil", PriceCents: 1499, PlantIDs: []string{"p1", "p2", "p3"}, Popularity: 88},
			{ID: "pr3", Name: "Grow Light", Category: "grow_light", PriceCents: 3999, PlantIDs: []string{"p1"}, Rooms: []catalog.Room{catalog.RoomBedroom}, Popularity: 80},
			{ID: "pr4", Name: "Watering Globe", Category: "watering_system", PriceCents: 999, PlantIDs: []string{"p2"}, Popularity: 70},
		},
		Kits: []catalog.KitRecord{
			{ID: "k1", Name: "Bedroom Kit", PriceCents: 4999, Difficulty: 2, Light: catalog.LightLow, PlantIDs: []string{"p1"}, Rooms: []catalog.Room{catalog.RoomBedroom}, Popularity: 82},
			{ID: "k2", Name: "Bathroom Kit", PriceCents: 5999, Difficulty: 5, Light: catalog.LightBrightIndirect, PlantIDs: []string{"p2"}, Rooms: []catalog.Room{catalog.RoomBathroom}, Popularity: 68},
		},
	}
}

func TestRecommendFullConstraint(t *testing.T) {
	c := constraintOf(t, map[Slot]string{
		SlotRoom:        "bedroom",
		SlotLight:       "low",
		SlotExperience:  "beginner",
		SlotMaintenance: "low",
	})

	result, err := Recommend(demoSnapshot(), c, Limits{})
	require.NoError(t, err)

	require.Len(t, result.Plants, 1)
	assert.Equal(t, "p1", result.Plants[0].Plant.ID)
	assert.InDelta(t, 100.0, result.Plants[0].Score, 0.01)
	assert.Empty(t, result.Relaxed)

	// pot and soil always, grow light because the room is low light
	categories := map[string]bool{}
	for _, p := range result.Products {
		categories[p.Product.Category] = true
	}
	assert.True(t, categories["pot"])
	assert.True(t, categories["soil"])
	assert.True(t, categories["grow_light"])

	require.NotEmpty(t, result.Kits)
	assert.Equal(t, "k1", result.Kits[0].Kit.ID)
}

func TestRecommendNoMatchesReturnsEmptyResult(t *testing.T) {
	snap := &catalog.Snapshot{
		Plants: []catalog.PlantRecord{
			plantFixture("shade", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
		},
	}
	c := constraintOf(t, map[Slot]string{SlotLight: "direct"})

	result, err := Recommend(snap, c, Limits{})
	require.NoError(t, err)
	assert.Empty(t, result.Plants)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Kits)
}

func TestRecommendRelaxationReported(t *testing.T) {
	c := constraintOf(t, map[Slot]string{
		SlotRoom:     "bathroom",
		SlotHumidity: "low",
	})

	result, err := Recommend(demoSnapshot(), c, Limits{})
	require.NoError(t, err)
	require.Len(t, result.Plants, 1)
	assert.Equal(t, "p2", result.Plants[0].Plant.ID)
	assert.Equal(t, []Slot{SlotHumidity}, result.Relaxed)
}

func TestRecommendLimits(t *testing.T) {
	snap := demoSnapshot()
	result, err := Recommend(snap, Constraint{}, Limits{Plants: 2, Products: 1, Kits: 1})
	require.NoError(t, err)
	assert.Len(t, result.Plants, 2)
	assert.LessOrEqual(t, len(result.Products), 1)
	assert.LessOrEqual(t, len(result.Kits), 1)
}

func TestRecommendIdempotent(t *testing.T) {
	c := constraintOf(t, map[Slot]string{
		SlotRoom:        "bedroom",
		SlotLight:       "low",
		SlotExperience:  "beginner",
		SlotMaintenance: "low",
	})
	snap := demoSnapshot()

	first, err := Recommend(snap, c, Limits{})
	require.NoError(t, err)
	second, err := Recommend(snap, c, Limits{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendWateringAidForThirstyPlants(t *testing.T) {
	c := constraintOf(t, map[Slot]string{SlotRoom: "bathroom"})

	result, err := Recommend(demoSnapshot(), c, Limits{})
	require.NoError(t, err)

	categories := map[string]bool{}
	for _, p := range result.Products {
		categories[p.Product.Category] = true
	}
	// fern waters every 3 days
	assert.True(t, categories["watering_system"])
}
