package recommend

import (
	"testing"

	"SproutAI/app/services/assistant/internal/assistant/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConstraint(t *testing.T) Constraint {
	return constraintOf(t, map[Slot]string{
		SlotRoom:        "bedroom",
		SlotLight:       "low",
		SlotExperience:  "beginner",
		SlotMaintenance: "low",
	})
}

func TestScorePerfectMatch(t *testing.T) {
	plant := plantFixture("p", catalog.LightLow, 3, catalog.HumidityLow, catalog.RoomBedroom)
	got := Score(plant, fullConstraint(t))

	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, 1.0, got.Sub.Light)
	assert.Equal(t, 1.0, got.Sub.DifficultyFit)
	assert.Equal(t, 1.0, got.Sub.Maintenance)
}

func TestScoreUnsetFieldsCountAsFull(t *testing.T) {
	plant := plantFixture("p", catalog.LightDirect, 9, catalog.HumidityHigh, catalog.RoomBalcony)
	got := Score(plant, Constraint{})
	assert.Equal(t, 100.0, got.Score)
}

func TestScoreAdjacentLight(t *testing.T) {
	plant := plantFixture("p", catalog.LightMedium, 3, catalog.HumidityLow, catalog.RoomBedroom)
	got := Score(plant, fullConstraint(t))

	assert.Equal(t, 0.6, got.Sub.Light)
	// 0.4*0.6 + 0.35*1.0 + 0.25*1.0
	assert.Equal(t, 84.0, got.Score)
}

func TestScoreDifficultyNearCeilingPreferred(t *testing.T) {
	c := constraintOf(t, map[Slot]string{SlotExperience: "advanced"})

	near := Score(plantFixture("near", catalog.LightLow, 9, catalog.HumidityLow, catalog.RoomBedroom), c)
	far := Score(plantFixture("far", catalog.LightLow, 2, catalog.HumidityLow, catalog.RoomBedroom), c)

	assert.Equal(t, 1.0, near.Sub.DifficultyFit)
	assert.Equal(t, 0.7, far.Sub.DifficultyFit)
	assert.Greater(t, near.Score, far.Score)
}

func TestScoreDeterministic(t *testing.T) {
	plant := plantFixture("p", catalog.LightMedium, 5, catalog.HumidityMedium, catalog.RoomOffice)
	c := constraintOf(t, map[Slot]string{SlotLight: "medium", SlotMaintenance: "medium"})

	first := Score(plant, c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(plant, c))
	}
}

func TestRankOrderingIsTotal(t *testing.T) {
	a := plantFixture("a", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom)
	b := plantFixture("b", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom)
	popular := plantFixture("c", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom)
	popular.Popularity = 50
	weaker := plantFixture("d", catalog.LightMedium, 1, catalog.HumidityLow, catalog.RoomBedroom)

	c := constraintOf(t, map[Slot]string{SlotLight: "low"})
	got := Rank([]catalog.PlantRecord{weaker, b, popular, a}, c, 0)

	require.Len(t, got, 4)
	// score desc, then popularity desc, then id asc
	assert.Equal(t, "c", got[0].Plant.ID)
	assert.Equal(t, "a", got[1].Plant.ID)
	assert.Equal(t, "b", got[2].Plant.ID)
	assert.Equal(t, "d", got[3].Plant.ID)
}

func TestRankTruncates(t *testing.T) {
	plants := []catalog.PlantRecord{
		plantFixture("a", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("b", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
		plantFixture("c", catalog.LightLow, 1, catalog.HumidityLow, catalog.RoomBedroom),
	}
	got := Rank(plants, Constraint{}, 2)
	assert.Len(t, got, 2)
}
