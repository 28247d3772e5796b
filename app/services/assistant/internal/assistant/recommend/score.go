package recommend

import (
	"math"
	"sort"

	"SproutAI/app/services/assistant/internal/assistant/catalog"
)

const (
	weightLight         = 0.4
	weightDifficultyFit = 0.35
	weightMaintenance   = 0.25
)

// SubScores are the normalized [0,1] components of a match score, kept for
// display badges.
type SubScores struct {
	Light         float64 `json:"light"`
	DifficultyFit float64 `json:"difficulty_fit"`
	Maintenance   float64 `json:"maintenance"`
}

// ScoredResult is a candidate annotated with its 0-100 fit score. Produced
// fresh per request, never persisted.
type ScoredResult struct {
	Plant catalog.PlantRecord
	Score float64
	Sub   SubScores
}

// Score rates one candidate against the constraint. Unset constraint fields
// score as full matches so that sparse constraints do not depress every
// candidate uniformly. Deterministic: identical inputs yield identical
// results.
func Score(plant catalog.PlantRecord, c Constraint) ScoredResult {
	sub := SubScores{
		Light:         lightScore(plant, c),
		DifficultyFit: difficultyScore(plant, c),
		Maintenance:   maintenanceScore(plant, c),
	}
	total := weightLight*sub.Light + weightDifficultyFit*sub.DifficultyFit + weightMaintenance*sub.Maintenance
	return ScoredResult{
		Plant: plant,
		Score: math.Round(total*1000) / 10,
		Sub:   sub,
	}
}

func lightScore(plant catalog.PlantRecord, c Constraint) float64 {
	if c.Light == nil {
		return 1.0
	}
	diff := plant.Light.Tier() - c.Light.Tier()
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.6
	default:
		return 0
	}
}

// difficultyScore rewards plants close to the user's ceiling so advanced
// users are not fed trivially easy plants. Candidates above the ceiling score
// zero; the filter should already have removed them.
func difficultyScore(plant catalog.PlantRecord, c Constraint) float64 {
	if c.Experience == nil {
		return 1.0
	}
	ceiling := c.Experience.DifficultyCeiling()
	if plant.Difficulty > ceiling {
		return 0
	}
	if ceiling-plant.Difficulty <= 2 {
		return 1.0
	}
	return 0.7
}

func maintenanceScore(plant catalog.PlantRecord, c Constraint) float64 {
	if c.Maintenance == nil {
		return 1.0
	}
	diff := plant.Maintenance.Tier() - c.Maintenance.Tier()
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0
	}
}

// Rank scores every candidate and sorts descending by score, then by
// popularity descending, then by id ascending so that ordering is a total
// order and test runs are reproducible.
func Rank(candidates []catalog.PlantRecord, c Constraint, topK int) []ScoredResult {
	results := make([]ScoredResult, 0, len(candidates))
	for _, plant := range candidates {
		results = append(results, Score(plant, c))
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Plant.Popularity != results[j].Plant.Popularity {
			return results[i].Plant.Popularity > results[j].Plant.Popularity
		}
		return results[i].Plant.ID < results[j].Plant.ID
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
