package recommend

import (
	"errors"
	"sort"

	"SproutAI/app/services/assistant/internal/assistant/catalog"
)

// Limits bounds each section of a recommendation result.
type Limits struct {
	Plants   int
	Products int
	Kits     int
}

func (l Limits) withDefaults() Limits {
	if l.Plants <= 0 {
		l.Plants = 5
	}
	if l.Products <= 0 {
		l.Products = 3
	}
	if l.Kits <= 0 {
		l.Kits = 2
	}
	return l
}

// RankedProduct is a product annotated with its relevance score against the
// recommended plant set.
type RankedProduct struct {
	Product   catalog.ProductRecord
	Relevance int
}

type RankedKit struct {
	Kit       catalog.KitRecord
	Relevance int
}

// Result is one recommendation response. Empty sections are normal outcomes,
// never errors.
type Result struct {
	Plants   []ScoredResult
	Products []RankedProduct
	Kits     []RankedKit
	// Relaxed names the constraint fields that had to be dropped to find
	// any plants at all. Empty when the full constraint matched.
	Relaxed []Slot
}

// Recommend runs filter, scoring and product/kit matching against one
// catalog snapshot. Constraint relaxation kicks in when the full conjunction
// matches nothing; a still-empty result after full relaxation yields empty
// lists rather than an error. Pure: safe for unlimited concurrent use
// against a shared snapshot.
func Recommend(snap *catalog.Snapshot, c Constraint, limits Limits) (*Result, error) {
	limits = limits.withDefaults()

	candidates, relaxed, err := FilterRelaxed(snap, c)
	if err != nil {
		if errors.Is(err, ErrNoMatches) {
			return &Result{Relaxed: relaxed}, nil
		}
		return nil, err
	}

	result := &Result{
		Plants:  Rank(candidates, c, limits.Plants),
		Relaxed: relaxed,
	}
	result.Products = matchProducts(snap.Products, result.Plants, c, limits.Products)
	result.Kits = matchKits(snap.Kits, result.Plants, c, limits.Kits)
	return result, nil
}

// matchProducts keeps products compatible with at least one recommended
// plant or with the stated room, then ranks them by how much the plant set
// needs their category: low light calls for a grow light, thirsty plants for
// a watering aid, humidity lovers for a humidifier, and pots and soil are
// always useful.
func matchProducts(products []catalog.ProductRecord, plants []ScoredResult, c Constraint, limit int) []RankedProduct {
	if len(products) == 0 {
		return nil
	}
	needed := neededCategories(plants, c)

	var ranked []RankedProduct
	for _, product := range products {
		supported := 0
		for _, plant := range plants {
			if product.SupportsPlant(plant.Plant.ID) {
				supported++
			}
		}
		roomMatch := c.Room != nil && product.SuitsRoom(*c.Room)
		if supported == 0 && !roomMatch {
			continue
		}

		relevance := supported * 5
		if _, ok := needed[product.Category]; ok {
			relevance += 10
		}
		if roomMatch {
			relevance += 3
		}
		ranked = append(ranked, RankedProduct{Product: product, Relevance: relevance})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Relevance != ranked[j].Relevance {
			return ranked[i].Relevance > ranked[j].Relevance
		}
		if ranked[i].Product.Popularity != ranked[j].Product.Popularity {
			return ranked[i].Product.Popularity > ranked[j].Product.Popularity
		}
		return ranked[i].Product.ID < ranked[j].Product.ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func neededCategories(plants []ScoredResult, c Constraint) map[string]struct{} {
	needed := map[string]struct{}{
		"pot":  {},
		"soil": {},
	}
	if c.Light != nil && *c.Light == catalog.LightLow {
		needed["grow_light"] = struct{}{}
	}
	for _, plant := range plants {
		if plant.Plant.WaterEveryDays <= 3 {
			needed["watering_system"] = struct{}{}
		}
		if plant.Plant.Humidity == catalog.HumidityHigh {
			needed["humidifier"] = struct{}{}
		}
	}
	return needed
}

// matchKits keeps kits containing at least one recommended plant or built
// for the stated room, scoring difficulty and light affinity on top.
func matchKits(kits []catalog.KitRecord, plants []ScoredResult, c Constraint, limit int) []RankedKit {
	if len(kits) == 0 {
		return nil
	}

	var ranked []RankedKit
	for _, kit := range kits {
		contains := false
		for _, plant := range plants {
			if kit.ContainsPlant(plant.Plant.ID) {
				contains = true
				break
			}
		}
		roomMatch := c.Room != nil && kit.SuitsRoom(*c.Room)
		if !contains && !roomMatch {
			continue
		}

		relevance := 0
		if roomMatch {
			relevance += 10
		}
		if contains {
			relevance += 5
		}
		if c.Experience != nil && kit.Difficulty <= c.Experience.DifficultyCeiling() {
			relevance += 8
		}
		if c.Light != nil && kit.Light == *c.Light {
			relevance += 6
		}
		ranked = append(ranked, RankedKit{Kit: kit, Relevance: relevance})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Relevance != ranked[j].Relevance {
			return ranked[i].Relevance > ranked[j].Relevance
		}
		if ranked[i].Kit.Popularity != ranked[j].Kit.Popularity {
			return ranked[i].Kit.Popularity > ranked[j].Kit.Popularity
		}
		return ranked[i].Kit.ID < ranked[j].Kit.ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
