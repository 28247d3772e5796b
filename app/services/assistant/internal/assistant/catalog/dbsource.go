package catalog

import (
	"context"
	"strings"

	dal "SproutAI/app/dal/catalog"
)

// DBSource feeds the snapshot store from the catalog tables. Rows come back
// as the same loosely typed records the TSV source produces, so coercion
// stays the single validation point.
type DBSource struct {
	plants   dal.PlantsModel
	products dal.ProductsModel
	kits     dal.KitsModel
}

func NewDBSource(plants dal.PlantsModel, products dal.ProductsModel, kits dal.KitsModel) *DBSource {
	return &DBSource{plants: plants, products: products, kits: kits}
}

func (s *DBSource) FetchPlants(ctx context.Context) ([]Raw, error) {
	rows, err := s.plants.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Raw, 0, len(rows))
	for _, row := range rows {
		out = append(out, Raw{
			"id":                   row.Id,
			"name":                 row.Name,
			"scientific_name":      row.ScientificName,
			"light":                row.Light,
			"water_frequency_days": row.WaterFrequencyDays,
			"humidity_preference":  row.HumidityPreference,
			"difficulty":           row.Difficulty,
			"compatible_locations": splitList(row.CompatibleLocations),
			"pet_safe":             row.PetSafe,
			"air_purifying":        row.AirPurifying,
			"popularity":           row.Popularity,
		})
	}
	return out, nil
}

func (s *DBSource) FetchProducts(ctx context.Context) ([]Raw, error) {
	rows, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Raw, 0, len(rows))
	for _, row := range rows {
		out = append(out, Raw{
			"id":                   row.Id,
			"name":                 row.Name,
			"category":             row.Category,
			"price_cents":          row.PriceCents,
			"compatible_plants":    splitList(row.CompatiblePlants),
			"compatible_locations": splitList(row.CompatibleLocations),
			"popularity":           row.Popularity,
		})
	}
	return out, nil
}

func (s *DBSource) FetchKits(ctx context.Context) ([]Raw, error) {
	rows, err := s.kits.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Raw, 0, len(rows))
	for _, row := range rows {
		out = append(out, Raw{
			"id":                   row.Id,
			"name":                 row.Name,
			"price_cents":          row.PriceCents,
			"difficulty":           row.Difficulty,
			"light":                row.Light,
			"plant_ids":            splitList(row.PlantIds),
			"compatible_locations": splitList(row.CompatibleLocations),
			"popularity":           row.Popularity,
		})
	}
	return out, nil
}

// splitList parses the comma separated list columns.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
