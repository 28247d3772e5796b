package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Raw is one loosely-typed record as delivered by a catalog source. Upstream
// sheets and DB exports disagree about types (numbers arrive as strings, sets
// as comma-joined text), so everything funnels through the coercion below
// before the rest of the service sees it.
type Raw map[string]any

var validate = validator.New()

type plantBounds struct {
	Difficulty     int `validate:"min=1,max=10"`
	WaterEveryDays int `validate:"min=1"`
}

// CoercePlant converts a raw attribute map into a typed PlantRecord, failing
// fast on unrecognized enum values or out-of-range numbers.
func CoercePlant(raw Raw) (PlantRecord, error) {
	var p PlantRecord

	p.ID = rawString(raw, "id")
	if p.ID == "" {
		return p, fmt.Errorf("plant record missing id")
	}
	p.Name = rawString(raw, "name")
	p.ScientificName = rawString(raw, "scientific_name")

	light, err := ParseLight(rawString(raw, "light"))
	if err != nil {
		return p, fmt.Errorf("plant %s: %w", p.ID, err)
	}
	p.Light = light

	humidity, err := ParseHumidity(rawString(raw, "humidity_preference"))
	if err != nil {
		return p, fmt.Errorf("plant %s: %w", p.ID, err)
	}
	p.Humidity = humidity

	p.Difficulty, err = rawInt(raw, "difficulty")
	if err != nil {
		return p, fmt.Errorf("plant %s: %w", p.ID, err)
	}
	p.WaterEveryDays, err = rawInt(raw, "water_frequency_days")
	if err != nil {
		return p, fmt.Errorf("plant %s: %w", p.ID, err)
	}
	if err := validate.Struct(plantBounds{Difficulty: p.Difficulty, WaterEveryDays: p.WaterEveryDays}); err != nil {
		return p, fmt.Errorf("plant %s: out of range: %w", p.ID, err)
	}
	p.Maintenance = MaintenanceForDifficulty(p.Difficulty)

	for _, s := range rawStringSlice(raw, "compatible_locations") {
		room, err := ParseRoom(s)
		if err != nil {
			return p, fmt.Errorf("plant %s: %w", p.ID, err)
		}
		p.Rooms = append(p.Rooms, room)
	}

	p.PetSafe = rawBool(raw, "pet_safe")
	p.AirPurifying = rawBool(raw, "air_purifying")
	p.Popularity, _ = rawInt(raw, "popularity")

	return p, nil
}

func CoerceProduct(raw Raw) (ProductRecord, error) {
	var p ProductRecord

	p.ID = rawString(raw, "id")
	if p.ID == "" {
		return p, fmt.Errorf("product record missing id")
	}
	p.Name = rawString(raw, "name")
	p.Category = normalize(rawString(raw, "category"))

	price, err := rawInt64(raw, "price_cents")
	if err != nil || price < 0 {
		return p, fmt.Errorf("product %s: invalid price", p.ID)
	}
	p.PriceCents = price

	p.PlantIDs = rawStringSlice(raw, "compatible_plants")
	for _, s := range rawStringSlice(raw, "compatible_locations") {
		room, err := ParseRoom(s)
		if err != nil {
			return p, fmt.Errorf("product %s: %w", p.ID, err)
		}
		p.Rooms = append(p.Rooms, room)
	}
	p.Popularity, _ = rawInt(raw, "popularity")

	return p, nil
}

func CoerceKit(raw Raw) (KitRecord, error) {
	var k KitRecord

	k.ID = rawString(raw, "id")
	if k.ID == "" {
		return k, fmt.Errorf("kit record missing id")
	}
	k.Name = rawString(raw, "name")

	price, err := rawInt64(raw, "price_cents")
	if err != nil || price < 0 {
		return k, fmt.Errorf("kit %s: invalid price", k.ID)
	}
	k.PriceCents = price

	k.Difficulty, err = rawInt(raw, "difficulty")
	if err != nil || k.Difficulty < 1 || k.Difficulty > 10 {
		return k, fmt.Errorf("kit %s: invalid difficulty", k.ID)
	}

	light, err := ParseLight(rawString(raw, "light"))
	if err != nil {
		return k, fmt.Errorf("kit %s: %w", k.ID, err)
	}
	k.Light = light

	k.PlantIDs = rawStringSlice(raw, "plant_ids")
	for _, s := range rawStringSlice(raw, "compatible_locations") {
		room, err := ParseRoom(s)
		if err != nil {
			return k, fmt.Errorf("kit %s: %w", k.ID, err)
		}
		k.Rooms = append(k.Rooms, room)
	}
	k.Popularity, _ = rawInt(raw, "popularity")

	return k, nil
}

func rawString(raw Raw, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func rawStringSlice(raw Raw, key string) []string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return trimAll(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return trimAll(out)
	default:
		return trimAll(strings.Split(fmt.Sprint(val), ","))
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func rawInt(raw Raw, key string) (int, error) {
	v, err := rawInt64(raw, key)
	return int(v), err
}

func rawInt64(raw Raw, key string) (int64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing %s", key)
	}
	switch val := v.(type) {
	case float64:
		return int64(val), nil
	case float32:
		return int64(val), nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case json.Number:
		return val.Int64()
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s: %q", key, val)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("bad %s type %T", key, v)
	}
}

func rawBool(raw Raw, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "yes" || s == "1"
	default:
		return false
	}
}
