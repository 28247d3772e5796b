package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue reports a value outside the recognized enum for a field.
// Callers discard the offending value instead of aborting the whole record
// stream only when the value came from the slot extractor; catalog ingestion
// fails fast on it.
var ErrInvalidValue = errors.New("invalid catalog value")

type Light string

const (
	LightLow            Light = "low"
	LightMedium         Light = "medium"
	LightBrightIndirect Light = "bright_indirect"
	LightDirect         Light = "direct"
)

var lightTiers = map[Light]int{
	LightLow:            0,
	LightMedium:         1,
	LightBrightIndirect: 2,
	LightDirect:         3,
}

func ParseLight(s string) (Light, error) {
	l := Light(normalize(s))
	if _, ok := lightTiers[l]; !ok {
		return "", fmt.Errorf("%w: light %q", ErrInvalidValue, s)
	}
	return l, nil
}

// Tier returns the position of the light level in the low→direct ladder.
func (l Light) Tier() int { return lightTiers[l] }

type Maintenance string

const (
	MaintenanceLow    Maintenance = "low"
	MaintenanceMedium Maintenance = "medium"
	MaintenanceHigh   Maintenance = "high"
)

var maintenanceTiers = map[Maintenance]int{
	MaintenanceLow:    0,
	MaintenanceMedium: 1,
	MaintenanceHigh:   2,
}

func ParseMaintenance(s string) (Maintenance, error) {
	m := Maintenance(normalize(s))
	if _, ok := maintenanceTiers[m]; !ok {
		return "", fmt.Errorf("%w: maintenance %q", ErrInvalidValue, s)
	}
	return m, nil
}

func (m Maintenance) Tier() int { return maintenanceTiers[m] }

// MaintenanceForDifficulty derives the maintenance category from the 1-10
// difficulty scale: 1-3 low, 4-6 medium, 7-10 high.
func MaintenanceForDifficulty(difficulty int) Maintenance {
	switch {
	case difficulty <= 3:
		return MaintenanceLow
	case difficulty <= 6:
		return MaintenanceMedium
	default:
		return MaintenanceHigh
	}
}

type Humidity string

const (
	HumidityLow    Humidity = "low"
	HumidityMedium Humidity = "medium"
	HumidityHigh   Humidity = "high"
)

var humidityTiers = map[Humidity]int{
	HumidityLow:    0,
	HumidityMedium: 1,
	HumidityHigh:   2,
}

func ParseHumidity(s string) (Humidity, error) {
	h := Humidity(normalize(s))
	if _, ok := humidityTiers[h]; !ok {
		return "", fmt.Errorf("%w: humidity %q", ErrInvalidValue, s)
	}
	return h, nil
}

func (h Humidity) Tier() int { return humidityTiers[h] }

type Room string

const (
	RoomBedroom    Room = "bedroom"
	RoomBathroom   Room = "bathroom"
	RoomKitchen    Room = "kitchen"
	RoomLivingRoom Room = "living_room"
	RoomOffice     Room = "office"
	RoomBalcony    Room = "balcony"
)

var knownRooms = map[Room]struct{}{
	RoomBedroom:    {},
	RoomBathroom:   {},
	RoomKitchen:    {},
	RoomLivingRoom: {},
	RoomOffice:     {},
	RoomBalcony:    {},
}

func ParseRoom(s string) (Room, error) {
	r := Room(normalize(s))
	if _, ok := knownRooms[r]; !ok {
		return "", fmt.Errorf("%w: room %q", ErrInvalidValue, s)
	}
	return r, nil
}

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// DifficultyCeiling is the inclusive maximum plant difficulty a user at this
// experience level should be offered.
func (e Experience) DifficultyCeiling() int {
	switch e {
	case ExperienceBeginner:
		return 4
	case ExperienceIntermediate:
		return 7
	default:
		return 10
	}
}

func ParseExperience(s string) (Experience, error) {
	e := Experience(normalize(s))
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return e, nil
	}
	return "", fmt.Errorf("%w: experience %q", ErrInvalidValue, s)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// PlantRecord is one catalog plant, immutable once published in a snapshot.
type PlantRecord struct {
	ID             string
	Name           string
	ScientificName string
	Light          Light
	WaterEveryDays int
	Humidity       Humidity
	Difficulty     int
	Maintenance    Maintenance
	Rooms          []Room
	PetSafe        bool
	AirPurifying   bool
	// Popularity is a static catalog-supplied weight used only to break
	// score ties deterministically.
	Popularity int
}

func (p PlantRecord) SuitsRoom(room Room) bool {
	for _, r := range p.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// ProductRecord is a care product (pot, soil, grow light, ...) that can be
// recommended alongside plants.
type ProductRecord struct {
	ID         string
	Name       string
	Category   string
	PriceCents int64
	PlantIDs   []string
	Rooms      []Room
	Popularity int
}

func (p ProductRecord) SuitsRoom(room Room) bool {
	for _, r := range p.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

func (p ProductRecord) SupportsPlant(plantID string) bool {
	for _, id := range p.PlantIDs {
		if id == plantID {
			return true
		}
	}
	return false
}

// KitRecord is a pre-built bundle of plants and products for a room.
type KitRecord struct {
	ID         string
	Name       string
	PriceCents int64
	Difficulty int
	Light      Light
	PlantIDs   []string
	Rooms      []Room
	Popularity int
}

func (k KitRecord) SuitsRoom(room Room) bool {
	for _, r := range k.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

func (k KitRecord) ContainsPlant(plantID string) bool {
	for _, id := range k.PlantIDs {
		if id == plantID {
			return true
		}
	}
	return false
}
