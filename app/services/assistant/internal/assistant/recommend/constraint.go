package recommend

import (
	"SproutAI/app/services/assistant/internal/assistant/catalog"
)

// Slot names one collectible preference. The four required slots drive the
// conversation flow; humidity is accepted when volunteered but never asked.
type Slot string

const (
	SlotRoom        Slot = "room"
	SlotLight       Slot = "light"
	SlotExperience  Slot = "experience"
	SlotMaintenance Slot = "maintenance"
	SlotHumidity    Slot = "humidity"
)

// RequiredSlots is the fixed prompt order for the conversation flow.
var RequiredSlots = []Slot{SlotRoom, SlotLight, SlotExperience, SlotMaintenance}

// Constraint is a session's accumulated filter criteria. Every field is
// optional; an unset field imposes no restriction. The filter and scoring
// engines never mutate a Constraint.
type Constraint struct {
	Room        *catalog.Room
	Light       *catalog.Light
	Experience  *catalog.Experience
	Maintenance *catalog.Maintenance
	Humidity    *catalog.Humidity

	// Intents collects free-form wishes the extractor recognized but the
	// engine has no slot for (pet-safe, air-purifying, ...). They are
	// surfaced to the presentation layer, not scored.
	Intents []string
}

func (c Constraint) Filled(slot Slot) bool {
	switch slot {
	case SlotRoom:
		return c.Room != nil
	case SlotLight:
		return c.Light != nil
	case SlotExperience:
		return c.Experience != nil
	case SlotMaintenance:
		return c.Maintenance != nil
	case SlotHumidity:
		return c.Humidity != nil
	}
	return false
}

// Complete reports whether all four required slots are filled.
func (c Constraint) Complete() bool {
	for _, slot := range RequiredSlots {
		if !c.Filled(slot) {
			return false
		}
	}
	return true
}

// MissingSlots returns the unfilled required slots in prompt order.
func (c Constraint) MissingSlots() []Slot {
	var missing []Slot
	for _, slot := range RequiredSlots {
		if !c.Filled(slot) {
			missing = append(missing, slot)
		}
	}
	return missing
}

// Without returns a copy with one field cleared. Used by the relaxation
// policy; the receiver stays untouched.
func (c Constraint) Without(slot Slot) Constraint {
	out := c
	switch slot {
	case SlotRoom:
		out.Room = nil
	case SlotLight:
		out.Light = nil
	case SlotExperience:
		out.Experience = nil
	case SlotMaintenance:
		out.Maintenance = nil
	case SlotHumidity:
		out.Humidity = nil
	}
	return out
}

// Set parses and stores a slot value, returning the error from the enum
// parser when the value is unrecognized. The previous value, if any, is
// overwritten: last value wins on explicit restatement.
func (c *Constraint) Set(slot Slot, value string) error {
	switch slot {
	case SlotRoom:
		room, err := catalog.ParseRoom(value)
		if err != nil {
			return err
		}
		c.Room = &room
	case SlotLight:
		light, err := catalog.ParseLight(value)
		if err != nil {
			return err
		}
		c.Light = &light
	case SlotExperience:
		exp, err := catalog.ParseExperience(value)
		if err != nil {
			return err
		}
		c.Experience = &exp
	case SlotMaintenance:
		m, err := catalog.ParseMaintenance(value)
		if err != nil {
			return err
		}
		c.Maintenance = &m
	case SlotHumidity:
		h, err := catalog.ParseHumidity(value)
		if err != nil {
			return err
		}
		c.Humidity = &h
	default:
		return catalog.ErrInvalidValue
	}
	return nil
}
