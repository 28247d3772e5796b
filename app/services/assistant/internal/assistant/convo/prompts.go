package convo

import "SproutAI/app/services/assistant/internal/assistant/recommend"

const (
	greetingMessage = "Hi! I can help you find plants that will actually thrive in your home. Tell me a bit about your space and I'll put together some picks."

	retryNotice = "Sorry, I didn't quite catch that."

	resetMessage = "No problem, let's start fresh. " + greetingMessage
)

// slotPrompts are the fixed questions for each required slot. The engine
// always asks them in RequiredSlots order, one per turn.
var slotPrompts = map[recommend.Slot]string{
	recommend.SlotRoom:        "Which room are the plants for?",
	recommend.SlotLight:       "How much natural light does that spot get? Low, medium, bright indirect, or direct sun?",
	recommend.SlotExperience:  "How experienced are you with plants? Beginner, intermediate, or advanced?",
	recommend.SlotMaintenance: "How much care are you up for? Low, medium, or high maintenance?",
}

func promptFor(slot recommend.Slot) string {
	if p, ok := slotPrompts[slot]; ok {
		return p
	}
	return slotPrompts[recommend.SlotRoom]
}
