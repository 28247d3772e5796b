package extract

import (
	"context"
	"regexp"
	"strings"

	"SproutAI/app/services/assistant/internal/assistant/recommend"
)

type patternRule struct {
	re    *regexp.Regexp
	value string
}

var roomRules = []patternRule{
	{regexp.MustCompile(`\b(kitchen|cooking|cook)\b`), "kitchen"},
	{regexp.MustCompile(`\b(living ?room|lounge|family room)\b`), "living_room"},
	{regexp.MustCompile(`\b(bed ?room|sleeping|sleep)\b`), "bedroom"},
	{regexp.MustCompile(`\b(bath ?room|bath|shower|toilet)\b`), "bathroom"},
	{regexp.MustCompile(`\b(office|study|desk|workspace|work space)\b`), "office"},
	{regexp.MustCompile(`\b(balcony|patio|terrace|outdoor|outside)\b`), "balcony"},
}

var lightRules = []patternRule{
	{regexp.MustCompile(`\b(low light|dark|dim|shadowy|shady|shade|no sun|hardly any sun|little sun|not much sun)\b`), "low"},
	{regexp.MustCompile(`\b(medium light|moderate light|some light|partial light)\b`), "medium"},
	{regexp.MustCompile(`\b(bright indirect|indirect light|filtered light|bright shade|plenty of light)\b`), "bright_indirect"},
	{regexp.MustCompile(`\b(direct light|full sun|sunny|sunshine|direct sun|lots of sun)\b`), "direct"},
}

var experienceRules = []patternRule{
	{regexp.MustCompile(`\b(beginner|novice|newbie|first time|never grown|new to plants|inexperienced)\b`), "beginner"},
	{regexp.MustCompile(`\b(intermediate|some experience|have grown|familiar with plants)\b`), "intermediate"},
	{regexp.MustCompile(`\b(advanced|expert|experienced|green thumb|master gardener|many years)\b`), "advanced"},
}

var maintenanceRules = []patternRule{
	{regexp.MustCompile(`\b(low maintenance|easy|minimal|neglect|busy|no time|forgetful|lazy|hardy|set and forget)\b`), "low"},
	{regexp.MustCompile(`\b(medium maintenance|moderate|some care|weekly|regular care)\b`), "medium"},
	{regexp.MustCompile(`\b(high maintenance|demanding|daily attention|lots of care|frequent care)\b`), "high"},
}

var humidityRules = []patternRule{
	{regexp.MustCompile(`\b(dry air|low humidity|arid)\b`), "low"},
	{regexp.MustCompile(`\b(humid|high humidity|steamy|tropical air)\b`), "high"},
}

var intentRules = []struct {
	re     *regexp.Regexp
	intent SideIntent
}{
	{regexp.MustCompile(`\b(how (do|often|much)|care for|watering|repot|prune|fertiliz|yellow(ing)? leaves|brown tips|dying|droop)\b`), SideIntentCareQuestion},
	{regexp.MustCompile(`\b(what (pot|soil)|which (pot|soil|fertilizer)|grow light|recommend a (pot|soil)|buy)\b`), SideIntentProductLookup},
}

var resetRule = regexp.MustCompile(`\b(reset|restart|start over)\b`)

// PatternExtractor reads slot values with compiled keyword tables. Cheap,
// deterministic and always available; it backstops the model-based extractor.
type PatternExtractor struct{}

func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

func (e *PatternExtractor) Extract(_ context.Context, in Input) (*Result, error) {
	text := strings.ToLower(in.Text)
	result := &Result{Slots: make(map[recommend.Slot]string)}

	if resetRule.MatchString(text) {
		result.Reset = true
		return result, nil
	}

	applyRules(result, recommend.SlotRoom, roomRules, text)
	applyRules(result, recommend.SlotLight, lightRules, text)
	applyRules(result, recommend.SlotExperience, experienceRules, text)
	applyRules(result, recommend.SlotMaintenance, maintenanceRules, text)
	applyRules(result, recommend.SlotHumidity, humidityRules, text)

	for _, rule := range intentRules {
		if rule.re.MatchString(text) {
			result.Intent = rule.intent
			break
		}
	}

	return result, nil
}

func applyRules(result *Result, slot recommend.Slot, rules []patternRule, text string) {
	for _, rule := range rules {
		if rule.re.MatchString(text) {
			result.Slots[slot] = rule.value
			return
		}
	}
}
