package convo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"SproutAI/app/services/assistant/internal/assistant/extract"
	"SproutAI/app/services/assistant/internal/assistant/recommend"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Responder phrases the assistant's answers. When a chat model is wired it
// writes the wording; every path has a deterministic fallback so the
// conversation works without one.
type Responder struct {
	log   logx.Logger
	model model.BaseChatModel
}

func NewResponder(logger logx.Logger, chatModel model.BaseChatModel) *Responder {
	return &Responder{log: logger, model: chatModel}
}

func (r *Responder) RecommendationAnswer(ctx context.Context, c recommend.Constraint, result *recommend.Result) string {
	fallback := summarizeResult(result)
	if r.model == nil || result == nil || len(result.Plants) == 0 {
		return fallback
	}

	var sb strings.Builder
	sb.WriteString("Matched plants:\n")
	for idx, plant := range result.Plants {
		sb.WriteString(fmt.Sprintf("%d. %s (%s) | match %.1f | water every %d days\n",
			idx+1, plant.Plant.Name, plant.Plant.ScientificName, plant.Score, plant.Plant.WaterEveryDays))
	}
	if len(result.Products) > 0 {
		sb.WriteString("Supplies:\n")
		for _, p := range result.Products {
			sb.WriteString(fmt.Sprintf("- %s (%s), $%.2f\n", p.Product.Name, p.Product.Category, float64(p.Product.PriceCents)/100.0))
		}
	}
	if len(result.Kits) > 0 {
		sb.WriteString("Starter kits:\n")
		for _, k := range result.Kits {
			sb.WriteString(fmt.Sprintf("- %s, $%.2f\n", k.Kit.Name, float64(k.Kit.PriceCents)/100.0))
		}
	}
	if len(result.Relaxed) > 0 {
		names := make([]string, 0, len(result.Relaxed))
		for _, slot := range result.Relaxed {
			names = append(names, string(slot))
		}
		sb.WriteString("Relaxed criteria: " + strings.Join(names, ", ") + "\n")
	}

	systemPrompt := `You are a friendly houseplant advisor. Present the matched plants below as 1-3 short paragraphs.
Rules:
- Never invent plants, products or facts beyond the list.
- Mention each plant by name with one reason it fits.
- If supplies or kits are listed, mention them briefly at the end.
- If criteria were relaxed, say so in one honest sentence.
- Warm, plain tone. No markdown tables.`

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(sb.String()),
	}

	start := time.Now()
	out, err := r.model.Generate(ctx, messages)
	r.log.Infof("compose recommendation answer took %s", time.Since(start))
	if err != nil || out == nil || strings.TrimSpace(out.Content) == "" {
		r.log.Errorf("compose recommendation answer failed: %v", err)
		return fallback
	}
	return strings.TrimSpace(out.Content)
}

func (r *Responder) SideAnswer(ctx context.Context, intent extract.SideIntent, question string) string {
	fallback := "Happy to help with that once we've picked your plants. For now, let's keep going."
	if intent == extract.SideIntentCareQuestion {
		fallback = "Good question. Most houseplants want their topsoil to dry out between waterings; I'll match watering needs to your routine in a moment."
	}
	if r.model == nil {
		return fallback
	}

	systemPrompt := `You are a houseplant advisor answering one quick side question during an intake conversation. Answer in 1-2 sentences, no product names you cannot verify, then stop. Do not ask follow-up questions.`
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(question),
	}
	out, err := r.model.Generate(ctx, messages)
	if err != nil || out == nil || strings.TrimSpace(out.Content) == "" {
		r.log.Errorf("compose side answer failed: %v", err)
		return fallback
	}
	return strings.TrimSpace(out.Content)
}

func (r *Responder) NoMatchAnswer(_ context.Context) string {
	return "I couldn't find plants matching everything you asked for, even after loosening the less important criteria. Want to change the light level or the room and try again?"
}

func summarizeResult(result *recommend.Result) string {
	if result == nil || len(result.Plants) == 0 {
		return "I couldn't find plants matching everything you asked for."
	}

	var sb strings.Builder
	sb.WriteString("Here's what I'd suggest:\n")
	for idx, plant := range result.Plants {
		sb.WriteString(fmt.Sprintf("%d. %s, a %.0f%% match", idx+1, plant.Plant.Name, plant.Score))
		if plant.Plant.PetSafe {
			sb.WriteString(", pet safe")
		}
		sb.WriteString("\n")
	}
	if len(result.Products) > 0 {
		sb.WriteString("You might also want: ")
		names := make([]string, 0, len(result.Products))
		for _, p := range result.Products {
			names = append(names, p.Product.Name)
		}
		sb.WriteString(strings.Join(names, ", ") + "\n")
	}
	if len(result.Relaxed) > 0 {
		names := make([]string, 0, len(result.Relaxed))
		for _, slot := range result.Relaxed {
			names = append(names, string(slot))
		}
		sb.WriteString("I loosened these criteria to find matches: " + strings.Join(names, ", ") + "\n")
	}
	return strings.TrimSpace(sb.String())
}
