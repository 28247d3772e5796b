package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"SproutAI/app/services/assistant/internal/assistant/recommend"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	extractorModelNodeKey = "slot_extractor_model"
	extractorToolName     = "submit_slot_values"
)

// LLMExtractor reads slot values with a chat model forced through a single
// tool call, so the output is structured JSON rather than prose.
type LLMExtractor struct {
	log      logx.Logger
	runnable compose.Runnable[Input, *Result]
	tools    []*schema.ToolInfo
}

type slotPayload struct {
	Room        string `json:"room,omitempty"`
	Light       string `json:"light,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Maintenance string `json:"maintenance,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	SideIntent  string `json:"side_intent,omitempty"`
	Reset       bool   `json:"reset,omitempty"`
}

func NewLLMExtractor(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*LLMExtractor, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	slotTool := buildSlotTool()
	tools := []*schema.ToolInfo{slotTool}

	extractModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind slot tool failed: %v", err)
		} else {
			extractModel = modelWithTools
		}
	}

	chain := compose.NewChain[Input, *Result]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Input) ([]*schema.Message, error) {
		systemPrompt := `You are the intake assistant of a houseplant advisor. Read the user's message and report, via the submit_slot_values tool, any preferences it states for these slots:
- room: bedroom|bathroom|kitchen|living_room|office|balcony
- light: low|medium|bright_indirect|direct
- experience: beginner|intermediate|advanced
- maintenance: low|medium|high
- humidity: low|medium|high
Only report a slot the message actually addresses; leave the rest empty. Never re-report a slot listed as already filled unless the message explicitly changes it. If the message is a plant-care question set side_intent to "care_question"; if it asks about pots, soil or other gear set it to "product_lookup". Set reset to true only when the user asks to start over. Call the tool exactly once and produce no other text.`

		var user strings.Builder
		user.WriteString("User message: ")
		user.WriteString(in.Text)
		if len(in.Filled) > 0 {
			names := make([]string, 0, len(in.Filled))
			for _, slot := range in.Filled {
				names = append(names, string(slot))
			}
			user.WriteString("\nAlready filled slots: ")
			user.WriteString(strings.Join(names, ", "))
		}

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(user.String()),
		}, nil
	}))

	chain.AppendChatModel(extractModel, compose.WithNodeKey(extractorModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Result, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := toolArguments(msg)
		if payload == "" {
			return nil, fmt.Errorf("slot tool payload missing")
		}

		var values slotPayload
		if err := json.Unmarshal([]byte(payload), &values); err != nil {
			return nil, fmt.Errorf("unmarshal slot payload: %w", err)
		}

		result := &Result{
			Slots: make(map[recommend.Slot]string),
			Reset: values.Reset,
		}
		putSlot(result, recommend.SlotRoom, values.Room)
		putSlot(result, recommend.SlotLight, values.Light)
		putSlot(result, recommend.SlotExperience, values.Experience)
		putSlot(result, recommend.SlotMaintenance, values.Maintenance)
		putSlot(result, recommend.SlotHumidity, values.Humidity)
		switch SideIntent(values.SideIntent) {
		case SideIntentCareQuestion, SideIntentProductLookup:
			result.Intent = SideIntent(values.SideIntent)
		}
		return result, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &LLMExtractor{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

func (e *LLMExtractor) Extract(ctx context.Context, in Input) (*Result, error) {
	if e == nil || e.runnable == nil {
		return nil, fmt.Errorf("slot extractor unavailable")
	}

	var opts []compose.Option
	if len(e.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(e.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(extractorModelNodeKey)
		opts = append(opts, opt)
	}

	return e.runnable.Invoke(ctx, in, opts...)
}

func putSlot(result *Result, slot recommend.Slot, value string) {
	if v := strings.TrimSpace(value); v != "" {
		result.Slots[slot] = v
	}
}

func toolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, extractorToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func buildSlotTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: extractorToolName,
		Desc: "Report the plant preferences recognized in one user message",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"room": {
				Type: schema.String,
				Desc: "Room the plants are for, empty when not stated",
				Enum: []string{"bedroom", "bathroom", "kitchen", "living_room", "office", "balcony"},
			},
			"light": {
				Type: schema.String,
				Desc: "Available light level, empty when not stated",
				Enum: []string{"low", "medium", "bright_indirect", "direct"},
			},
			"experience": {
				Type: schema.String,
				Desc: "User's plant experience, empty when not stated",
				Enum: []string{"beginner", "intermediate", "advanced"},
			},
			"maintenance": {
				Type: schema.String,
				Desc: "Preferred care effort, empty when not stated",
				Enum: []string{"low", "medium", "high"},
			},
			"humidity": {
				Type: schema.String,
				Desc: "Room humidity when volunteered, empty otherwise",
				Enum: []string{"low", "medium", "high"},
			},
			"side_intent": {
				Type: schema.String,
				Desc: "care_question for plant-care questions, product_lookup for gear questions, empty otherwise",
				Enum: []string{"", "care_question", "product_lookup"},
			},
			"reset": {
				Type: schema.Boolean,
				Desc: "True when the user asks to start the conversation over",
			},
		}),
	}
}
