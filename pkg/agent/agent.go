// Package agent derives the invokable delegation targets from the active
// preset: one definition per tier, with its model id, step budget, prompt and
// provider-specific invocation options. The host registers these once at
// process start.
package agent

import (
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"google.golang.org/genai"

	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/resolve"
)

// defaultThinkingBudget is used when a tier enables thinking without naming a
// token budget.
const defaultThinkingBudget = 8192

// Definition describes one delegation target for the host runtime.
type Definition struct {
	Tier      string          `json:"tier"`
	Model     string          `json:"model"`
	Provider  string          `json:"provider,omitempty"`
	MaxSteps  int             `json:"maxSteps,omitempty"`
	Prompt    string          `json:"prompt,omitempty"`
	WhenToUse []string        `json:"whenToUse,omitempty"`
	Options   ProviderOptions `json:"options"`
}

// ProviderOptions carries the provider-specific invocation shape for a tier.
// At most one field is set, chosen by the tier's provider.
type ProviderOptions struct {
	AnthropicThinking *anthropic.ThinkingConfigParamUnion `json:"anthropicThinking,omitempty"`
	OpenAIReasoning   openai.ReasoningEffort              `json:"openaiReasoning,omitempty"`
	GoogleThinking    *genai.ThinkingConfig               `json:"googleThinking,omitempty"`
}

// Register builds the delegation targets for the active preset, in document
// order. Model shorthands are resolved through the document's alias table.
func Register(e *resolve.Effective) []Definition {
	preset := e.Preset()
	defs := make([]Definition, 0, len(preset.Tiers))
	for _, tier := range preset.Tiers {
		model := e.Doc.Aliases.Resolve(tier.Model)
		defs = append(defs, Definition{
			Tier:      tier.Name,
			Model:     model,
			Provider:  Provider(model),
			MaxSteps:  tier.MaxSteps,
			Prompt:    tier.Prompt,
			WhenToUse: tier.WhenToUse,
			Options:   options(Provider(model), tier),
		})
	}
	return defs
}

// Provider infers the provider from a model id: the segment before "/" when
// prefixed, otherwise the model family name.
func Provider(model string) string {
	if idx := strings.Index(model, "/"); idx > 0 {
		return model[:idx]
	}
	switch {
	case strings.HasPrefix(model, "claude"):
		return "anthropic"
	case strings.HasPrefix(model, "gpt"), strings.HasPrefix(model, "o1"), strings.HasPrefix(model, "o3"):
		return "openai"
	case strings.HasPrefix(model, "gemini"):
		return "google"
	case strings.HasPrefix(model, "deepseek"):
		return "deepseek"
	}
	return ""
}

func options(provider string, tier config.Tier) ProviderOptions {
	var opts ProviderOptions

	if tier.Thinking != nil {
		budget := tier.Thinking.BudgetTokens
		if budget <= 0 {
			budget = defaultThinkingBudget
		}
		switch provider {
		case "google":
			b := int32(budget)
			opts.GoogleThinking = &genai.ThinkingConfig{ThinkingBudget: &b}
		default:
			thinking := anthropic.ThinkingConfigParamOfEnabled(int64(budget))
			opts.AnthropicThinking = &thinking
		}
		return opts
	}

	if tier.Reasoning != nil {
		opts.OpenAIReasoning = reasoningEffort(tier.Reasoning.Effort)
	}
	return opts
}

func reasoningEffort(effort string) openai.ReasoningEffort {
	switch strings.ToLower(strings.TrimSpace(effort)) {
	case "minimal":
		// Not yet a named constant in the SDK; the type is a plain string.
		return openai.ReasoningEffort("minimal")
	case "low":
		return openai.ReasoningEffortLow
	case "", "medium":
		return openai.ReasoningEffortMedium
	case "high":
		return openai.ReasoningEffortHigh
	}
	return openai.ReasoningEffort(effort)
}
