package config

func ratio(v float64) *float64 { return &v }

// Default returns the built-in tier document used when no document file
// exists on disk.
func Default() *Document {
	return &Document{
		ActivePreset: "anthropic",
		DefaultTier:  "medium",
		Presets: []Preset{
			{
				Name: "anthropic",
				Tiers: []Tier{
					{
						Name:        "fast",
						Model:       "anthropic/claude-haiku-3-5",
						Description: "Cheap and quick; mechanical edits and lookups",
						CostRatio:   ratio(1),
						MaxSteps:    15,
						WhenToUse: []string{
							"typo and formatting fixes",
							"single-file mechanical edits",
							"looking up a definition or usage",
						},
					},
					{
						Name:        "medium",
						Model:       "anthropic/claude-sonnet-4-20250514",
						Description: "Balanced default for everyday implementation work",
						CostRatio:   ratio(5),
						WhenToUse: []string{
							"implementing a well-scoped feature",
							"writing tests for existing code",
							"routine debugging",
						},
					},
					{
						Name:        "heavy",
						Model:       "anthropic/claude-opus-4-20250514",
						Description: "Deep reasoning for architecture and gnarly bugs",
						Thinking:    &ThinkingOptions{Type: "enabled", BudgetTokens: 16000},
						CostRatio:   ratio(25),
						WhenToUse: []string{
							"cross-cutting refactors",
							"race conditions and memory corruption",
							"architecture and API design review",
						},
					},
				},
			},
			{
				Name: "openai",
				Tiers: []Tier{
					{
						Name:        "fast",
						Model:       "openai/gpt-5.2-instant",
						Description: "Cheap and quick; mechanical edits and lookups",
						CostRatio:   ratio(1),
						MaxSteps:    15,
						WhenToUse: []string{
							"typo and formatting fixes",
							"single-file mechanical edits",
						},
					},
					{
						Name:        "medium",
						Model:       "openai/gpt-5.2-codex",
						Description: "Balanced default for everyday implementation work",
						Reasoning:   &ReasoningOptions{Effort: "medium"},
						CostRatio:   ratio(4),
						WhenToUse: []string{
							"implementing a well-scoped feature",
							"routine debugging",
						},
					},
					{
						Name:        "heavy",
						Model:       "openai/gpt-5.2-pro",
						Description: "Deep reasoning for architecture and gnarly bugs",
						Reasoning:   &ReasoningOptions{Effort: "high"},
						CostRatio:   ratio(20),
						WhenToUse: []string{
							"cross-cutting refactors",
							"architecture and API design review",
						},
					},
				},
			},
		},
		Rules: []string{
			"Delegate every task that matches a tier's profile instead of doing it inline.",
			"Prefer the cheapest tier whose profile covers the task.",
			"Escalate one tier when a delegated attempt comes back wrong or incomplete.",
			"Keep planning, review and integration in this session; delegate execution only.",
		},
		Modes: []Mode{
			{
				Name:        "budget",
				DefaultTier: "fast",
				Description: "Minimize spend; escalate only on failure",
				OverrideRules: []string{
					"Send everything to @fast first.",
					"Escalate to @medium only after a failed @fast attempt.",
					"Never use @heavy without explicit user approval.",
				},
			},
			{
				Name:        "quality",
				DefaultTier: "heavy",
				Description: "Bias toward the strongest tier for correctness-critical work",
			},
		},
		Fallback: &FallbackConfig{
			Default: []ProviderFallback{
				{Provider: "anthropic", Presets: []string{"openai"}},
				{Provider: "openai", Presets: []string{"anthropic"}},
			},
		},
		TaskPatterns: []TaskPattern{
			{Tier: "fast", Patterns: []string{"fix typo", "rename", "format", "look up"}},
			{Tier: "medium", Patterns: []string{"implement", "write tests", "debug", "refactor"}},
			{Tier: "heavy", Patterns: []string{"architecture", "design review", "race condition", "memory leak"}},
		},
		Aliases: ModelAliases{
			"haiku":  "anthropic/claude-haiku-3-5",
			"sonnet": "anthropic/claude-sonnet-4-20250514",
			"opus":   "anthropic/claude-opus-4-20250514",
			"codex":  "openai/gpt-5.2-codex",
		},
	}
}
