package config

// Document is the author-edited tier configuration, decoded and validated.
// Presets, tiers, modes and task patterns keep their document order; display
// order everywhere downstream follows it.
type Document struct {
	ActivePreset string
	DefaultTier  string
	Presets      []Preset
	Rules        []string
	Modes        []Mode
	Fallback     *FallbackConfig
	TaskPatterns []TaskPattern
	Aliases      ModelAliases
}

// Preset is a complete set of delegation tiers for one provider or strategy.
type Preset struct {
	Name  string
	Tiers []Tier
}

// Tier is one delegation target: a model plus its invocation parameters.
type Tier struct {
	Name        string
	Model       string
	Variant     string
	Description string
	Thinking    *ThinkingOptions
	Reasoning   *ReasoningOptions
	CostRatio   *float64
	MaxSteps    int
	Prompt      string
	WhenToUse   []string
}

// ThinkingOptions configures extended thinking for providers that support it.
// Mutually exclusive with ReasoningOptions on the same tier.
type ThinkingOptions struct {
	Type         string
	BudgetTokens int
}

// ReasoningOptions configures reasoning effort for providers that support it.
type ReasoningOptions struct {
	Effort string
}

// Mode is a named routing policy. A non-empty OverrideRules list fully
// replaces the global rule list while the mode is active.
type Mode struct {
	Name          string
	DefaultTier   string
	Description   string
	OverrideRules []string
}

// FallbackConfig maps providers to ordered preset fallback chains. A per-preset
// entry, when present and non-empty, takes precedence over the default chains.
type FallbackConfig struct {
	Default []ProviderFallback
	Presets map[string][]ProviderFallback
}

// ProviderFallback is one provider's ordered list of presets to try on failure.
type ProviderFallback struct {
	Provider string
	Presets  []string
}

// TaskPattern binds a tier to the task phrasings that should route to it.
type TaskPattern struct {
	Tier     string
	Patterns []string
}

// Preset returns the preset with the given name, if configured.
func (d *Document) Preset(name string) (Preset, bool) {
	for _, p := range d.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// FirstPreset returns the first preset in document order. The second return
// is false only for a document with no presets, which validation rejects.
func (d *Document) FirstPreset() (Preset, bool) {
	if len(d.Presets) == 0 {
		return Preset{}, false
	}
	return d.Presets[0], true
}

// PresetNames returns all preset names in document order.
func (d *Document) PresetNames() []string {
	names := make([]string, 0, len(d.Presets))
	for _, p := range d.Presets {
		names = append(names, p.Name)
	}
	return names
}

// Mode returns the mode with the given name, if configured.
func (d *Document) Mode(name string) (Mode, bool) {
	for _, m := range d.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// ModeNames returns all mode names in document order.
func (d *Document) ModeNames() []string {
	names := make([]string, 0, len(d.Modes))
	for _, m := range d.Modes {
		names = append(names, m.Name)
	}
	return names
}

// Tier returns the named tier of a preset, if present.
func (p Preset) Tier(name string) (Tier, bool) {
	for _, t := range p.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}
