// Package report renders the user-facing command output for tier inspection
// and preset/mode switching. Switch operations persist the change and
// invalidate the config cache so the next compiled protocol reflects it.
package report

import (
	"fmt"
	"strings"

	"github.com/zen-systems/tiergate/pkg/cache"
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/resolve"
	"github.com/zen-systems/tiergate/pkg/state"
)

// restartNote reminds users that switching presets re-points the protocol at
// once but re-registers subagent models only on the next process start.
const restartNote = "Delegation instructions update immediately; subagent model bindings refresh on restart."

// Builder renders command reports. All methods return a user-facing string
// and never fail upward: load errors fall back to the last cached
// configuration, and name-resolution failures become explicit messages.
type Builder struct {
	Cache *cache.Handle
	Store *state.Store
}

// NewBuilder creates a report builder over an explicit cache handle and
// state store.
func NewBuilder(c *cache.Handle, s *state.Store) *Builder {
	return &Builder{Cache: c, Store: s}
}

func (b *Builder) effective() (*resolve.Effective, string) {
	eff, err := b.Cache.Get()
	if eff == nil {
		return nil, fmt.Sprintf("Configuration error: %v", err)
	}
	return eff, ""
}

// Tiers lists every tier of the active preset, then the global rules, the
// default tier and the configured preset names.
func (b *Builder) Tiers() string {
	eff, errMsg := b.effective()
	if eff == nil {
		return errMsg
	}
	preset := eff.Preset()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Delegation tiers (preset %q):\n", preset.Name)
	for _, t := range preset.Tiers {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "@%s -> %s\n", t.Name, t.Model)
		if detail := optionDetail(t); detail != "" {
			fmt.Fprintf(&sb, "    %s\n", detail)
		}
		fmt.Fprintf(&sb, "    steps: %s\n", stepBudget(t))
		fmt.Fprintf(&sb, "    %s\n", t.Description)
		if len(t.WhenToUse) > 0 {
			fmt.Fprintf(&sb, "    when: %s\n", strings.Join(t.WhenToUse, "; "))
		}
	}

	sb.WriteString("\nRules:\n")
	for i, rule := range eff.Doc.Rules {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, rule)
	}
	fmt.Fprintf(&sb, "\nDefault tier: %s\n", eff.Doc.DefaultTier)
	fmt.Fprintf(&sb, "Presets: %s", strings.Join(eff.Doc.PresetNames(), ", "))
	return sb.String()
}

// Preset lists all presets when name is empty, otherwise resolves name,
// persists it as the active preset and invalidates the cache.
func (b *Builder) Preset(name string) string {
	eff, errMsg := b.effective()
	if eff == nil {
		return errMsg
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return b.listPresets(eff)
	}

	resolved, ok := resolve.Resolve(eff.Doc.PresetNames(), name)
	if !ok {
		return fmt.Sprintf("Unknown preset: %q. Available: %s",
			name, strings.Join(eff.Doc.PresetNames(), ", "))
	}
	if err := b.Store.SetActivePreset(resolved); err != nil {
		return fmt.Sprintf("Could not save preset choice: %v", err)
	}
	b.Cache.Invalidate()

	preset, _ := eff.Doc.Preset(resolved)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Switched preset to %q.\n", resolved)
	for _, t := range preset.Tiers {
		fmt.Fprintf(&sb, "@%s -> %s\n", t.Name, t.Model)
	}
	sb.WriteString("\n")
	sb.WriteString(restartNote)
	return sb.String()
}

func (b *Builder) listPresets(eff *resolve.Effective) string {
	active := eff.Preset().Name

	var sb strings.Builder
	sb.WriteString("Presets:\n")
	for _, p := range eff.Doc.Presets {
		marker := "  "
		suffix := ""
		if p.Name == active {
			marker = "* "
			suffix = " (active)"
		}
		summaries := make([]string, 0, len(p.Tiers))
		for _, t := range p.Tiers {
			summaries = append(summaries, t.Name+"="+t.Model)
		}
		fmt.Fprintf(&sb, "%s%s%s: %s\n", marker, p.Name, suffix, strings.Join(summaries, ", "))
	}
	sb.WriteString("\nSwitch with: preset <name>")
	return sb.String()
}

// Budget lists all modes when name is empty, otherwise resolves name,
// persists it as the active mode and invalidates the cache.
func (b *Builder) Budget(name string) string {
	eff, errMsg := b.effective()
	if eff == nil {
		return errMsg
	}
	if len(eff.Doc.Modes) == 0 {
		return "No modes configured."
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return b.listModes(eff)
	}

	resolved, ok := resolve.Resolve(eff.Doc.ModeNames(), name)
	if !ok {
		return fmt.Sprintf("Unknown mode: %q. Available: %s",
			name, strings.Join(eff.Doc.ModeNames(), ", "))
	}
	if err := b.Store.SetActiveMode(resolved); err != nil {
		return fmt.Sprintf("Could not save mode choice: %v", err)
	}
	b.Cache.Invalidate()

	mode, _ := eff.Doc.Mode(resolved)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mode set to %q: %s\n", mode.Name, mode.Description)
	fmt.Fprintf(&sb, "Default tier: %s", mode.DefaultTier)
	if len(mode.OverrideRules) > 0 {
		sb.WriteString("\nRules:")
		for i, rule := range mode.OverrideRules {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, rule)
		}
	}
	return sb.String()
}

func (b *Builder) listModes(eff *resolve.Effective) string {
	var sb strings.Builder
	sb.WriteString("Modes:\n")
	for _, m := range eff.Doc.Modes {
		marker := "  "
		suffix := ""
		if m.Name == eff.ActiveMode {
			marker = "* "
			suffix = " (active)"
		}
		fmt.Fprintf(&sb, "%s%s%s: %s [default tier: %s]\n", marker, m.Name, suffix, m.Description, m.DefaultTier)
	}
	if eff.ActiveMode == "" {
		sb.WriteString("\nNo mode active; global rules apply.")
	}
	return sb.String()
}

func optionDetail(t config.Tier) string {
	switch {
	case t.Thinking != nil:
		if t.Thinking.BudgetTokens > 0 {
			return fmt.Sprintf("thinking: %s (budget %d tokens)", t.Thinking.Type, t.Thinking.BudgetTokens)
		}
		return "thinking: " + t.Thinking.Type
	case t.Reasoning != nil:
		return "reasoning: " + t.Reasoning.Effort
	}
	return ""
}

func stepBudget(t config.Tier) string {
	if t.MaxSteps <= 0 {
		return "default"
	}
	return fmt.Sprintf("%d", t.MaxSteps)
}
