package report

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zen-systems/tiergate/pkg/cache"
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/resolve"
	"github.com/zen-systems/tiergate/pkg/state"
)

func testDoc() *config.Document {
	return &config.Document{
		ActivePreset: "anthropic",
		DefaultTier:  "medium",
		Presets: []config.Preset{
			{
				Name: "anthropic",
				Tiers: []config.Tier{
					{Name: "fast", Model: "anthropic/claude-haiku-3-5", Description: "quick", MaxSteps: 15, WhenToUse: []string{"typos"}},
					{Name: "heavy", Model: "anthropic/claude-opus-4-20250514", Description: "deep",
						Thinking: &config.ThinkingOptions{Type: "enabled", BudgetTokens: 16000}, WhenToUse: []string{"architecture"}},
				},
			},
			{
				Name: "openai",
				Tiers: []config.Tier{
					{Name: "fast", Model: "openai/gpt-5.2-instant", Description: "quick", WhenToUse: []string{"typos"}},
					{Name: "heavy", Model: "openai/gpt-5.2-pro", Description: "deep",
						Reasoning: &config.ReasoningOptions{Effort: "high"}, WhenToUse: []string{"architecture"}},
				},
			},
		},
		Rules: []string{"G1", "G2"},
		Modes: []config.Mode{
			{Name: "budget", DefaultTier: "fast", Description: "minimize spend", OverrideRules: []string{"R1", "R2"}},
			{Name: "quality", DefaultTier: "heavy", Description: "best results"},
		},
	}
}

func newTestBuilder(t *testing.T, doc *config.Document) (*Builder, *state.Store) {
	t.Helper()
	store := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	handle := cache.New(func() (*resolve.Effective, error) {
		return resolve.New(doc, store.Read()), nil
	})
	return NewBuilder(handle, store), store
}

func TestTiersReport(t *testing.T) {
	b, _ := newTestBuilder(t, testDoc())
	out := b.Tiers()

	for _, want := range []string{
		`Delegation tiers (preset "anthropic")`,
		"@fast -> anthropic/claude-haiku-3-5",
		"steps: 15",
		"steps: default",
		"thinking: enabled (budget 16000 tokens)",
		"when: typos",
		"1. G1",
		"2. G2",
		"Default tier: medium",
		"Presets: anthropic, openai",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Tiers() missing %q:\n%s", want, out)
		}
	}
}

func TestTiersReportRendersReasoning(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())
	if err := store.SetActivePreset("openai"); err != nil {
		t.Fatalf("set preset: %v", err)
	}
	out := b.Tiers()
	if !strings.Contains(out, "reasoning: high") {
		t.Errorf("Tiers() missing reasoning detail:\n%s", out)
	}
	if strings.Contains(out, "thinking:") {
		t.Errorf("Tiers() rendered thinking for a reasoning tier:\n%s", out)
	}
}

func TestPresetListing(t *testing.T) {
	b, _ := newTestBuilder(t, testDoc())
	out := b.Preset("")
	if !strings.Contains(out, "* anthropic (active)") {
		t.Errorf("active preset not marked:\n%s", out)
	}
	if !strings.Contains(out, "fast=openai/gpt-5.2-instant") {
		t.Errorf("per-tier model summary missing:\n%s", out)
	}
}

func TestPresetSwitch(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())

	out := b.Preset("openai")
	if !strings.Contains(out, `Switched preset to "openai".`) {
		t.Errorf("confirmation missing:\n%s", out)
	}
	if !strings.Contains(out, "@fast -> openai/gpt-5.2-instant") {
		t.Errorf("new mapping missing:\n%s", out)
	}
	if got := store.Read().ActivePreset; got != "openai" {
		t.Errorf("persisted preset = %q, want openai", got)
	}

	// The switch invalidated the cache, so the next report sees openai.
	if out := b.Tiers(); !strings.Contains(out, `preset "openai"`) {
		t.Errorf("cache not invalidated:\n%s", out)
	}
}

func TestPresetSwitchCaseInsensitive(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())
	if out := b.Preset("OpenAI"); !strings.Contains(out, `Switched preset to "openai".`) {
		t.Errorf("case-insensitive switch failed:\n%s", out)
	}
	if got := store.Read().ActivePreset; got != "openai" {
		t.Errorf("persisted preset = %q, want openai", got)
	}
}

func TestPresetUnknownLeavesStateUntouched(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())

	out := b.Preset("nonexistent")
	want := `Unknown preset: "nonexistent". Available: anthropic, openai`
	if out != want {
		t.Errorf("Preset() = %q, want %q", out, want)
	}
	if st := store.Read(); st != (state.State{}) {
		t.Errorf("state file touched: %+v", st)
	}
}

func TestBudgetListing(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())

	out := b.Budget("")
	if !strings.Contains(out, "budget: minimize spend [default tier: fast]") {
		t.Errorf("mode listing missing detail:\n%s", out)
	}
	if !strings.Contains(out, "No mode active") {
		t.Errorf("inactive note missing:\n%s", out)
	}

	if err := store.SetActiveMode("quality"); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	b.Cache.Invalidate()
	if out := b.Budget(""); !strings.Contains(out, "* quality (active)") {
		t.Errorf("active mode not marked:\n%s", out)
	}
}

func TestBudgetSwitch(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())

	out := b.Budget("budget")
	for _, want := range []string{
		`Mode set to "budget": minimize spend`,
		"Default tier: fast",
		"1. R1",
		"2. R2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Budget() missing %q:\n%s", want, out)
		}
	}
	if got := store.Read().ActiveMode; got != "budget" {
		t.Errorf("persisted mode = %q, want budget", got)
	}
}

func TestBudgetUnknownMode(t *testing.T) {
	b, store := newTestBuilder(t, testDoc())
	out := b.Budget("turbo")
	want := `Unknown mode: "turbo". Available: budget, quality`
	if out != want {
		t.Errorf("Budget() = %q, want %q", out, want)
	}
	if st := store.Read(); st != (state.State{}) {
		t.Errorf("state file touched: %+v", st)
	}
}

func TestBudgetNoModesConfigured(t *testing.T) {
	doc := testDoc()
	doc.Modes = nil
	b, _ := newTestBuilder(t, doc)
	if out := b.Budget(""); out != "No modes configured." {
		t.Errorf("Budget() = %q", out)
	}
}

func TestReportsSurfaceLoadErrorOnlyWithoutCache(t *testing.T) {
	store := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	handle := cache.New(func() (*resolve.Effective, error) {
		return nil, errors.New("document broken")
	})
	b := NewBuilder(handle, store)
	if out := b.Tiers(); !strings.Contains(out, "Configuration error") {
		t.Errorf("Tiers() = %q", out)
	}
}
