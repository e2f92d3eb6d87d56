package resolve

import (
	"reflect"
	"testing"

	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/state"
)

func TestFallbackChainFiltersActiveAndUnknownPresets(t *testing.T) {
	// The anthropic chain lists the active preset itself plus a preset that
	// does not exist; both must be dropped.
	eff := New(testDoc(), state.State{})
	chains := FallbackChain(eff)

	want := []ProviderChain{
		{Provider: "anthropic", Presets: []string{"openai"}},
		{Provider: "openai", Presets: []string{"anthropic"}},
	}
	if !reflect.DeepEqual(chains, want) {
		t.Errorf("FallbackChain() = %+v, want %+v", chains, want)
	}
}

func TestFallbackChainOmitsEmptiedProvider(t *testing.T) {
	doc := testDoc()
	doc.Fallback = &config.FallbackConfig{
		Default: []config.ProviderFallback{
			{Provider: "anthropic", Presets: []string{"anthropic", "ghost"}},
		},
	}
	eff := New(doc, state.State{})
	if chains := FallbackChain(eff); chains != nil {
		t.Errorf("FallbackChain() = %+v, want nil", chains)
	}
}

func TestFallbackChainPerPresetOverride(t *testing.T) {
	doc := testDoc()
	doc.Fallback.Presets = map[string][]config.ProviderFallback{
		"anthropic": {
			{Provider: "anthropic", Presets: []string{"openai"}},
		},
	}
	eff := New(doc, state.State{})

	chains := FallbackChain(eff)
	want := []ProviderChain{{Provider: "anthropic", Presets: []string{"openai"}}}
	if !reflect.DeepEqual(chains, want) {
		t.Errorf("FallbackChain() = %+v, want %+v", chains, want)
	}

	// Overrides are keyed by preset: with openai active, the default map is
	// back in force.
	eff = New(doc, state.State{ActivePreset: "openai"})
	chains = FallbackChain(eff)
	want = []ProviderChain{
		{Provider: "anthropic", Presets: []string{"anthropic"}},
		{Provider: "openai", Presets: []string{"anthropic"}},
	}
	if !reflect.DeepEqual(chains, want) {
		t.Errorf("FallbackChain() with openai active = %+v, want %+v", chains, want)
	}
}

func TestFallbackChainNoConfig(t *testing.T) {
	doc := testDoc()
	doc.Fallback = nil
	eff := New(doc, state.State{})
	if chains := FallbackChain(eff); chains != nil {
		t.Errorf("FallbackChain() = %+v, want nil", chains)
	}
}

func TestFallbackChainEmptyOverrideFallsBackToDefault(t *testing.T) {
	doc := testDoc()
	doc.Fallback.Presets = map[string][]config.ProviderFallback{
		"anthropic": {},
	}
	eff := New(doc, state.State{})

	chains := FallbackChain(eff)
	want := []ProviderChain{
		{Provider: "anthropic", Presets: []string{"openai"}},
		{Provider: "openai", Presets: []string{"anthropic"}},
	}
	if !reflect.DeepEqual(chains, want) {
		t.Errorf("FallbackChain() = %+v, want %+v", chains, want)
	}
}
