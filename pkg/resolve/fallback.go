package resolve

// ProviderChain is one provider's ordered, filtered preset fallback chain.
type ProviderChain struct {
	Provider string
	Presets  []string
}

// FallbackChain derives the fallback chains for the active preset. A
// per-active-preset override map wins over the default map when present and
// non-empty. Each chain is filtered to drop the active preset itself and any
// preset the document does not configure, preserving order; providers whose
// chain filters down to nothing are omitted. Compiled fallback text therefore
// never references a nonexistent or self-referential preset.
func FallbackChain(e *Effective) []ProviderChain {
	fb := e.Doc.Fallback
	if fb == nil {
		return nil
	}

	active := e.Preset().Name
	source := fb.Default
	if override, ok := fb.Presets[active]; ok && len(override) > 0 {
		source = override
	}

	var chains []ProviderChain
	for _, pf := range source {
		var kept []string
		for _, name := range pf.Presets {
			if name == active {
				continue
			}
			if _, ok := e.Doc.Preset(name); !ok {
				continue
			}
			kept = append(kept, name)
		}
		if len(kept) == 0 {
			continue
		}
		chains = append(chains, ProviderChain{Provider: pf.Provider, Presets: kept})
	}
	return chains
}
