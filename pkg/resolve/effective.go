package resolve

import (
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/state"
)

// Effective is the state-overlaid view of a tier document: the document plus
// the resolved active preset and mode names. The document itself is never
// mutated; overrides live only here and in the state file.
type Effective struct {
	Doc *config.Document

	// ActivePreset may name a preset that no longer exists in the document;
	// Preset() degrades to the first preset in that case.
	ActivePreset string

	// ActiveMode is empty when no mode is active.
	ActiveMode string
}

// New applies override precedence: a persisted preset or mode name that
// resolves against the document wins over the document's own activePreset;
// there is no document-level default mode.
func New(doc *config.Document, st state.State) *Effective {
	eff := &Effective{Doc: doc, ActivePreset: doc.ActivePreset}

	if name, ok := Resolve(doc.PresetNames(), st.ActivePreset); ok {
		eff.ActivePreset = name
	}
	if name, ok := Resolve(doc.ModeNames(), st.ActiveMode); ok {
		eff.ActiveMode = name
	}
	return eff
}

// Preset returns the active preset. An active-preset name that does not exist
// in the document degrades silently to the first preset in document order;
// misconfigured documents keep working rather than erroring on every turn.
func (e *Effective) Preset() config.Preset {
	if p, ok := e.Doc.Preset(e.ActivePreset); ok {
		return p
	}
	p, _ := e.Doc.FirstPreset()
	return p
}

// Mode returns the active mode, or nil when none is active.
func (e *Effective) Mode() *config.Mode {
	if e.ActiveMode == "" {
		return nil
	}
	if m, ok := e.Doc.Mode(e.ActiveMode); ok {
		return &m
	}
	return nil
}

// Rules returns the rule list in force: a mode's non-empty override list
// replaces the global rules wholesale, never merges with them.
func (e *Effective) Rules() []string {
	if m := e.Mode(); m != nil && len(m.OverrideRules) > 0 {
		return m.OverrideRules
	}
	return e.Doc.Rules
}

// DefaultTier returns the default tier in force: the active mode's, when one
// is active, otherwise the document's.
func (e *Effective) DefaultTier() string {
	if m := e.Mode(); m != nil && m.DefaultTier != "" {
		return m.DefaultTier
	}
	return e.Doc.DefaultTier
}
