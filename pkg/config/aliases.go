package config

// ModelAliases maps model shorthands used in tier documents to the canonical
// model identifiers handed to the agent runtime.
type ModelAliases map[string]string

// Resolve returns the canonical model id for an alias. Input that is not a
// known alias is returned unchanged.
func (a ModelAliases) Resolve(modelOrAlias string) string {
	if a == nil {
		return modelOrAlias
	}
	if canonical, ok := a[modelOrAlias]; ok {
		return canonical
	}
	return modelOrAlias
}

// IsAlias reports whether name is a configured alias.
func (a ModelAliases) IsAlias(name string) bool {
	_, ok := a[name]
	return ok
}
