package config

import "testing"

func TestAliasResolve(t *testing.T) {
	aliases := ModelAliases{"sonnet": "anthropic/claude-sonnet-4-20250514"}

	if got := aliases.Resolve("sonnet"); got != "anthropic/claude-sonnet-4-20250514" {
		t.Errorf("Resolve(sonnet) = %q", got)
	}
	if got := aliases.Resolve("not-an-alias"); got != "not-an-alias" {
		t.Errorf("Resolve passthrough = %q", got)
	}
	if !aliases.IsAlias("sonnet") || aliases.IsAlias("nope") {
		t.Error("IsAlias wrong")
	}
}

func TestAliasResolveNilMap(t *testing.T) {
	var aliases ModelAliases
	if got := aliases.Resolve("anything"); got != "anything" {
		t.Errorf("nil Resolve = %q", got)
	}
}
