package resolve

import (
	"testing"

	"github.com/zen-systems/tiergate/pkg/state"
)

func TestMatcher(t *testing.T) {
	m := NewMatcher(New(testDoc(), state.State{}))

	tests := []struct {
		name string
		task string
		want string
	}{
		{name: "task pattern match", task: "please fix typo in README", want: "fast"},
		{name: "whenToUse phrase match", task: "features for the billing page", want: "medium"},
		{name: "multi-word pattern", task: "run a design review on this API", want: "heavy"},
		{name: "case insensitive", task: "RACE CONDITION in the worker pool", want: "heavy"},
		{name: "partial word does not match", task: "renamespace the package", want: ""},
		{name: "no match", task: "hello there", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.task); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.task, got, tt.want)
			}
		})
	}
}

func TestMatcherLongerTriggerWins(t *testing.T) {
	m := NewMatcher(New(testDoc(), state.State{}))

	// "design review" (heavy) must beat the shorter "renames" style triggers
	// even when both could apply to the same task.
	if got := m.Match("design review of the renames"); got != "heavy" {
		t.Errorf("Match() = %q, want heavy", got)
	}
}
