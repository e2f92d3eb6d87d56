package resolve

import (
	"sort"
	"strings"
)

// Matcher suggests a delegation tier for a task description by matching the
// configured task patterns and per-tier usage phrases against it.
type Matcher struct {
	rules []compiledRule
}

type compiledRule struct {
	tier    string
	trigger string
}

// NewMatcher compiles a matcher from the effective configuration. Task
// patterns and the active preset's whenToUse phrases both contribute
// triggers; longer triggers are tried first for specificity.
func NewMatcher(e *Effective) *Matcher {
	m := &Matcher{}

	for _, tp := range e.Doc.TaskPatterns {
		for _, pattern := range tp.Patterns {
			m.add(tp.Tier, pattern)
		}
	}
	for _, tier := range e.Preset().Tiers {
		for _, phrase := range tier.WhenToUse {
			m.add(tier.Name, phrase)
		}
	}

	sort.SliceStable(m.rules, func(i, j int) bool {
		return len(m.rules[i].trigger) > len(m.rules[j].trigger)
	})
	return m
}

func (m *Matcher) add(tier, trigger string) {
	trigger = strings.ToLower(strings.TrimSpace(trigger))
	if trigger == "" {
		return
	}
	m.rules = append(m.rules, compiledRule{tier: tier, trigger: trigger})
}

// Match returns the tier whose trigger best matches the task description, or
// "" when nothing matches.
func (m *Matcher) Match(task string) string {
	taskLower := strings.ToLower(task)
	for _, rule := range m.rules {
		if containsTrigger(taskLower, rule.trigger) {
			return rule.tier
		}
	}
	return ""
}

// containsTrigger checks for the trigger as a word or phrase boundary match.
func containsTrigger(task, trigger string) bool {
	idx := strings.Index(task, trigger)
	if idx == -1 {
		return false
	}
	if idx > 0 && isWordChar(task[idx-1]) {
		return false
	}
	if end := idx + len(trigger); end < len(task) && isWordChar(task[end]) {
		return false
	}
	return true
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
