// Package protocol renders the effective configuration into the compact
// delegation instruction string injected into the agent's context each turn.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/resolve"
)

// closing is the fixed instruction tail on every compiled protocol.
const closing = "To delegate, invoke the tier subagent by name (for example @fast) with a " +
	"self-contained task description and acceptance criteria. Keep planning, review " +
	"and integration in this session; delegate execution only."

// costAdvice is the fixed admonition appended to the cost line.
const costAdvice = "Prefer the cheapest tier that can handle the task."

// Compile renders the delegation protocol for an effective configuration. It
// is a pure function: deterministic for identical input, and it touches no
// cache or file state. Optional blocks are omitted entirely, leaving no
// residual blank lines.
func Compile(e *resolve.Effective) string {
	preset := e.Preset()

	blocks := []string{
		tierSummary(preset),
		capabilities(preset),
		taxonomy(e.Doc.TaskPatterns),
		costLine(preset),
		modeLine(e.Mode()),
		ruleBlock(e.Rules()),
		fallbackBlock(resolve.FallbackChain(e)),
		closing,
	}

	var kept []string
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// tierSummary renders `@name=model` pairs for every tier in document order,
// using the last segment of the model id and the variant tag when set.
func tierSummary(p config.Preset) string {
	entries := make([]string, 0, len(p.Tiers))
	for _, t := range p.Tiers {
		entry := "@" + t.Name + "=" + lastSegment(t.Model)
		if t.Variant != "" {
			entry += "(" + t.Variant + ")"
		}
		entries = append(entries, entry)
	}
	return "Tiers: " + strings.Join(entries, " | ")
}

func capabilities(p config.Preset) string {
	lines := make([]string, 0, len(p.Tiers))
	for _, t := range p.Tiers {
		uses := t.WhenToUse
		if len(uses) == 0 {
			uses = []string{t.Description}
		}
		lines = append(lines, "@"+t.Name+": "+strings.Join(uses, "; "))
	}
	return strings.Join(lines, "\n")
}

func taxonomy(patterns []config.TaskPattern) string {
	var lines []string
	for _, tp := range patterns {
		if len(tp.Patterns) == 0 {
			continue
		}
		lines = append(lines, "@"+tp.Tier+": "+strings.Join(tp.Patterns, "; "))
	}
	if len(lines) == 0 {
		return ""
	}
	return "Task patterns:\n" + strings.Join(lines, "\n")
}

func costLine(p config.Preset) string {
	var pairs []string
	for _, t := range p.Tiers {
		if t.CostRatio == nil {
			continue
		}
		pairs = append(pairs, "@"+t.Name+"="+formatRatio(*t.CostRatio)+"x")
	}
	if len(pairs) == 0 {
		return ""
	}
	return "Cost: " + strings.Join(pairs, " ") + ". " + costAdvice
}

func modeLine(m *config.Mode) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("Mode: %s (%s)", m.Name, m.Description)
}

func ruleBlock(rules []string) string {
	lines := make([]string, 0, len(rules)+1)
	lines = append(lines, "Rules:")
	for i, rule := range rules {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, rule))
	}
	return strings.Join(lines, "\n")
}

func fallbackBlock(chains []resolve.ProviderChain) string {
	if len(chains) == 0 {
		return ""
	}
	lines := make([]string, 0, len(chains)+1)
	lines = append(lines, "Fallback:")
	for _, c := range chains {
		lines = append(lines, fmt.Sprintf("If provider %q fails, switch preset to: %s",
			c.Provider, strings.Join(c.Presets, ", ")))
	}
	return strings.Join(lines, "\n")
}

func lastSegment(model string) string {
	if idx := strings.LastIndex(model, "/"); idx >= 0 {
		return model[idx+1:]
	}
	return model
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
