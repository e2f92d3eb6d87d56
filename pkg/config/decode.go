package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes the tier document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Decode(data)
}

// Decode parses and validates a tier document. YAML is a superset of JSON, so
// both serializations are accepted. Validation is structural only: it checks
// required shapes and types, not that name references (activePreset,
// defaultTier) resolve; unresolved names degrade at use time instead.
//
// The document is decoded through yaml.Node rather than struct tags so that
// mapping key order survives (presets and tiers display in document order) and
// so the first offending field can be reported by path.
func Decode(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errAt("", err.Error())
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errAt("", "document is empty")
	}
	return buildDocument(root.Content[0])
}

func buildDocument(n *yaml.Node) (*Document, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errAt("", "document root must be an object")
	}

	doc := &Document{}

	active, ok := stringEntry(n, "activePreset")
	if !ok || active == "" {
		return nil, errAt("activePreset", "must be a non-empty string")
	}
	doc.ActivePreset = active

	presetsNode := entry(n, "presets")
	if presetsNode == nil || presetsNode.Kind != yaml.MappingNode {
		return nil, errAt("presets", "must be an object")
	}
	for key, val := range mapping(presetsNode) {
		preset, err := buildPreset(key, val)
		if err != nil {
			return nil, err
		}
		doc.Presets = append(doc.Presets, preset)
	}

	rulesNode := entry(n, "rules")
	if rulesNode == nil || rulesNode.Kind != yaml.SequenceNode {
		return nil, errAt("rules", "must be an array")
	}
	doc.Rules = scalarStrings(rulesNode)

	tier, ok := stringEntry(n, "defaultTier")
	if !ok {
		return nil, errAt("defaultTier", "must be a string")
	}
	doc.DefaultTier = tier

	if modesNode := entry(n, "modes"); modesNode != nil {
		if modesNode.Kind != yaml.MappingNode {
			return nil, errAt("modes", "must be an object")
		}
		for key, val := range mapping(modesNode) {
			mode, err := buildMode(key, val)
			if err != nil {
				return nil, err
			}
			doc.Modes = append(doc.Modes, mode)
		}
	}

	if patternsNode := entry(n, "taskPatterns"); patternsNode != nil {
		if patternsNode.Kind != yaml.MappingNode {
			return nil, errAt("taskPatterns", "must be an object")
		}
		for key, val := range mapping(patternsNode) {
			if val.Kind != yaml.SequenceNode {
				return nil, errAt("taskPatterns."+key, "must be an array")
			}
			doc.TaskPatterns = append(doc.TaskPatterns, TaskPattern{
				Tier:     key,
				Patterns: scalarStrings(val),
			})
		}
	}

	// Optional sections below are parsed tolerantly: malformed entries are
	// dropped rather than failing the whole document.
	doc.Fallback = buildFallback(entry(n, "fallback"))
	doc.Aliases = buildAliases(entry(n, "aliases"))

	return doc, nil
}

func buildPreset(name string, n *yaml.Node) (Preset, error) {
	path := "presets." + name
	if n.Kind != yaml.MappingNode {
		return Preset{}, errAt(path, "must be an object")
	}
	preset := Preset{Name: name}
	for key, val := range mapping(n) {
		tier, err := buildTier(path+"."+key, key, val)
		if err != nil {
			return Preset{}, err
		}
		preset.Tiers = append(preset.Tiers, tier)
	}
	return preset, nil
}

func buildTier(path, name string, n *yaml.Node) (Tier, error) {
	if n.Kind != yaml.MappingNode {
		return Tier{}, errAt(path, "must be an object")
	}
	model, ok := stringEntry(n, "model")
	if !ok || model == "" {
		return Tier{}, errAt(path+".model", "must be a non-empty string")
	}
	desc, ok := stringEntry(n, "description")
	if !ok {
		return Tier{}, errAt(path+".description", "must be a string")
	}
	whenNode := entry(n, "whenToUse")
	if whenNode == nil || whenNode.Kind != yaml.SequenceNode {
		return Tier{}, errAt(path+".whenToUse", "must be an array")
	}

	tier := Tier{
		Name:        name,
		Model:       model,
		Description: desc,
		WhenToUse:   scalarStrings(whenNode),
	}
	tier.Variant, _ = stringEntry(n, "variant")
	tier.Prompt, _ = stringEntry(n, "prompt")
	if steps, ok := intEntry(n, "maxSteps"); ok {
		tier.MaxSteps = steps
	}
	if ratio, ok := floatEntry(n, "costRatio"); ok {
		tier.CostRatio = &ratio
	}

	// thinking and reasoning are mutually exclusive; thinking wins when an
	// author supplies both.
	if thinkingNode := entry(n, "thinking"); thinkingNode != nil && thinkingNode.Kind == yaml.MappingNode {
		opts := &ThinkingOptions{}
		opts.Type, _ = stringEntry(thinkingNode, "type")
		opts.BudgetTokens, _ = intEntry(thinkingNode, "budgetTokens")
		tier.Thinking = opts
	} else if reasoningNode := entry(n, "reasoning"); reasoningNode != nil && reasoningNode.Kind == yaml.MappingNode {
		opts := &ReasoningOptions{}
		opts.Effort, _ = stringEntry(reasoningNode, "effort")
		tier.Reasoning = opts
	}

	return tier, nil
}

func buildMode(name string, n *yaml.Node) (Mode, error) {
	path := "modes." + name
	if n.Kind != yaml.MappingNode {
		return Mode{}, errAt(path, "must be an object")
	}
	tier, ok := stringEntry(n, "defaultTier")
	if !ok {
		return Mode{}, errAt(path+".defaultTier", "must be a string")
	}
	desc, ok := stringEntry(n, "description")
	if !ok {
		return Mode{}, errAt(path+".description", "must be a string")
	}
	mode := Mode{Name: name, DefaultTier: tier, Description: desc}
	if rules := entry(n, "overrideRules"); rules != nil && rules.Kind == yaml.SequenceNode {
		mode.OverrideRules = scalarStrings(rules)
	}
	return mode, nil
}

func buildFallback(n *yaml.Node) *FallbackConfig {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	cfg := &FallbackConfig{}
	defaultNode := entry(n, "default")
	presetsNode := entry(n, "perPreset")
	if defaultNode == nil && presetsNode == nil {
		// Flat shape: the fallback object itself maps providers to chains.
		cfg.Default = providerChains(n)
	} else {
		cfg.Default = providerChains(defaultNode)
		if presetsNode != nil && presetsNode.Kind == yaml.MappingNode {
			cfg.Presets = make(map[string][]ProviderFallback)
			for key, val := range mapping(presetsNode) {
				cfg.Presets[key] = providerChains(val)
			}
		}
	}
	if len(cfg.Default) == 0 && len(cfg.Presets) == 0 {
		return nil
	}
	return cfg
}

func providerChains(n *yaml.Node) []ProviderFallback {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	var chains []ProviderFallback
	for key, val := range mapping(n) {
		if val.Kind != yaml.SequenceNode {
			continue
		}
		chains = append(chains, ProviderFallback{Provider: key, Presets: scalarStrings(val)})
	}
	return chains
}

func buildAliases(n *yaml.Node) ModelAliases {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	aliases := make(ModelAliases)
	for key, val := range mapping(n) {
		if s, ok := scalarString(val); ok {
			aliases[key] = s
		}
	}
	if len(aliases) == 0 {
		return nil
	}
	return aliases
}

// mapping iterates a mapping node's entries in document order.
func mapping(n *yaml.Node) func(yield func(string, *yaml.Node) bool) {
	return func(yield func(string, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i].Value, n.Content[i+1]) {
				return
			}
		}
	}
}

// entry returns the value node for a mapping key, or nil.
func entry(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func scalarString(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	if n.Tag != "!!str" {
		return "", false
	}
	return n.Value, true
}

func stringEntry(n *yaml.Node, key string) (string, bool) {
	val := entry(n, key)
	if val == nil {
		return "", false
	}
	return scalarString(val)
}

func intEntry(n *yaml.Node, key string) (int, bool) {
	val := entry(n, key)
	if val == nil || val.Kind != yaml.ScalarNode || val.Tag != "!!int" {
		return 0, false
	}
	i, err := strconv.Atoi(val.Value)
	if err != nil {
		return 0, false
	}
	return i, true
}

func floatEntry(n *yaml.Node, key string) (float64, bool) {
	val := entry(n, key)
	if val == nil || val.Kind != yaml.ScalarNode {
		return 0, false
	}
	if val.Tag != "!!int" && val.Tag != "!!float" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func scalarStrings(n *yaml.Node) []string {
	var out []string
	for _, item := range n.Content {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		}
	}
	return out
}
