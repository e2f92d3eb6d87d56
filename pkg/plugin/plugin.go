// Package plugin is the host-facing surface: one value that owns the config
// cache and state store and exposes the lifecycle hooks the agent runtime
// calls. No hidden singletons; everything downstream receives the cache
// handle by explicit construction.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zen-systems/tiergate/pkg/agent"
	"github.com/zen-systems/tiergate/pkg/cache"
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/protocol"
	"github.com/zen-systems/tiergate/pkg/report"
	"github.com/zen-systems/tiergate/pkg/resolve"
	"github.com/zen-systems/tiergate/pkg/state"
)

// Options configures a Plugin. Zero-value fields fall back to
// ~/.tiergate/tiers.yaml and ~/.tiergate/state.json.
type Options struct {
	DocumentPath string
	StatePath    string
}

// Plugin wires the config cache, state store and report builders together.
type Plugin struct {
	docPath string
	store   *state.Store
	cache   *cache.Handle
	reports *report.Builder
}

// New creates a plugin. The document is not read here; the first
// CompileProtocol or command triggers the initial load.
func New(opts Options) (*Plugin, error) {
	if opts.DocumentPath == "" || opts.StatePath == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		if opts.DocumentPath == "" {
			opts.DocumentPath = filepath.Join(dir, "tiers.yaml")
		}
		if opts.StatePath == "" {
			opts.StatePath = filepath.Join(dir, "state.json")
		}
	}

	p := &Plugin{
		docPath: opts.DocumentPath,
		store:   state.NewStore(opts.StatePath),
	}
	p.cache = cache.New(p.loadEffective)
	p.reports = report.NewBuilder(p.cache, p.store)
	return p, nil
}

// loadEffective reads and validates the document, then overlays the persisted
// state. A missing document file falls back to the built-in default document;
// an invalid one fails so the cache can keep serving the last good config.
func (p *Plugin) loadEffective() (*resolve.Effective, error) {
	var doc *config.Document
	switch _, err := os.Stat(p.docPath); {
	case err == nil:
		doc, err = config.Load(p.docPath)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		doc = config.Default()
	default:
		// Unreadable is not the same as absent; let the cache keep the
		// last good config rather than silently swapping in the default.
		return nil, fmt.Errorf("stat tier document: %w", err)
	}
	return resolve.New(doc, p.store.Read()), nil
}

// CompileProtocol returns the delegation protocol for the current turn. With
// an invalid document and nothing cached yet, it degrades to a one-line
// error; with a previously cached config it keeps serving that.
func (p *Plugin) CompileProtocol() string {
	eff, err := p.cache.Get()
	if eff == nil {
		return fmt.Sprintf("tiergate: %v", err)
	}
	return protocol.Compile(eff)
}

// HandleCommand dispatches a user command by name. Output is surfaced to the
// user verbatim.
func (p *Plugin) HandleCommand(name, argument string) string {
	switch name {
	case "tiers":
		return p.reports.Tiers()
	case "preset":
		return p.reports.Preset(argument)
	case "budget":
		return p.reports.Budget(argument)
	}
	return fmt.Sprintf("Unknown command: %q. Available: tiers, preset, budget", name)
}

// RegisterAgents returns the delegation targets for the active preset, one
// per tier. Called once at process start.
func (p *Plugin) RegisterAgents() []agent.Definition {
	eff, _ := p.cache.Get()
	if eff == nil {
		return nil
	}
	return agent.Register(eff)
}

// Suggest proposes a tier for a task description using the configured task
// patterns, or "" when nothing matches.
func (p *Plugin) Suggest(task string) string {
	eff, _ := p.cache.Get()
	if eff == nil {
		return ""
	}
	return resolve.NewMatcher(eff).Match(task)
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tiergate"), nil
}
