package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/plugin"
)

var (
	documentFile string
	stateFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tiergate",
		Short: "Delegation-tier router for coding agents",
		Long: `Tiergate resolves a layered model-tier configuration (presets, modes,
	persisted overrides) into one effective configuration and compiles it into
	the compact delegation protocol injected into an agent's context each turn.`,
	}

	rootCmd.PersistentFlags().StringVar(&documentFile, "config", "", "path to the tier document")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state", "", "path to the override state file")

	rootCmd.AddCommand(protocolCmd())
	rootCmd.AddCommand(tiersCmd())
	rootCmd.AddCommand(presetCmd())
	rootCmd.AddCommand(budgetCmd())
	rootCmd.AddCommand(agentsCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPlugin() (*plugin.Plugin, error) {
	p, err := plugin.New(plugin.Options{
		DocumentPath: documentFile,
		StatePath:    stateFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return p, nil
}

func protocolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocol",
		Short: "Print the compiled delegation protocol",
		Long:  "Prints the protocol string the host injects into the agent's context each turn.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			fmt.Println(p.CompileProtocol())
			return nil
		},
	}
}

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the active preset's tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			fmt.Println(p.HandleCommand("tiers", ""))
			return nil
		},
	}
}

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [name]",
		Short: "List presets or switch the active one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			fmt.Println(p.HandleCommand("preset", arg))
			return nil
		},
	}
}

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget [mode]",
		Short: "List routing modes or switch the active one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			fmt.Println(p.HandleCommand("budget", arg))
			return nil
		},
	}
}

func agentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Print the delegation targets the host registers at start",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(p.RegisterAgents(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [task]",
		Short: "Suggest a tier for a task description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlugin()
			if err != nil {
				return err
			}
			tier := p.Suggest(args[0])
			if tier == "" {
				fmt.Println("No tier matched; default tier applies.")
				return nil
			}
			fmt.Printf("@%s\n", tier)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [document]",
		Short: "Validate a tier document",
		Long:  "Validates a tier document without loading it, reporting the first offending field.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Document is valid: %d presets, %d modes.\n", len(doc.Presets), len(doc.Modes))
			return nil
		},
	}
}
