package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hypnos/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective config for a variant",
	Long: `Print the config a variant would run with, after the search order
(--config, ~/.hypnos/configs/<game>.yaml, ./configs/<game>.yaml, built-in)
and validation. Use the output as a starting point for a custom config.

Examples:
  hypnos config climber
  hypnos config climber_classic --defaults > ~/.hypnos/configs/climber_classic.yaml
  hypnos config climber --config ./my-climber.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant := args[0]

	if flagDefaults {
		if data := config.GetDefaultYAML(variant); data != nil {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
	}

	cfg, err := config.LoadClimber(variant, flagConfig)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
