package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The config is looked up in this order:
  1. --config path
  2. ~/.tile2048/config.yaml
  3. ./configs/t2048.yaml
  4. built-in defaults

Examples:
  tile2048 config
  tile2048 config --default > ~/.tile2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if !flagDefault {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
