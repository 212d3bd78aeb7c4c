package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after config files, the difficulty
preset and --db have been applied. The output can be saved as
~/.t2048/config.yaml and edited.

Config files are searched in this order:
  1. --config <path>
  2. ~/.t2048/config.yaml
  3. configs/t2048.yaml
  4. built-in defaults

Examples:
  t2048 config
  t2048 config --difficulty easy > ~/.t2048/config.yaml
  t2048 config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := mustLoadConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
