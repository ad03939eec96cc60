package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after searching
--config, ~/.skydive/config.yaml, ~/.skydive/config.toml and
./configs/skydive.yaml. Redirect the output to start a config file.

Examples:
  skydive config > ~/.skydive/config.yaml
  skydive config --format toml > ~/.skydive/config.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadSkydive(flagConfig)
	if err != nil {
		return err
	}
	return printConfig(os.Stdout, cfg, source, flagFormat)
}

func printConfig(w io.Writer, cfg config.SkydiveConfig, source, format string) error {
	out, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(out)
	return err
}
