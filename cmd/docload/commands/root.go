// Package commands implements the CLI commands for docload.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/internal/output"
	"github.com/jmylchreest/docload/pkg/document"
)

var rootCmd = &cobra.Command{
	Use:   "docload",
	Short: "Load Figma files and web pages as text documents",
	Long: `Docload turns external sources into text documents with source metadata.

Examples:
  # Flatten Figma nodes into text
  docload figma --key K123 --ids 1,2 --token $FIGMA_TOKEN

  # Partition web pages, skipping the ones that fail
  docload urls -u https://example.com -u https://example.org

  # Send headers and render with a headless browser
  docload urls -u https://example.com --header Cookie=session=abc \
      --fetch-mode dynamic --format yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("log_json"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.docload.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.StringP("output", "o", "", "output file (default: stdout)")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".docload")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DOCLOAD")
	viper.AutomaticEnv()

	// A missing config file is fine.
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// writeDocuments writes docs to --output (or w) in --format.
func writeDocuments(w io.Writer, docs []document.Document) error {
	if path := viper.GetString("output"); path != "" {
		f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	format := viper.GetString("format")
	writer, err := output.NewWriter(w, output.Format(format))
	if err != nil {
		return err
	}
	return output.WriteAll(writer, docs)
}
