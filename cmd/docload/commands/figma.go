package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/pkg/fetcher"
	"github.com/jmylchreest/docload/pkg/loader/figma"
)

var figmaCmd = &cobra.Command{
	Use:   "figma",
	Short: "Load Figma nodes as a flattened text document",
	Long: `Fetch nodes of a Figma file from the REST API and flatten the JSON
response into "key: value" lines.

The access token can also be set with DOCLOAD_FIGMA_TOKEN.`,
	RunE: runFigma,
}

func init() {
	rootCmd.AddCommand(figmaCmd)

	flags := figmaCmd.Flags()
	flags.String("token", "", "Figma access token")
	flags.String("key", "", "Figma file key")
	flags.String("ids", "", "comma-separated node ids")
	flags.String("api-base", figma.DefaultAPIBase, "Figma API base URL")
	flags.Duration("timeout", fetcher.DefaultStaticConfig().Timeout, "request timeout")

	_ = viper.BindPFlag("figma_token", flags.Lookup("token"))
	_ = viper.BindPFlag("figma_key", flags.Lookup("key"))
	_ = viper.BindPFlag("figma_ids", flags.Lookup("ids"))
	_ = viper.BindPFlag("figma_api_base", flags.Lookup("api-base"))
}

func runFigma(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	token := viper.GetString("figma_token")
	key := viper.GetString("figma_key")
	ids := viper.GetString("figma_ids")
	if token == "" || key == "" || ids == "" {
		return errors.New("--token, --key and --ids are required")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	f := figma.NewFetcher(timeout)
	defer func() { _ = f.Close() }()

	l := figma.New(token, ids, key,
		figma.WithAPIBase(viper.GetString("figma_api_base")),
		figma.WithFetcher(f),
	)
	logger.Debug("loading figma nodes", "url", l.URL())

	docs, err := l.Load(ctx)
	if err != nil {
		logger.Error("figma load failed", "error", err)
		return err
	}
	return writeDocuments(cmd.OutOrStdout(), docs)
}
