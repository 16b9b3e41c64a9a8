package commands

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/pkg/fetcher"
	"github.com/jmylchreest/docload/pkg/loader/web"
	"github.com/jmylchreest/docload/pkg/partition"
)

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Load web pages as partitioned text documents",
	Long: `Fetch each URL, partition the page into elements and join their
text into one document per URL.

Failed URLs are logged and skipped unless --fail-fast is set. Headers and
partition options can also come from the "headers" and "partition_options"
maps of the config file; flags win on conflicts.

Examples:
  docload urls -u https://example.com --option cleaner=readability
  docload urls -u https://example.com --option skip_headers_footers=true \
      --max-body-size 2MB --format jsonl`,
	RunE: runURLs,
}

func init() {
	rootCmd.AddCommand(urlsCmd)

	flags := urlsCmd.Flags()
	flags.StringSliceP("url", "u", nil, "URL(s) to load (can be repeated)")
	flags.StringToString("header", nil, "request header as KEY=VALUE (can be repeated)")
	flags.StringToString("option", nil, "partition option as KEY=VALUE (can be repeated)")
	flags.Bool("fail-fast", false, "stop at the first URL that fails")
	flags.String("partitioner", partition.DefaultName, "registered partitioner name")
	flags.String("fetch-mode", "static", "fetch mode for the html partitioner: static, dynamic, auto")
	flags.String("max-body-size", "10MB", "max response size for static fetches (0=unlimited)")
	flags.Duration("timeout", 30*time.Second, "request timeout")

	_ = viper.BindPFlag("fail_fast", flags.Lookup("fail-fast"))
	_ = viper.BindPFlag("partitioner", flags.Lookup("partitioner"))
	_ = viper.BindPFlag("fetch_mode", flags.Lookup("fetch-mode"))
	_ = viper.BindPFlag("max_body_size", flags.Lookup("max-body-size"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
}

func runURLs(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	urls, _ := cmd.Flags().GetStringSlice("url")
	urls = append(urls, args...)
	if len(urls) == 0 {
		return errors.New("at least one --url is required")
	}

	flagHeaders, _ := cmd.Flags().GetStringToString("header")
	headers := mergeHeaders(viper.GetStringMapString("headers"), flagHeaders)

	flagOptions, _ := cmd.Flags().GetStringToString("option")
	options := mergeOptions(viper.GetStringMap("partition_options"), flagOptions)

	opts := []web.Option{
		web.WithContinueOnFailure(!viper.GetBool("fail_fast")),
		web.WithHeaders(headers),
		web.WithPartitionOptions(options),
	}

	name := viper.GetString("partitioner")
	if name == partition.DefaultName {
		f, err := newFetcher(viper.GetString("fetch_mode"), viper.GetString("max_body_size"), viper.GetDuration("timeout"))
		if err != nil {
			return err
		}
		p := partition.NewHTML(partition.Config{Fetcher: f})
		defer func() { _ = p.Close() }()
		opts = append(opts, web.WithPartitioner(p))
	} else {
		opts = append(opts, web.WithPartitionerName(name))
	}

	l, err := web.New(urls, opts...)
	if err != nil {
		logger.Error("failed to create url loader", "error", err)
		return err
	}

	logger.Info("loading urls", "count", len(urls), "partitioner", name)
	docs, err := l.Load(ctx)
	if err != nil {
		logger.Error("url load failed", "error", err)
		return err
	}
	logger.Info("load complete", "documents", len(docs), "skipped", len(urls)-len(docs))

	return writeDocuments(cmd.OutOrStdout(), docs)
}

// newFetcher builds the fetcher used by the built-in html partitioner.
func newFetcher(mode, maxBodySize string, timeout time.Duration) (fetcher.Fetcher, error) {
	switch mode {
	case "static", "":
		size, err := parseBodySize(maxBodySize)
		if err != nil {
			return nil, err
		}
		return fetcher.NewStatic(fetcher.StaticConfig{Timeout: timeout, MaxBodySize: size}), nil
	case "dynamic":
		return fetcher.NewDynamic(fetcher.DynamicConfig{Timeout: timeout}), nil
	case "auto":
		static, err := newFetcher("static", maxBodySize, timeout)
		if err != nil {
			return nil, err
		}
		return fetcher.NewAuto(static, fetcher.NewDynamic(fetcher.DynamicConfig{Timeout: timeout})), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s (use 'static', 'dynamic' or 'auto')", mode)
	}
}

// parseBodySize parses a human readable size. Zero means unlimited, which
// the static fetcher expresses as a negative size.
func parseBodySize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid max-body-size %q: %w", s, err)
	}
	if n == 0 {
		return -1, nil
	}
	return int(n), nil
}

func mergeHeaders(base, override map[string]string) map[string]string {
	headers := make(map[string]string, len(base)+len(override))
	maps.Copy(headers, base)
	maps.Copy(headers, override)
	return headers
}

func mergeOptions(base map[string]any, override map[string]string) partition.Options {
	options := make(partition.Options, len(base)+len(override))
	maps.Copy(options, base)
	for k, v := range override {
		options[k] = v
	}
	return options
}
