package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	"blob-loader/core/config"
	"blob-loader/core/logger"
	"blob-loader/core/storage"
	"blob-loader/feature/fetch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/blake3"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <key> [key...]",
	Short: "Print objects from a bucket as text",
	Long: `Fetches each object key from the bucket (storage.bucket unless --bucket is given)
and writes its text to stdout in argument order. Keys are fetched independently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bucket, _ := cmd.Flags().GetString("bucket")
		digest, _ := cmd.Flags().GetBool("digest")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		if bucket == "" {
			bucket = cfg.Storage.Bucket
		}

		client, err := storage.NewClient(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		defer storage.Close(client)

		svc := fetch.NewService(client, bucket, logg)
		texts, err := fetchAll(ctx, svc, args, concurrency)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, text := range texts {
			if digest {
				logg.Info("Object digest",
					zap.String("bucket", bucket),
					zap.String("key", args[i]),
					zap.String("blake3", digestHex(text)),
				)
			}
			fmt.Fprint(out, text)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("bucket", "", "Bucket to read from (defaults to storage.bucket)")
	fetchCmd.Flags().Bool("digest", false, "Log a BLAKE3 digest of each object")
	fetchCmd.Flags().Int("concurrency", 4, "Maximum number of objects fetched at once")
}

// fetchAll fetches keys with at most limit calls in flight. Calls do not share a
// context, so one failure does not cancel the others.
func fetchAll(ctx context.Context, svc *fetch.Service, keys []string, limit int) ([]string, error) {
	texts := make([]string, len(keys))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, key := range keys {
		g.Go(func() error {
			text, err := svc.Fetch(ctx, key)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

func digestHex(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
