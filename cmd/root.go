package cmd

import (
	"errors"
	"fmt"
	"os"

	"blob-loader/core/logger"
	"blob-loader/feature/fetch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blob-loader",
	Short: "Load objects from cloud storage as text",
	Long: `blob-loader reads objects from Google Cloud Storage, S3 or MinIO buckets and
returns their content as UTF-8 text, either on the command line or over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Fetch failures were already logged with their remediation hint.
		var fe *fetch.Error
		if !errors.As(err, &fe) {
			cfg := &logger.Config{
				Level:  "debug",
				Format: "console",
			}

			l, logErr := logger.New(cfg)
			if logErr == nil {
				l.Error("command failed", zap.Error(err))
				_ = l.Sync()
			} else {
				fmt.Println(err)
			}
		}
		os.Exit(1)
	}
}
