// Package config provides configuration management for blob-loader.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Default values come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: provider, project, bucket, endpoint and credentials
//   - Log: Logging level and format
//
// Environment variables follow the nested key, e.g. STORAGE_BUCKET for storage.bucket.
// GCP_PROJECT, GCS_BUCKET and GOOGLE_APPLICATION_CREDENTIALS are accepted as aliases.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
