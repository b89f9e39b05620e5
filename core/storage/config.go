package storage

// Supported storage providers.
const (
	ProviderGCS    = "gcs"
	ProviderMinio  = "minio"
	ProviderS3     = "s3"
	ProviderMemory = "memory"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the storage backend (gcs, minio, s3, memory).
	Provider string `mapstructure:"provider" default:"gcs"`
	// Project is the cloud project owning the bucket (GCS only). It is informational;
	// requests are not billed to it.
	Project string `mapstructure:"project" default:""`
	// BillingProject is billed for Requester Pays buckets (GCS only). Leave empty
	// unless the bucket requires it: the credential then needs serviceusage.services.use.
	BillingProject string `mapstructure:"billing_project" default:""`
	// Bucket is the default bucket objects are fetched from.
	Bucket string `mapstructure:"bucket" default:""`
	// Endpoint overrides the service URL (MinIO or S3-compatible services).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// CredentialsFile is a service account key file (GCS only).
	CredentialsFile string `mapstructure:"credentials_file" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
