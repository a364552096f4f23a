package s3store

import "time"

// Config describes the bucket snapshots are written to.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`                // S3-compatible services such as MinIO
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"`        // required by most S3-compatible services
	Prefix         string        `env:"S3_PREFIX" envDefault:"forms/"`
	ContentType    string        `env:"S3_CONTENT_TYPE" envDefault:"application/json"`
	Timeout        time.Duration `env:"S3_TIMEOUT" envDefault:"10s"` // per request, 0 disables
}
