package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

// GetS3Config is only consulted when AUDIO_BUCKET_NAME is set; without it the
// service keeps artifacts in memory.
func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("AUDIO_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("AUDIO_BUCKET_NAME must be set")
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION must be set")
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
