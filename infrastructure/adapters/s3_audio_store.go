package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/config"
	"github.com/viveknaskar/ConfessBot/domain"
)

type s3AudioStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

// NewS3AudioStore uploads artifacts to S3 so playback and download can fetch
// them from a public URL instead of this process.
func NewS3AudioStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.AudioStorePort {
	return &s3AudioStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3AudioStore) Save(ctx context.Context, artifact *domain.AudioArtifact) (string, error) {
	key := "audio/" + artifact.ID

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(artifact.Data),
		ContentType:   aws.String(artifact.MimeType),
		ContentLength: aws.Int64(int64(len(artifact.Data))),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload audio artifact to S3", map[string]interface{}{
			"bucket":      s.s3Config.BucketName,
			"artifact_id": artifact.ID,
		})
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	s.logger.DebugWithFields("Uploaded audio artifact to S3", map[string]interface{}{
		"url": url,
	})

	return url, nil
}
