package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"hai-backend/infrastructure/config"
	"hai-backend/infrastructure/di"
	"hai-backend/infrastructure/email"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var container *di.Container

func init() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler processes S3 object-created events for inbound emails. Every
// record is attempted; the batch fails if any record failed.
func Handler(ctx context.Context, event events.S3Event) error {
	var firstErr error
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key

		if expected := container.Config.EmailBucket; expected != "" && bucket != expected {
			container.Logger.Warn("Skipping object from unexpected bucket",
				zap.String("bucket", bucket),
				zap.String("key", key),
			)
			continue
		}

		if err := processObject(ctx, bucket, key); err != nil {
			container.Logger.Error("Failed to process inbound email",
				zap.String("bucket", bucket),
				zap.String("key", key),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		container.Logger.Info("Inbound email published",
			zap.String("bucket", bucket),
			zap.String("key", key),
		)
	}
	return firstErr
}

func processObject(ctx context.Context, bucket, key string) error {
	out, err := container.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return fmt.Errorf("read object: %w", err)
	}

	inbound, err := email.Parse(data)
	if err != nil {
		return fmt.Errorf("parse email: %w", err)
	}

	if err := container.EmailPublisher.Publish(ctx, inbound); err != nil {
		return fmt.Errorf("publish email: %w", err)
	}
	return nil
}

func main() {
	lambda.Start(Handler)
}
