package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/infrastructure/config"
	"hai-backend/infrastructure/messaging/sqs"
	"hai-backend/infrastructure/persistence/dynamodb"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}
	return zapCfg.Build()
}

// ProvideAWSConfig creates AWS configuration, instrumented with X-Ray
// when tracing is enabled
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}
	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideSQSClient creates an SQS client
func ProvideSQSClient(awsCfg aws.Config) *awssqs.Client {
	return awssqs.NewFromConfig(awsCfg)
}

// ProvideStore creates the single-table store
func ProvideStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Store {
	return dynamodb.NewStore(client, cfg.DynamoDBTable, cfg.IndexNames(), logger)
}

// ProvidePropertyRepository creates a property repository
func ProvidePropertyRepository(store ports.Store, cfg *config.Config, logger *zap.Logger) ports.PropertyRepository {
	return dynamodb.NewPropertyRepository(store, cfg.WireDateFormat, logger)
}

// ProvideGuestRepository creates a guest repository
func ProvideGuestRepository(store ports.Store, logger *zap.Logger) ports.GuestRepository {
	return dynamodb.NewGuestRepository(store, logger)
}

// ProvideReservationRepository creates a reservation repository
func ProvideReservationRepository(store ports.Store, cfg *config.Config, logger *zap.Logger) ports.ReservationRepository {
	return dynamodb.NewReservationRepository(store, cfg.WireDateFormat, cfg.ReservationNaturalKeys, logger)
}

// ProvideMessageRepository creates a message repository
func ProvideMessageRepository(store ports.Store, cfg *config.Config, logger *zap.Logger) ports.MessageRepository {
	return dynamodb.NewMessageRepository(store, cfg.WireDateFormat, logger)
}

// ProvideStaffRepository creates a staff repository
func ProvideStaffRepository(store ports.Store, logger *zap.Logger) ports.StaffRepository {
	return dynamodb.NewStaffRepository(store, logger)
}

// ProvideTaskRepository creates a task repository
func ProvideTaskRepository(store ports.Store, logger *zap.Logger) ports.TaskRepository {
	return dynamodb.NewTaskRepository(store, logger)
}

// ProvideEmailPublisher creates the inbound-email queue publisher
func ProvideEmailPublisher(client *awssqs.Client, cfg *config.Config, logger *zap.Logger) ports.EmailPublisher {
	return sqs.NewPublisher(client, cfg.EmailQueueURL, cfg.EmailGroupID, logger)
}
