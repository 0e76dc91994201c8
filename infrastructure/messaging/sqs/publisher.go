// Package sqs forwards parsed inbound email to the processing queue.
package sqs

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	appErrors "hai-backend/pkg/errors"
)

// Sender abstracts SQS send operations for dependency inversion.
type Sender interface {
	SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

// Publisher implements ports.EmailPublisher on an SQS queue. With a
// non-empty groupID it targets a FIFO queue, deduplicated by content.
type Publisher struct {
	client   Sender
	queueURL string
	groupID  string
	logger   *zap.Logger
}

// NewPublisher creates a new Publisher.
func NewPublisher(client Sender, queueURL, groupID string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
		groupID:  groupID,
		logger:   logger,
	}
}

// Publish sends one parsed email to the queue as JSON.
func (p *Publisher) Publish(ctx context.Context, email ports.InboundEmail) error {
	body, err := json.Marshal(email)
	if err != nil {
		return appErrors.Wrap(err, "failed to marshal inbound email")
	}

	input := &awssqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if p.groupID != "" {
		input.MessageGroupId = aws.String(p.groupID)
	}

	if _, err := p.client.SendMessage(ctx, input); err != nil {
		p.logger.Error("Failed to publish inbound email",
			zap.String("from", email.From),
			zap.Error(err),
		)
		return appErrors.Wrap(err, "failed to publish inbound email")
	}

	p.logger.Info("Published inbound email",
		zap.String("from", email.From),
		zap.String("subject", email.Subject),
	)
	return nil
}
