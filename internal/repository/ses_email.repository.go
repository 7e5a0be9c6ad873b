package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailRepository is responsible for sending emails.
// It's a thin wrapper around AWS SES - it only sends pre-rendered HTML.
// Rendering capital call and distribution notices is handled by the notifier.
type EmailRepository interface {
	// SendEmail sends an email to the specified recipient
	// with the given subject and body (HTML or plain text)
	SendEmail(ctx context.Context, to string, subject string, body string) (string, error)
}

// sesSender is the part of the SES client the repository uses.
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type emailRepositoryHandler struct {
	sesClient sesSender
	fromEmail string
}

// NewEmailRepository creates a new email repository using AWS SES.
// region should be the AWS region (e.g., "us-east-1")
// fromEmail should be the verified sender email (e.g., "capital-calls@fund.example")
func NewEmailRepository(ctx context.Context, region, fromEmail string) (EmailRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	return &emailRepositoryHandler{
		sesClient: client,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail returns the SES message id, which can be used to track delivery
// in CloudWatch.
func (h *emailRepositoryHandler) SendEmail(ctx context.Context, to string, subject string, body string) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(h.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := h.sesClient.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send email via SES: %w", err)
	}

	return aws.ToString(result.MessageId), nil
}
