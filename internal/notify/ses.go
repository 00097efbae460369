package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends plain text email through Amazon SES.
type SESMailer struct {
	client sesAPI
}

func NewSESMailer(ctx context.Context, region string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, e Email) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{e.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(e.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(e.Body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
		Source: aws.String(e.From),
	}
	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %s: %w", e.To, err)
	}
	return nil
}
