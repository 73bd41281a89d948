// internal/common/aws/ses.go
package aws

import (
	"context"

	"ticket-routing/internal/common/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient wraps the SES API used for operator email alerts.
type SESClient struct {
	client *ses.Client
}

// NewSESClient builds an SES client in the alert region from the
// notification settings.
func NewSESClient(ctx context.Context, cfg *config.NotificationConfig) (*SESClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	return &SESClient{client: ses.NewFromConfig(awsCfg)}, nil
}

func (s *SESClient) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}
