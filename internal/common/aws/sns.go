// internal/common/aws/sns.go
package aws

import (
	"context"

	"ticket-routing/internal/common/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSClient wraps the SNS API used for operator SMS alerts.
type SNSClient struct {
	client *sns.Client
}

// NewSNSClient builds an SNS client in the alert region from the
// notification settings.
func NewSNSClient(ctx context.Context, cfg *config.NotificationConfig) (*SNSClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	return &SNSClient{client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *SNSClient) Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	return s.client.Publish(ctx, input)
}
