// internal/notify/notifier.go

// Package notify alerts operators about decisions flagged for manual review.
// Delivery problems are logged and swallowed, a lost alert must never fail
// the decision that triggered it.
package notify

import (
	"context"
	"fmt"

	"ticket-routing/internal/common/config"
	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	commonerrors "ticket-routing/internal/common/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// EmailSender is the SES surface the notifier needs.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender is the SNS surface the notifier needs.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Notifier struct {
	config *config.NotificationConfig
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

// NewNotifier builds a notifier. email and sms may be nil when the matching
// channel is disabled.
func NewNotifier(cfg *config.NotificationConfig, email EmailSender, sms SMSSender, log logger.Logger) *Notifier {
	return &Notifier{
		config: cfg,
		email:  email,
		sms:    sms,
		logger: log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// ReviewAlert notifies operators about a decision that needs manual review.
// Decisions without the review flag are ignored.
func (n *Notifier) ReviewAlert(ctx context.Context, decision *models.FinalDecision) {
	if decision == nil || !decision.RequiresManualReview {
		return
	}

	if n.config.Email.Enabled && n.email != nil {
		n.sendEmail(ctx, decision)
	}
	if n.config.SMS.Enabled && n.sms != nil {
		n.sendSMS(ctx, decision)
	}
}

func (n *Notifier) sendEmail(ctx context.Context, decision *models.FinalDecision) {
	subject := fmt.Sprintf("Manual review required: ticket %s", decision.TicketID)
	body := fmt.Sprintf(
		"Ticket %s (customer %s) was routed to %s with priority %s and confidence %.0f%%.\n\nReasoning: %s\n\nDecision ID: %s",
		decision.TicketID, decision.CustomerID, decision.AssignedTeam,
		decision.PriorityLevel, decision.ConfidenceScore, decision.Reasoning, decision.DecisionID,
	)

	_, err := n.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.config.Email.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.config.Email.OperatorEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		n.logger.WithError(commonerrors.NewNotificationSendFailedError("email", err)).Error("review alert email failed", map[string]interface{}{
			"ticketId": decision.TicketID,
		})
		return
	}

	n.logger.Info("review alert email sent", map[string]interface{}{
		"ticketId":  decision.TicketID,
		"recipient": n.config.Email.OperatorEmail,
	})
}

func (n *Notifier) sendSMS(ctx context.Context, decision *models.FinalDecision) {
	message := fmt.Sprintf("Manual review: ticket %s -> %s (%s, %.0f%% confidence)",
		decision.TicketID, decision.AssignedTeam, decision.PriorityLevel, decision.ConfidenceScore)

	_, err := n.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.config.SMS.OperatorPhone),
		Message:     aws.String(message),
	})
	if err != nil {
		n.logger.WithError(commonerrors.NewNotificationSendFailedError("sms", err)).Error("review alert SMS failed", map[string]interface{}{
			"ticketId": decision.TicketID,
		})
		return
	}

	n.logger.Info("review alert SMS sent", map[string]interface{}{
		"ticketId": decision.TicketID,
	})
}
