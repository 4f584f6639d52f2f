// Package notify alerts compliance owners when an analysis lands in a high
// or critical risk tier. Delivery is best effort and never blocks the
// workflow.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	"grc-docengine/internal/common/config"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
)

// Interfaces for mocking the AWS clients in tests.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// RiskNotifier publishes risk alerts over SNS and optionally SES email.
type RiskNotifier struct {
	cfg       config.NotificationConfig
	sesClient SESService
	snsClient SNSService
	logger    logger.Logger
}

func New(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*RiskNotifier, error) {
	if !cfg.Enabled {
		return &RiskNotifier{cfg: cfg, logger: log}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &RiskNotifier{
		cfg:       cfg,
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
		logger:    log.With(map[string]interface{}{"component": "risk-notifier"}),
	}, nil
}

// NewWithClients injects mock clients for tests.
func NewWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *RiskNotifier {
	return &RiskNotifier{
		cfg:       cfg,
		sesClient: sesClient,
		snsClient: snsClient,
		logger:    log.With(map[string]interface{}{"component": "risk-notifier"}),
	}
}

// ShouldNotify reports whether a risk tier warrants an alert.
func ShouldNotify(risk analysis.RiskLevel) bool {
	return risk == analysis.RiskHigh || risk == analysis.RiskCritical
}

// NotifyRisk sends the alert for one analyzed document. Errors are returned
// for logging; the workflow never propagates them.
func (n *RiskNotifier) NotifyRisk(ctx context.Context, documentName string, moduleType catalog.ModuleType, result *analysis.Result) error {
	if n == nil || !n.cfg.Enabled || result == nil || !ShouldNotify(result.RiskLevel) {
		return nil
	}

	subject := fmt.Sprintf("[GRC] %s risk: %s", result.RiskLevel, documentName)
	message := fmt.Sprintf(
		"Document %q (%s) scored %d/100 with risk level %s.\n%d deficiencies were identified.\n\n%s",
		documentName, moduleType, result.Score, result.RiskLevel,
		len(result.Deficiencies), result.Summary,
	)

	if n.snsClient != nil && n.cfg.SNSTopicARN != "" {
		_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
			TopicArn: aws.String(n.cfg.SNSTopicARN),
			Subject:  aws.String(subject),
			Message:  aws.String(message),
		})
		if err != nil {
			n.logger.Error("sns publish failed", map[string]interface{}{
				"documentName": documentName,
				"error":        err.Error(),
			})
			return commonerrors.NewNotificationSendFailedError("sns", err)
		}
	}

	if n.sesClient != nil && n.cfg.EmailTo != "" {
		_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Source: aws.String(n.cfg.EmailFrom),
			Destination: &sestypes.Destination{
				ToAddresses: []string{n.cfg.EmailTo},
			},
			Message: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(message)},
				},
			},
		})
		if err != nil {
			n.logger.Error("ses send failed", map[string]interface{}{
				"documentName": documentName,
				"error":        err.Error(),
			})
			return commonerrors.NewNotificationSendFailedError("ses", err)
		}
	}

	return nil
}
