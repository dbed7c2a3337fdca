package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/easyearn/admin-console/models"
)

type EmailSender interface {
	SendEmail(ctx context.Context, input *sesv2.SendEmailInput, opts ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Mailer sends a copy of every broadcast to the operators' mailbox.
type Mailer struct {
	Client EmailSender
	From   string
	To     string
}

func NewMailer(client EmailSender, from, to string) *Mailer {
	return &Mailer{Client: client, From: from, To: to}
}

// MirrorNotification e-mails the broadcast title and message.
func (m *Mailer) MirrorNotification(ctx context.Context, n models.Notification) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.From),
		Destination: &types.Destination{
			ToAddresses: []string{m.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(fmt.Sprintf("[Broadcast] %s", n.Title)),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(n.Message),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.Client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to mirror notification: %w", err)
	}
	return nil
}
