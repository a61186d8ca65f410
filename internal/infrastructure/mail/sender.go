package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/infrastructure/config"
)

// SMTPSender delivers emails over SMTP using go-mail
type SMTPSender struct {
	config *config.MailConfig
	logger *zap.Logger
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg *config.MailConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		config: cfg,
		logger: logger,
	}
}

// Send delivers one rendered email and returns its message id
func (s *SMTPSender) Send(ctx context.Context, email notification.OutgoingEmail) (string, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.config.FromAddress); err != nil {
		return "", fmt.Errorf("mail: invalid from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return "", fmt.Errorf("mail: invalid recipient: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetMessageID()

	msg.SetBodyString(gomail.TypeTextPlain, email.TextBody)
	if email.HTMLBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTMLBody)
	}

	for _, att := range email.Attachments {
		opts := []gomail.FileOption{}
		if att.ContentType != "" {
			opts = append(opts, gomail.WithFileContentType(gomail.ContentType(att.ContentType)))
		}
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Data), opts...); err != nil {
			return "", fmt.Errorf("mail: failed to attach %s: %w", att.Filename, err)
		}
	}

	client, err := s.newClient()
	if err != nil {
		return "", err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", email.To),
			zap.String("subject", email.Subject),
			zap.Error(err))
		return "", fmt.Errorf("mail: failed to send: %w", err)
	}

	messageID := msg.GetMessageID()
	s.logger.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("message_id", messageID))
	return messageID, nil
}

func (s *SMTPSender) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.config.Port),
	}
	if s.config.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.config.Username),
			gomail.WithPassword(s.config.Password),
		)
	}
	if s.config.UseTLS {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: failed to create client: %w", err)
	}
	return client, nil
}

// Ensure SMTPSender implements the port
var _ notification.Sender = (*SMTPSender)(nil)
