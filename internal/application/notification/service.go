package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/contact"
	"github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/wholesale"
)

const receiptAttachmentName = "order_receipt.pdf"

// ReceiptRenderer produces the PDF receipt attached to receipt emails
type ReceiptRenderer interface {
	Generate(order *ordering.Order) ([]byte, error)
}

// Config carries the sender identity and team inboxes for outgoing mail
type Config struct {
	FromAddress   string
	WholesaleTeam string
	QuoteTeam     string
	ContactTeam   string
}

// Service sends customer and team emails and records every attempt.
// Transport failures never propagate to callers: each one becomes a
// failed notification row (or a log line for team mail).
type Service struct {
	repo     notification.EmailNotificationRepository
	sender   notification.Sender
	renderer ReceiptRenderer
	config   Config
	logger   *zap.Logger
}

// NewService creates a notification service
func NewService(
	repo notification.EmailNotificationRepository,
	sender notification.Sender,
	renderer ReceiptRenderer,
	config Config,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		sender:   sender,
		renderer: renderer,
		config:   config,
		logger:   logger,
	}
}

// SendOrderReceipt emails the order receipt with the PDF attached and
// records the attempt. The returned row carries the outcome.
func (s *Service) SendOrderReceipt(ctx context.Context, order *ordering.Order) (*notification.EmailNotification, error) {
	subject := fmt.Sprintf("Your Meat Direct order #%s receipt", order.ID)

	if order.Email == "" {
		return s.recordFailure(ctx, order, notification.KindOrderReceipt, subject,
			"Order has no email address; receipt not sent.")
	}

	pdfBytes, err := s.renderer.Generate(order)
	if err != nil {
		s.logger.Error("receipt PDF generation failed",
			zap.String("order_id", order.ID.String()), zap.Error(err))
		return s.recordFailure(ctx, order, notification.KindOrderReceipt, subject, err.Error())
	}

	messageID, err := s.sender.Send(ctx, notification.OutgoingEmail{
		To:       order.Email,
		Subject:  subject,
		TextBody: renderReceiptText(order),
		HTMLBody: renderReceiptHTML(order),
		Attachments: []notification.Attachment{{
			Filename:    receiptAttachmentName,
			ContentType: "application/pdf",
			Data:        pdfBytes,
		}},
	})
	if err != nil {
		s.logger.Error("receipt email delivery failed",
			zap.String("order_id", order.ID.String()), zap.Error(err))
		return s.recordFailure(ctx, order, notification.KindOrderReceipt, subject, err.Error())
	}

	row := notification.NewSentNotification(order.ID, notification.KindOrderReceipt, order.Email, subject, messageID)
	row.AttachReceiptPDF(pdfBytes)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// SendOrderReceiptOnce sends the receipt unless one already went out
// for this order, in which case the earlier sent row is returned.
func (s *Service) SendOrderReceiptOnce(ctx context.Context, order *ordering.Order) (*notification.EmailNotification, error) {
	existing, err := s.repo.FindLatestSentReceipt(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.SendOrderReceipt(ctx, order)
}

// SendOrderStatusUpdate emails the customer that their order moved
// from the previous status to its current one and records the attempt.
// An empty previous status renders the message without the transition.
func (s *Service) SendOrderStatusUpdate(ctx context.Context, order *ordering.Order, previous ordering.OrderStatus) (*notification.EmailNotification, error) {
	subject := fmt.Sprintf("Your Meat Direct order #%s is now %s", order.ID, order.Status.Label())

	if order.Email == "" {
		return s.recordFailure(ctx, order, notification.KindOrderStatusUpdate, subject,
			"Order has no email address; status update not sent.")
	}

	messageID, err := s.sender.Send(ctx, notification.OutgoingEmail{
		To:       order.Email,
		Subject:  subject,
		TextBody: renderStatusText(order, previous),
		HTMLBody: renderStatusHTML(order, previous),
	})
	if err != nil {
		s.logger.Error("status update delivery failed",
			zap.String("order_id", order.ID.String()), zap.Error(err))
		return s.recordFailure(ctx, order, notification.KindOrderStatusUpdate, subject, err.Error())
	}

	row := notification.NewSentNotification(order.ID, notification.KindOrderStatusUpdate, order.Email, subject, messageID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service) recordFailure(ctx context.Context, order *ordering.Order, kind notification.NotificationKind, subject, reason string) (*notification.EmailNotification, error) {
	row := notification.NewFailedNotification(order.ID, kind, order.Email, subject, reason)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// NotifyWholesaleRequest tells the wholesale team about a new access
// request. Delivery is best effort and failures are only logged.
func (s *Service) NotifyWholesaleRequest(ctx context.Context, req *wholesale.AccessRequest) {
	var b []string
	b = append(b,
		fmt.Sprintf("New wholesale access request from %s.", req.Name),
		"",
		"Email: "+req.Email,
	)
	if req.Phone != "" {
		b = append(b, "Phone: "+req.Phone)
	}
	if req.Company != "" {
		b = append(b, "Company: "+req.Company)
	}
	if req.Message != "" {
		b = append(b, "", req.Message)
	}
	s.sendTeamMail(ctx, s.config.WholesaleTeam,
		fmt.Sprintf("Wholesale access request from %s", req.Name), b)
}

// NotifyQuoteRequest tells the quote team about a new bulk quote request
func (s *Service) NotifyQuoteRequest(ctx context.Context, req *contact.QuoteRequest) {
	var b []string
	b = append(b,
		fmt.Sprintf("New quote request from %s.", req.Name),
		"",
		"Email: "+req.Email,
		"Phone: "+req.Phone,
	)
	if req.Address != "" {
		b = append(b, "Address: "+req.Address)
	}
	if req.Fulfillment != "" {
		b = append(b, "Fulfillment: "+req.Fulfillment)
	}
	if req.Message != "" {
		b = append(b, "", req.Message)
	}
	s.sendTeamMail(ctx, s.config.QuoteTeam,
		fmt.Sprintf("Quote request from %s", req.Name), b)
}

// NotifyContactMessage forwards a contact form submission to the team
func (s *Service) NotifyContactMessage(ctx context.Context, msg *contact.ContactMessage) {
	var b []string
	b = append(b,
		fmt.Sprintf("New contact message from %s.", msg.Name),
		"",
		"Email: "+msg.Email,
	)
	if msg.Phone != "" {
		b = append(b, "Phone: "+msg.Phone)
	}
	b = append(b, "", msg.Message)
	s.sendTeamMail(ctx, s.config.ContactTeam,
		fmt.Sprintf("Contact message from %s", msg.Name), b)
}

func (s *Service) sendTeamMail(ctx context.Context, to, subject string, lines []string) {
	if to == "" {
		s.logger.Warn("team inbox not configured, dropping notification",
			zap.String("subject", subject))
		return
	}
	body := ""
	for _, line := range lines {
		body += line + "\n"
	}
	if _, err := s.sender.Send(ctx, notification.OutgoingEmail{
		To:       to,
		Subject:  subject,
		TextBody: body,
	}); err != nil {
		s.logger.Error("team notification delivery failed",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
