package notification

import "context"

// OutgoingEmail is a fully rendered message ready for transport
type OutgoingEmail struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Attachment is a file attached to an outgoing email
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Sender delivers rendered emails. Implementations return the
// transport message id when the backend exposes one.
type Sender interface {
	Send(ctx context.Context, email OutgoingEmail) (messageID string, err error)
}
