package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parcel_tracking/internal/logger"

	"github.com/wneessen/go-mail"
)

// Message is a plain-text e-mail. It is JSON-encoded when queued.
type Message struct {
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate reports whether the message can be handed to a sender.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return errors.New("email: empty recipient")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.New("email: empty subject")
	}
	return nil
}

// Sender delivers messages. Implementations: log (development) and SMTP.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// --- LogSender (for development) ---

// LogSender writes e-mails to the application log instead of sending them.
type LogSender struct {
	from string
	log  *logger.Logger
}

func NewLogSender(from string, log *logger.Logger) *LogSender {
	return &LogSender{from: from, log: logger.OrNop(log)}
}

func (s *LogSender) Send(_ context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.log.Infow("email_logged",
		"from", s.from,
		"to", m.To,
		"reply_to", m.ReplyTo,
		"subject", m.Subject,
		"body", m.Body,
	)
	return nil
}

// --- SMTPSender (for production) ---

// SMTPSender delivers e-mails through an SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}
}

// buildMsg converts m into a go-mail message.
func (s *SMTPSender) buildMsg(m Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("set from %q: %w", s.from, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("set to %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("set reply-to %q: %w", m.ReplyTo, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return msg, nil
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	msg, err := s.buildMsg(m)
	if err != nil {
		return err
	}

	opts := []mail.Option{mail.WithPort(s.port), mail.WithTLSPortPolicy(mail.TLSOpportunistic)}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}
	c, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client for %s: %w", s.host, err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email to %q: %w", m.To, err)
	}
	return nil
}
