package campaign

import (
	"context"

	"github.com/wneessen/go-mail"

	"ferresur/internal/domain"
)

// Message is one outbound campaign email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is the outbound transport. Verify is the pre-send connectivity
// probe; Send delivers one message.
type Mailer interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through a real SMTP server.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg domain.SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return err
	}
	return m.client.Close()
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return err
	}
	if err := mm.To(msg.To); err != nil {
		return err
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return m.client.DialAndSendWithContext(ctx, mm)
}

// NoopMailer is the simulated transport used when a send request carries
// no custom SMTP credentials: every operation succeeds without network I/O.
type NoopMailer struct{}

func (NoopMailer) Verify(context.Context) error        { return nil }
func (NoopMailer) Send(context.Context, Message) error { return nil }
