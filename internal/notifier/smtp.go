package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 15 * time.Second

// SMTPConfig holds the mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username.
	From    string
	Timeout time.Duration
	// InsecureSkipVerify disables certificate checks for STARTTLS.
	InsecureSkipVerify bool
}

// Enabled reports whether credentials are configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPNotifier sends shopping lists over SMTP with STARTTLS when the server
// offers it.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier creates a notifier for cfg.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPNotifier{cfg: cfg}
}

// Send renders list and delivers it to the recipient.
func (n *SMTPNotifier) Send(ctx context.Context, to string, list model.ShoppingList) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return &DeliveryError{To: to, Err: ErrNoRecipient}
	}

	body, err := RenderHTML(list)
	if err != nil {
		return &DeliveryError{To: to, Err: err}
	}

	if err := n.deliver(ctx, to, body); err != nil {
		metrics.RecordNotification("failed")
		log.Error().
			Err(err).
			Str("to", to).
			Str("smtp_host", n.cfg.Host).
			Msg("Failed to send shopping list email")
		return &DeliveryError{To: to, Err: err}
	}

	metrics.RecordNotification("sent")
	log.Info().
		Str("to", to).
		Int("items", len(list.Items)).
		Msg("Shopping list email sent")
	return nil
}

func (n *SMTPNotifier) deliver(ctx context.Context, to, body string) error {
	msg := mail.NewMsg(mail.WithEncoding(mail.NoEncoding))
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("sender %q: %w", n.cfg.From, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("recipient %q: %w", to, err)
	}
	msg.Subject(Subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("deliver via %s: %w", addr, err)
	}
	return nil
}

// clientOptions upgrades to TLS when the server offers STARTTLS and
// authenticates with PLAIN when credentials are set.
func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         n.cfg.Host,
			InsecureSkipVerify: n.cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local relays
		}),
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}
