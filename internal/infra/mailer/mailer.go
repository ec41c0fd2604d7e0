// Package mailer delivers transactional mail over SMTP.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"trackio/config"
	"trackio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	implicitTLSPort = 465
	dialTimeout     = 30 * time.Second
)

// ErrBaseURLRequired is returned when a welcome mail has no link target.
var ErrBaseURLRequired = errors.New("base url is required for the welcome email")

// sendFunc delivers a fully rendered message to a single recipient.
type sendFunc func(ctx context.Context, to string, msg []byte) error

type smtpMailer struct {
	from   string
	send   sendFunc
	logger *slog.Logger
}

// noopMailer is used when SMTP is not configured
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendWelcomeEmail(_ context.Context, email, _, _, _ string) error {
	m.logger.Debug("[NoopMailer] Mail delivery disabled, skipping welcome email", slog.String("to", email))

	return nil
}

func (m *noopMailer) SendPasswordResetEmail(_ context.Context, email, _, _ string) error {
	m.logger.Debug("[NoopMailer] Mail delivery disabled, skipping reset email", slog.String("to", email))

	return nil
}

// Params holds dependencies for the mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an SMTP mailer, or a no-op mailer when no host is configured.
func New(params Params) service.Mailer {
	cfg := params.Config.Mailer
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("Mailer not configured, using no-op mailer")

		return &noopMailer{logger: params.Logger}
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	params.Logger.Info("Using SMTP mailer",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return &smtpMailer{
		from:   from,
		send:   smtpSender(*cfg),
		logger: params.Logger,
	}
}

func (m *smtpMailer) SendWelcomeEmail(ctx context.Context, email, name, password, baseURL string) error {
	if strings.TrimSpace(baseURL) == "" {
		return ErrBaseURLRequired
	}

	body, err := render(welcomeTemplate, welcomeData{Name: name, Email: email, Password: password, BaseURL: baseURL, Year: time.Now().Year()})
	if err != nil {
		return err
	}

	return m.deliver(ctx, email, "Welcome", body)
}

func (m *smtpMailer) SendPasswordResetEmail(ctx context.Context, email, name, resetURL string) error {
	body, err := render(resetTemplate, resetData{Name: name, ResetURL: resetURL, Year: time.Now().Year()})
	if err != nil {
		return err
	}

	return m.deliver(ctx, email, "Reset your password", body)
}

func (m *smtpMailer) deliver(ctx context.Context, to, subject, htmlBody string) error {
	msg := buildMessage(m.from, to, subject, htmlBody)
	if err := m.send(ctx, to, msg); err != nil {
		m.logger.Error("[Mailer] Failed to send email",
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Info("[Mailer] Email sent", slog.String("subject", subject))

	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var msg bytes.Buffer

	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	return msg.Bytes()
}

// smtpSender dials the server for every message. Port 465 uses implicit TLS,
// any other port upgrades with STARTTLS when the server offers it.
func smtpSender(cfg config.MailerConfig) sendFunc {
	return func(ctx context.Context, to string, msg []byte) error {
		addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		tlsConfig := &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

		dialer := &net.Dialer{Timeout: dialTimeout}
		var conn net.Conn
		var err error
		if cfg.Port == implicitTLSPort {
			conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", addr)
		} else {
			conn, err = dialer.DialContext(ctx, "tcp", addr)
		}
		if err != nil {
			return errors.Wrap(err, "failed to connect to SMTP server")
		}
		defer func() { _ = conn.Close() }()

		client, err := smtp.NewClient(conn, cfg.Host)
		if err != nil {
			return errors.Wrap(err, "failed to create SMTP client")
		}
		defer func() { _ = client.Close() }()

		if cfg.Port != implicitTLSPort {
			if ok, _ := client.Extension("STARTTLS"); ok {
				if err := client.StartTLS(tlsConfig); err != nil {
					return errors.Wrap(err, "failed to start TLS")
				}
			}
		}

		if cfg.User != "" && cfg.Password != "" {
			if err := client.Auth(smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)); err != nil {
				return errors.Wrap(err, "SMTP authentication failed")
			}
		}

		from := cfg.From
		if from == "" {
			from = cfg.User
		}
		if err := client.Mail(from); err != nil {
			return errors.Wrap(err, "failed to set sender")
		}
		if err := client.Rcpt(to); err != nil {
			return errors.Wrap(err, "failed to set recipient")
		}

		writer, err := client.Data()
		if err != nil {
			return errors.Wrap(err, "failed to start message")
		}
		if _, err := writer.Write(msg); err != nil {
			return errors.Wrap(err, "failed to write message")
		}
		if err := writer.Close(); err != nil {
			return errors.Wrap(err, "failed to close message")
		}

		_ = client.Quit()

		return nil
	}
}
