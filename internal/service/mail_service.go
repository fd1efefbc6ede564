package service

import (
	"bytes"
	"contacts-web-server/config"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`Hello, {{.Username}}!

Thank you for registering in Contacts Application.
Please confirm your email address by following the link below:

{{.Link}}

If you did not register, just ignore this email.
`))

// renderConfirmationEmail : текст письма со ссылкой подтверждения
func renderConfirmationEmail(username, baseURL, token string) (string, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, struct {
		Username string
		Link     string
	}{
		Username: username,
		Link:     baseURL + "api/auth/confirmed_email/" + token,
	})
	if err != nil {
		return "", fmt.Errorf("[MailService] ошибка шаблона письма: %w", err)
	}
	return buf.String(), nil
}

// MailService : отправка писем через SMTP, с TLS или без
type MailService struct {
	addr    string
	auth    smtp.Auth
	useTLS  bool
	timeout time.Duration
	from    string
	log     *zap.Logger
}

func NewMailService(cfg *config.MailConfig) *MailService {
	var auth smtp.Auth
	if cfg.User != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, smtpHost(cfg.Addr))
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MailService{
		addr:    cfg.Addr,
		auth:    auth,
		useTLS:  cfg.UseTLS,
		timeout: timeout,
		from:    cfg.From,
		log:     zap.L().With(zap.String("component", "service.mail")),
	}
}

func (m *MailService) Send(ctx context.Context, to, subject, body string) error {
	log := m.log.With(zap.String("to", to), zap.String("subject", subject), zap.Bool("tls", m.useTLS))
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dial(ctx)
	if err != nil {
		log.Error("ошибка подключения к SMTP", zap.Error(err))
		return fmt.Errorf("[MailService] ошибка подключения к %s: %w", m.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, smtpHost(m.addr))
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("[MailService] ошибка SMTP клиента: %w", err)
	}
	defer func() { _ = client.Close() }()

	if m.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(m.auth); err != nil {
				return fmt.Errorf("[MailService] ошибка авторизации SMTP: %w", err)
			}
		}
	}
	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("[MailService] MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("[MailService] RCPT TO: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("[MailService] DATA: %w", err)
	}
	if _, err := writer.Write(buildMessage(m.from, to, subject, body)); err != nil {
		return fmt.Errorf("[MailService] ошибка записи письма: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("[MailService] ошибка завершения письма: %w", err)
	}

	log.Info("письмо отправлено", zap.Duration("elapsed", time.Since(start)))
	return client.Quit()
}

func (m *MailService) dial(ctx context.Context) (net.Conn, error) {
	if m.useTLS {
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: smtpHost(m.addr)}}
		return dialer.DialContext(ctx, "tcp", m.addr)
	}
	var dialer net.Dialer
	return dialer.DialContext(ctx, "tcp", m.addr)
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=utf-8\r\n" +
			"\r\n" + strings.ReplaceAll(body, "\n", "\r\n") + "\r\n")
}

func smtpHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
