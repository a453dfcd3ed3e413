// Package mail delivers transactional emails over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

const (
	subjectVerification = "[eWarrants] Your Verification Code"
	subjectPasswordReset = "[eWarrants] Your Password Reset Code"
	subjectReminderFmt   = "[eWarrants] You have warranties expiring in %d days!"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// sender is the subset of *gomail.Client used here.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPMailerParams holds dependencies for the SMTP mailer.
type SMTPMailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpMailer struct {
	client sender
	from   string
	logger *slog.Logger
}

// NewSMTPMailer dials lazily: the client connects on each send.
func NewSMTPMailer(params SMTPMailerParams) (service.MailService, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("mail host must be configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SSL {
		opts = append(opts, gomail.WithSSLPort(false))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return newSMTPMailer(client, from, params.Logger), nil
}

func newSMTPMailer(client sender, from string, logger *slog.Logger) *smtpMailer {
	return &smtpMailer{client: client, from: from, logger: logger}
}

type codeEmail struct {
	Title string
	Name  string
	Intro string
	Code  string
	Outro string
}

func (m *smtpMailer) SendVerificationCode(ctx context.Context, to, fullName, code string) error {
	return m.send(ctx, to, subjectVerification, "code.html", codeEmail{
		Title: "Verify Your Email",
		Name:  fullName,
		Intro: "Thank you for registering! Please use the following code to verify your email address:",
		Code:  code,
		Outro: "This code will expire in 1 hour.",
	})
}

func (m *smtpMailer) SendPasswordResetCode(ctx context.Context, to, fullName, code string) error {
	return m.send(ctx, to, subjectPasswordReset, "code.html", codeEmail{
		Title: "Password Reset Request",
		Name:  fullName,
		Intro: "We received a request to reset your password. Please use the following code to complete the process:",
		Code:  code,
		Outro: "This code will expire in 1 hour. If you did not request a password reset, please ignore this email.",
	})
}

func (m *smtpMailer) SendExpiryReminder(ctx context.Context, to, fullName string, days int, warranties []*entity.Warranty) error {
	if len(warranties) == 0 {
		return nil
	}

	return m.send(ctx, to, fmt.Sprintf(subjectReminderFmt, days), "reminder.html", struct {
		Name       string
		Days       int
		Warranties []*entity.Warranty
	}{Name: fullName, Days: days, Warranties: warranties})
}

func (m *smtpMailer) send(ctx context.Context, to, subject, tmpl string, data any) error {
	body, err := render(tmpl, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return domainerrors.NewUpstreamError("smtp", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Mail sent",
		slog.String("subject", subject),
	)

	return nil
}

func render(tmpl string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", tmpl)
	}

	return body.String(), nil
}
