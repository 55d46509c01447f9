package mail

import (
	"bytes"
	"context"

	gomail "github.com/wneessen/go-mail"

	"estagiohub/config"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/errors"
)

// smtpMailer delivers transactional mail over SMTP using go-mail.
type smtpMailer struct {
	client      *gomail.Client
	from        string
	fromName    string
	frontendURL string
}

// NewSMTPMailer is the constructor for smtpMailer.
// It returns the implementation as a service.MailerService interface.
func NewSMTPMailer(cfg *config.Config) (service.MailerService, error) {
	emailCfg := cfg.Email
	if emailCfg == nil || emailCfg.Host == "" {
		return nil, errors.New("email transport is not configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(emailCfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if emailCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(emailCfg.Username),
			gomail.WithPassword(emailCfg.Password),
		)
	}

	client, err := gomail.NewClient(emailCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	frontendURL := ""
	if cfg.Frontend != nil {
		frontendURL = cfg.Frontend.BaseURL
	}

	return &smtpMailer{
		client:      client,
		from:        emailCfg.From,
		fromName:    emailCfg.FromName,
		frontendURL: frontendURL,
	}, nil
}

func (m *smtpMailer) send(ctx context.Context, to string, msg *message, attachment *service.DocumentAttachment) error {
	mailMsg := gomail.NewMsg()
	if err := mailMsg.FromFormat(m.fromName, m.from); err != nil {
		return errors.Wrap(err, "set mail sender")
	}
	if err := mailMsg.To(to); err != nil {
		return errors.Wrap(err, "set mail recipient")
	}

	mailMsg.Subject(msg.Subject)
	mailMsg.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mailMsg.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	if attachment != nil {
		mailMsg.AttachReader(attachment.Filename, bytes.NewReader(attachment.Content))
	}

	if err := m.client.DialAndSendWithContext(ctx, mailMsg); err != nil {
		return errors.Wrapf(err, "send mail %q to %s", msg.Subject, to)
	}

	return nil
}

// SendWelcome greets a freshly registered account.
func (m *smtpMailer) SendWelcome(ctx context.Context, to, _ string) error {
	msg, err := buildWelcomeMessage(to)
	if err != nil {
		return err
	}

	return m.send(ctx, to, msg, nil)
}

// SendResetPasswordCode delivers a password-reset code.
func (m *smtpMailer) SendResetPasswordCode(ctx context.Context, to, code string) error {
	msg, err := buildResetPasswordMessage(to, code, m.frontendURL)
	if err != nil {
		return err
	}

	return m.send(ctx, to, msg, nil)
}

// SendInternshipApproved tells the student the request passed initial approval.
func (m *smtpMailer) SendInternshipApproved(ctx context.Context, internship *entity.Internship) error {
	msg, err := buildApprovedMessage(internship)
	if err != nil {
		return err
	}

	return m.send(ctx, internship.Student.User.Email, msg, nil)
}

// SendInternshipRejected tells the student the request was rejected and why.
func (m *smtpMailer) SendInternshipRejected(ctx context.Context, internship *entity.Internship, reason string) error {
	msg, err := buildRejectedMessage(internship, reason)
	if err != nil {
		return err
	}

	return m.send(ctx, internship.Student.User.Email, msg, nil)
}

// SendInternshipCanceled tells the student the request was canceled.
func (m *smtpMailer) SendInternshipCanceled(ctx context.Context, internship *entity.Internship, reason string) error {
	msg, err := buildCanceledMessage(internship, reason)
	if err != nil {
		return err
	}

	return m.send(ctx, internship.Student.User.Email, msg, nil)
}

// SendInternshipClosed tells the student the internship was closed and why.
func (m *smtpMailer) SendInternshipClosed(ctx context.Context, internship *entity.Internship, reason string) error {
	msg, err := buildClosedMessage(internship, reason)
	if err != nil {
		return err
	}

	return m.send(ctx, internship.Student.User.Email, msg, nil)
}

// SendInternshipDocument forwards an uploaded document to the academic supervisor.
func (m *smtpMailer) SendInternshipDocument(ctx context.Context, internship *entity.Internship, docType entity.DocumentType, attachment service.DocumentAttachment) error {
	msg := buildDocumentMessage(internship, docType)

	return m.send(ctx, internship.Supervisor.User.Email, msg, &attachment)
}
