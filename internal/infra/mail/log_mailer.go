package mail

import (
	"context"
	"log/slog"

	"estagiohub/internal/domain/entity"
	"estagiohub/internal/domain/service"
)

// logMailer replaces real delivery with a structured log line per send,
// preserving the MailerService contract outside production.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
// It returns the implementation as a service.MailerService interface.
func NewLogMailer(logger *slog.Logger) service.MailerService {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendWelcome(ctx context.Context, to, name string) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Welcome message sent",
		slog.String("to", to),
		slog.String("name", name),
	)

	return nil
}

func (m *logMailer) SendResetPasswordCode(ctx context.Context, to, code string) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Password reset code sent",
		slog.String("to", to),
		slog.String("code", code),
	)

	return nil
}

func (m *logMailer) SendInternshipApproved(ctx context.Context, internship *entity.Internship) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Internship request approved",
		slog.String("internship_id", internship.ID.String()),
		slog.String("to", internship.Student.User.Email),
	)

	return nil
}

func (m *logMailer) SendInternshipRejected(ctx context.Context, internship *entity.Internship, reason string) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Internship request rejected",
		slog.String("internship_id", internship.ID.String()),
		slog.String("to", internship.Student.User.Email),
		slog.String("reason", reason),
	)

	return nil
}

func (m *logMailer) SendInternshipCanceled(ctx context.Context, internship *entity.Internship, reason string) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Internship request canceled",
		slog.String("internship_id", internship.ID.String()),
		slog.String("to", internship.Student.User.Email),
		slog.String("reason", reason),
	)

	return nil
}

func (m *logMailer) SendInternshipClosed(ctx context.Context, internship *entity.Internship, reason string) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Internship closed",
		slog.String("internship_id", internship.ID.String()),
		slog.String("to", internship.Student.User.Email),
		slog.String("reason", reason),
	)

	return nil
}

func (m *logMailer) SendInternshipDocument(ctx context.Context, internship *entity.Internship, docType entity.DocumentType, attachment service.DocumentAttachment) error {
	m.logger.InfoContext(ctx, "[FakeMailer] Internship document forwarded",
		slog.String("internship_id", internship.ID.String()),
		slog.String("to", internship.Supervisor.User.Email),
		slog.String("type", string(docType)),
		slog.String("filename", attachment.Filename),
	)

	return nil
}
