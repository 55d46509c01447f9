package service

import (
	"context"

	"estagiohub/internal/domain/entity"
)

// DocumentAttachment is an uploaded internship document forwarded by e-mail
// to the academic supervisor.
type DocumentAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MailerService defines the interface for transactional e-mail dispatch.
// Every send is best-effort from the domain's point of view: callers decide
// whether a failure degrades or fails the surrounding operation.
type MailerService interface {
	// SendWelcome greets a freshly registered account.
	SendWelcome(ctx context.Context, to, name string) error

	// SendResetPasswordCode delivers a password-reset code.
	SendResetPasswordCode(ctx context.Context, to, code string) error

	// SendInternshipApproved tells the student the request passed initial approval.
	SendInternshipApproved(ctx context.Context, internship *entity.Internship) error

	// SendInternshipRejected tells the student the request was rejected and why.
	SendInternshipRejected(ctx context.Context, internship *entity.Internship, reason string) error

	// SendInternshipCanceled tells the student the request was canceled.
	// Reason may be empty.
	SendInternshipCanceled(ctx context.Context, internship *entity.Internship, reason string) error

	// SendInternshipClosed tells the student the internship was closed and why.
	SendInternshipClosed(ctx context.Context, internship *entity.Internship, reason string) error

	// SendInternshipDocument forwards an uploaded document of the given
	// lifecycle stage to the academic supervisor.
	SendInternshipDocument(ctx context.Context, internship *entity.Internship, docType entity.DocumentType, attachment DocumentAttachment) error
}
