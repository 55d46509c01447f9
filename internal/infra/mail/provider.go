package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"estagiohub/config"
	"estagiohub/internal/domain/service"
)

// MailerParams holds dependencies for the MailerService, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailerService creates a MailerService based on the environment: real
// SMTP delivery in production, structured log lines everywhere else.
func NewMailerService(params MailerParams) (service.MailerService, error) {
	if !params.Config.IsProduction() {
		params.Logger.Info("Using log mailer outside production")

		return NewLogMailer(params.Logger), nil
	}

	mailer, err := NewSMTPMailer(params.Config)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Using SMTP mailer",
		slog.String("host", params.Config.Email.Host),
	)

	return mailer, nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailerService),
)
