package mail

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estagiohub/config"
)

func newMailerParams(env string, email *config.EmailConfig) MailerParams {
	cfg := &config.Config{Email: email}
	cfg.Env.Env = env

	return MailerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewMailerService_NonProductionUsesLogMailer(t *testing.T) {
	mailer, err := NewMailerService(newMailerParams("develop", nil))

	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, mailer)
}

func TestNewMailerService_ProductionWithoutEmailConfigFails(t *testing.T) {
	mailer, err := NewMailerService(newMailerParams("production", nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email transport is not configured")
	assert.Nil(t, mailer)
}

func TestNewMailerService_ProductionWithEmptyHostFails(t *testing.T) {
	mailer, err := NewMailerService(newMailerParams("production", &config.EmailConfig{
		Port: 587,
		From: "noreply@estagiohub.example",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email transport is not configured")
	assert.Nil(t, mailer)
}
