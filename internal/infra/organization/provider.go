package organization

import (
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/fx"

	"estagiohub/config"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/errors"
)

const defaultRegistryTimeout = 15 * time.Second

// ResolverParams holds dependencies for the OrganizationResolver, injected by Fx
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOrganizationResolver creates an OrganizationResolver based on the
// environment: the live registry chain in production, fixtures elsewhere.
func NewOrganizationResolver(params ResolverParams) (service.OrganizationResolver, error) {
	if !params.Config.IsProduction() {
		params.Logger.Info("Using fixture organization resolver outside production")

		return NewFixtureResolver(), nil
	}

	cfg := params.Config.Cnpj
	if cfg == nil || cfg.BrasilAPIBaseURL == "" || cfg.CnpjWsBaseURL == "" {
		return nil, errors.New("cnpj registry base URLs are required in production")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRegistryTimeout
	}
	httpClient := &http.Client{Timeout: timeout}

	params.Logger.Info("Using live CNPJ registry chain",
		slog.String("primary", cfg.BrasilAPIBaseURL),
		slog.String("fallback", cfg.CnpjWsBaseURL),
	)

	return NewChainResolver(
		params.Logger,
		NewBrasilAPIProvider(cfg.BrasilAPIBaseURL, httpClient),
		NewCnpjWsProvider(cfg.CnpjWsBaseURL, httpClient),
	), nil
}

// Module provides the organization FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewOrganizationResolver),
)
