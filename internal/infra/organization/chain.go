// Package organization resolves CNPJs against external company registries.
package organization

import (
	"context"
	"log/slog"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/service"
)

// Provider is one external registry capable of resolving a CNPJ.
type Provider interface {
	// Name identifies the registry in logs.
	Name() string

	// FetchData resolves the CNPJ against this registry only.
	FetchData(ctx context.Context, cnpj string) (*entity.Organization, error)
}

// chainResolver tries each provider in order and short-circuits on the first
// success. When every provider failed, the last error is surfaced; a generic
// not-found error covers the empty-chain case.
type chainResolver struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChainResolver is the constructor for chainResolver.
// Providers are tried in the given order.
func NewChainResolver(logger *slog.Logger, providers ...Provider) service.OrganizationResolver {
	return &chainResolver{providers: providers, logger: logger}
}

// FetchByCnpj resolves a CNPJ through the registry chain.
func (r *chainResolver) FetchByCnpj(ctx context.Context, cnpj string) (*entity.Organization, error) {
	var lastErr error

	for _, provider := range r.providers {
		org, err := provider.FetchData(ctx, cnpj)
		if err == nil {
			return org, nil
		}

		r.logger.WarnContext(ctx, "CNPJ registry lookup failed, trying next provider",
			slog.String("provider", provider.Name()),
			slog.String("cnpj", cnpj),
			slog.Any("error", err),
		)
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, domainerrors.ErrOrganizationNotFound
}
