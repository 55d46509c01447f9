// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "estagiohub/internal/delivery/context"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/usecase"
)

// organizationService implements the OrganizationUsecase interface.
type organizationService struct {
	resolver service.OrganizationResolver
	logger   *slog.Logger
}

// OrganizationServiceParams holds dependencies for OrganizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	Resolver service.OrganizationResolver
	Logger   *slog.Logger
}

// NewOrganizationService is the constructor for organizationService.
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		resolver: params.Resolver,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindByCnpj resolves a CNPJ to company data through the registry chain.
func (srv *organizationService) FindByCnpj(ctx context.Context, cnpj string) (*entity.Organization, error) {
	organization, err := srv.resolver.FetchByCnpj(ctx, cnpj)
	if err != nil {
		srv.log(ctx).Warn("CNPJ lookup failed", slog.String("cnpj", cnpj), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve organization by cnpj")
	}

	return organization, nil
}
