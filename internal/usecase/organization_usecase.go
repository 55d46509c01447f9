// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estagiohub/internal/domain/entity"
)

// OrganizationUsecase exposes CNPJ-based company lookups to the delivery layer.
type OrganizationUsecase interface {
	// FindByCnpj resolves a CNPJ (digits only) to company data through the
	// configured registry chain.
	FindByCnpj(ctx context.Context, cnpj string) (*entity.Organization, error)
}
