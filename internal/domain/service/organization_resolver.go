package service

import (
	"context"

	"estagiohub/internal/domain/entity"
)

// OrganizationResolver defines the interface for resolving a CNPJ to company
// data. Production implementations query external registries; other
// environments use a fixture set.
type OrganizationResolver interface {
	// FetchByCnpj resolves a CNPJ (digits only) to an organization record.
	// It fails after every registry in the chain was exhausted.
	FetchByCnpj(ctx context.Context, cnpj string) (*entity.Organization, error)
}
