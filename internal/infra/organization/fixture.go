package organization

import (
	"context"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/service"
)

// fixtureResolver serves a static in-memory company set keyed by exact CNPJ.
// It replaces the registry chain outside production so development and tests
// never hit rate-limited public APIs.
type fixtureResolver struct {
	organizations map[string]entity.Organization
}

// NewFixtureResolver is the constructor for fixtureResolver with the default
// fixture set.
func NewFixtureResolver() service.OrganizationResolver {
	return NewFixtureResolverWith(defaultFixtures())
}

// NewFixtureResolverWith builds a fixture resolver over a custom set.
func NewFixtureResolverWith(organizations []entity.Organization) service.OrganizationResolver {
	byCnpj := make(map[string]entity.Organization, len(organizations))
	for _, org := range organizations {
		byCnpj[org.CNPJ] = org
	}

	return &fixtureResolver{organizations: byCnpj}
}

// FetchByCnpj looks the CNPJ up in the fixture set, exact match only.
func (r *fixtureResolver) FetchByCnpj(_ context.Context, cnpj string) (*entity.Organization, error) {
	org, ok := r.organizations[cnpj]
	if !ok {
		return nil, domainerrors.ErrOrganizationNotFound
	}

	return &org, nil
}

func defaultFixtures() []entity.Organization {
	return []entity.Organization{
		{
			CNPJ:          "11222333000181",
			CorporateName: "Aurora Sistemas de Informação LTDA",
			BusinessName:  "Aurora Sistemas",
			Address: entity.Address{
				Street:     "Rua das Palmeiras",
				Number:     "1200",
				District:   "Centro",
				City:       "Bauru",
				State:      "sp",
				PostalCode: "17010000",
			},
			Phone1: "1432215500",
		},
		{
			CNPJ:          "19131243000197",
			CorporateName: "Open Knowledge Brasil",
			BusinessName:  "Rede pelo Conhecimento Livre",
			Address: entity.Address{
				Street:     "Avenida Paulista",
				Number:     "37",
				District:   "Bela Vista",
				City:       "São Paulo",
				State:      "sp",
				PostalCode: "01311902",
			},
			Phone1: "1123851008",
		},
	}
}
