package organization

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/errors"
)

// brasilAPIProvider queries the public BrasilAPI registry.
type brasilAPIProvider struct {
	baseURL    string
	httpClient *http.Client
}

// brasilAPIResponse mirrors the fields we consume from the registry payload.
type brasilAPIResponse struct {
	Cnpj          string `json:"cnpj"`
	RazaoSocial   string `json:"razao_social"`
	NomeFantasia  string `json:"nome_fantasia"`
	Logradouro    string `json:"logradouro"`
	Numero        string `json:"numero"`
	Complemento   string `json:"complemento"`
	Bairro        string `json:"bairro"`
	Municipio     string `json:"municipio"`
	UF            string `json:"uf"`
	Cep           string `json:"cep"`
	DddTelefone1  string `json:"ddd_telefone_1"`
	DddTelefone2  string `json:"ddd_telefone_2"`
}

// brasilAPIError is the registry's error payload.
type brasilAPIError struct {
	Message string `json:"message"`
}

// NewBrasilAPIProvider is the constructor for brasilAPIProvider.
func NewBrasilAPIProvider(baseURL string, httpClient *http.Client) Provider {
	return &brasilAPIProvider{baseURL: baseURL, httpClient: httpClient}
}

// Name identifies the registry in logs.
func (p *brasilAPIProvider) Name() string {
	return "brasilapi"
}

// FetchData resolves the CNPJ against BrasilAPI.
func (p *brasilAPIProvider) FetchData(ctx context.Context, cnpj string) (*entity.Organization, error) {
	url := strings.TrimSuffix(p.baseURL, "/") + "/cnpj/v1/" + cnpj

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var payload brasilAPIResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, errors.Wrap(err, "decode brasilapi response")
		}

		return payload.toDomain(), nil
	}

	var payload brasilAPIError
	// The body is best-effort: a handled status without a message still falls through.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, domainerrors.ErrValidationFailed.WithDetails(payload.Message)
	case http.StatusNotFound:
		return nil, domainerrors.ErrOrganizationNotFound.WithDetails(payload.Message)
	default:
		return nil, errors.Errorf("brasilapi returned status %d", resp.StatusCode)
	}
}

func (r *brasilAPIResponse) toDomain() *entity.Organization {
	return &entity.Organization{
		CNPJ:          r.Cnpj,
		CorporateName: r.RazaoSocial,
		BusinessName:  r.NomeFantasia,
		Address: entity.Address{
			Street:         r.Logradouro,
			Number:         r.Numero,
			AdditionalInfo: r.Complemento,
			District:       r.Bairro,
			City:           r.Municipio,
			State:          strings.ToLower(r.UF),
			PostalCode:     r.Cep,
		},
		Phone1: r.DddTelefone1,
		Phone2: r.DddTelefone2,
	}
}
