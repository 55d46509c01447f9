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

// cnpjWsProvider queries the public CNPJ.ws registry.
type cnpjWsProvider struct {
	baseURL    string
	httpClient *http.Client
}

// cnpjWsResponse mirrors the fields we consume from the registry payload.
// Most company data is nested under the "estabelecimento" object.
type cnpjWsResponse struct {
	RazaoSocial     string `json:"razao_social"`
	Estabelecimento struct {
		Cnpj         string `json:"cnpj"`
		NomeFantasia string `json:"nome_fantasia"`
		Logradouro   string `json:"logradouro"`
		Numero       string `json:"numero"`
		Complemento  string `json:"complemento"`
		Bairro       string `json:"bairro"`
		Cep          string `json:"cep"`
		Ddd1         string `json:"ddd1"`
		Telefone1    string `json:"telefone1"`
		Ddd2         string `json:"ddd2"`
		Telefone2    string `json:"telefone2"`
		Cidade       struct {
			Nome string `json:"nome"`
		} `json:"cidade"`
		Estado struct {
			Sigla string `json:"sigla"`
		} `json:"estado"`
	} `json:"estabelecimento"`
}

// cnpjWsError is the registry's error payload.
type cnpjWsError struct {
	Detalhes string `json:"detalhes"`
}

// NewCnpjWsProvider is the constructor for cnpjWsProvider.
func NewCnpjWsProvider(baseURL string, httpClient *http.Client) Provider {
	return &cnpjWsProvider{baseURL: baseURL, httpClient: httpClient}
}

// Name identifies the registry in logs.
func (p *cnpjWsProvider) Name() string {
	return "cnpjws"
}

// FetchData resolves the CNPJ against CNPJ.ws.
func (p *cnpjWsProvider) FetchData(ctx context.Context, cnpj string) (*entity.Organization, error) {
	url := strings.TrimSuffix(p.baseURL, "/") + "/cnpj/" + cnpj

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
		var payload cnpjWsResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, errors.Wrap(err, "decode cnpjws response")
		}

		return payload.toDomain(), nil
	}

	var payload cnpjWsError
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, domainerrors.ErrValidationFailed.WithDetails(payload.Detalhes)
	case http.StatusTooManyRequests:
		return nil, domainerrors.NewBaseError(
			http.StatusTooManyRequests,
			"CNPJ_REGISTRY_THROTTLED",
			"O serviço de consulta de CNPJ está temporariamente indisponível.",
			payload.Detalhes,
		)
	default:
		return nil, errors.Errorf("cnpjws returned status %d", resp.StatusCode)
	}
}

func (r *cnpjWsResponse) toDomain() *entity.Organization {
	est := r.Estabelecimento

	phone2 := ""
	if est.Ddd2 != "" && est.Telefone2 != "" {
		phone2 = est.Ddd2 + est.Telefone2
	}

	return &entity.Organization{
		CNPJ:          est.Cnpj,
		CorporateName: r.RazaoSocial,
		BusinessName:  est.NomeFantasia,
		Address: entity.Address{
			Street:         est.Logradouro,
			Number:         est.Numero,
			AdditionalInfo: est.Complemento,
			District:       est.Bairro,
			City:           est.Cidade.Nome,
			State:          strings.ToLower(est.Estado.Sigla),
			PostalCode:     est.Cep,
		},
		Phone1: est.Ddd1 + est.Telefone1,
		Phone2: phone2,
	}
}
