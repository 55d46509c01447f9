package organization

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "estagiohub/internal/domain/errors"
)

const testCnpj = "11222333000181"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestChainResolver_PrimarySuccess(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/v1/"+testCnpj, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cnpj": "11222333000181",
			"razao_social": "Aurora Sistemas de Informação LTDA",
			"nome_fantasia": "Aurora Sistemas",
			"logradouro": "Rua das Palmeiras",
			"numero": "1200",
			"bairro": "Centro",
			"municipio": "Bauru",
			"uf": "SP",
			"cep": "17010000",
			"ddd_telefone_1": "1432215500"
		}`))
	}))
	defer primary.Close()

	fallbackCalled := false
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fallbackCalled = true
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer fallback.Close()

	resolver := NewChainResolver(
		discardLogger(),
		NewBrasilAPIProvider(primary.URL, primary.Client()),
		NewCnpjWsProvider(fallback.URL, fallback.Client()),
	)

	org, err := resolver.FetchByCnpj(context.Background(), testCnpj)
	require.NoError(t, err)
	assert.False(t, fallbackCalled, "fallback must not be queried when the primary succeeds")
	assert.Equal(t, "Aurora Sistemas de Informação LTDA", org.CorporateName)
	assert.Equal(t, "sp", org.Address.State)
	assert.Equal(t, "1432215500", org.Phone1)
}

func TestChainResolver_FallsBackOnNotFound(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "CNPJ não encontrado"}`))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/"+testCnpj, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"razao_social": "Aurora Sistemas de Informação LTDA",
			"estabelecimento": {
				"cnpj": "11222333000181",
				"nome_fantasia": "Aurora Sistemas",
				"logradouro": "Rua das Palmeiras",
				"numero": "1200",
				"bairro": "Centro",
				"cep": "17010000",
				"ddd1": "14",
				"telefone1": "32215500",
				"cidade": {"nome": "Bauru"},
				"estado": {"sigla": "SP"}
			}
		}`))
	}))
	defer fallback.Close()

	resolver := NewChainResolver(
		discardLogger(),
		NewBrasilAPIProvider(primary.URL, primary.Client()),
		NewCnpjWsProvider(fallback.URL, fallback.Client()),
	)

	org, err := resolver.FetchByCnpj(context.Background(), testCnpj)
	require.NoError(t, err)
	assert.Equal(t, "Aurora Sistemas", org.BusinessName)
	// Phone is the DDD concatenated with the number.
	assert.Equal(t, "1432215500", org.Phone1)
	assert.Empty(t, org.Phone2)
}

func TestChainResolver_ExhaustionSurfacesLastError(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "CNPJ não encontrado"}`))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detalhes": "Limite de consultas atingido"}`))
	}))
	defer fallback.Close()

	resolver := NewChainResolver(
		discardLogger(),
		NewBrasilAPIProvider(primary.URL, primary.Client()),
		NewCnpjWsProvider(fallback.URL, fallback.Client()),
	)

	_, err := resolver.FetchByCnpj(context.Background(), testCnpj)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	// The fallback's throttling error is the last one and wins.
	assert.Equal(t, "CNPJ_REGISTRY_THROTTLED", appErr.ErrorCode())
	assert.Equal(t, "Limite de consultas atingido", appErr.Details())
}

func TestChainResolver_EmptyChain(t *testing.T) {
	resolver := NewChainResolver(discardLogger())

	_, err := resolver.FetchByCnpj(context.Background(), testCnpj)
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestFixtureResolver(t *testing.T) {
	resolver := NewFixtureResolver()

	org, err := resolver.FetchByCnpj(context.Background(), testCnpj)
	require.NoError(t, err)
	assert.Equal(t, "Aurora Sistemas", org.BusinessName)

	_, err = resolver.FetchByCnpj(context.Background(), "00000000000000")
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}
