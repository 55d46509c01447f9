package handler

import (
	"log/slog"
	"net/http"

	"estagiohub/internal/delivery/http/response"
	"estagiohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrganizationHandler holds dependencies for company lookup handlers.
type OrganizationHandler struct {
	uc     usecase.OrganizationUsecase
	logger *slog.Logger
}

// NewOrganizationHandler is the constructor for OrganizationHandler, injected by Fx.
func NewOrganizationHandler(uc usecase.OrganizationUsecase, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		uc:     uc,
		logger: logger,
	}
}

type organizationDetailView struct {
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	BusinessName  string `json:"business_name"`
	Street        string `json:"street"`
	Number        string `json:"number"`
	District      string `json:"district"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Phone1        string `json:"phone1,omitempty"`
	Phone2        string `json:"phone2,omitempty"`
	Website       string `json:"website,omitempty"`
}

// GetByCnpj resolves a CNPJ to company data through the registry chain.
func (h *OrganizationHandler) GetByCnpj(c echo.Context) error {
	organization, err := h.uc.FindByCnpj(c.Request().Context(), c.Param("cnpj"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, organizationDetailView{
		CNPJ:          organization.CNPJ,
		CorporateName: organization.CorporateName,
		BusinessName:  organization.BusinessName,
		Street:        organization.Address.Street,
		Number:        organization.Address.Number,
		District:      organization.Address.District,
		City:          organization.Address.City,
		State:         organization.Address.State,
		PostalCode:    organization.Address.PostalCode,
		Phone1:        organization.Phone1,
		Phone2:        organization.Phone2,
		Website:       organization.Website,
	}, "")
}
