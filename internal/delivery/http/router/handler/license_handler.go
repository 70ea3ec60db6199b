package handler

import (
	"net/http"
	"strconv"

	"dashbi/internal/delivery/http/response"
	"dashbi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LicenseHandler holds dependencies for the point-of-sale license handlers.
type LicenseHandler struct {
	uc usecase.LicenseUsecase
}

// NewLicenseHandler is the constructor for LicenseHandler, injected by Fx.
func NewLicenseHandler(uc usecase.LicenseUsecase) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// ListLicenses returns one page of matriz license rows with their branches.
func (h *LicenseHandler) ListLicenses(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListLicenses(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
