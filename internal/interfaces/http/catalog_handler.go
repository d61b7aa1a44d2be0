package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-admin-api/internal/application/catalog"
	"github.com/jhoicas/pdv-admin-api/internal/application/dto"
)

// CatalogHandler sirve los catálogos de referencia del formulario de productos.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Catalog godoc
// @Summary      Proveedores, categorías y unidades de la empresa
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Catalog(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
