package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/inventory"
)

// CatalogHandler catálogo del vendedor para el alta de variantes (protegido).
type CatalogHandler struct {
	uc *inventory.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *inventory.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products godoc
// @Summary      Catálogo del vendedor
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q             query     string  false  "Nombre o marca"
// @Param        warehouse_id  query     string  false  "Marca las variantes que la bodega ya tiene"
// @Success      200           {object}  dto.CatalogResponse
// @Failure      502           {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.UserContext(), GetSession(c), c.Query("warehouse_id"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WarehouseCatalog godoc
// @Summary      Catálogo frente a una bodega
// @Description  Igual que /api/products con la bodega de la ruta.
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true   "ID de la bodega"
// @Param        q    query     string  false  "Nombre o marca"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/catalog [get]
func (h *CatalogHandler) WarehouseCatalog(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.UserContext(), GetSession(c), c.Params("id"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
