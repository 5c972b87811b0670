package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/inventory"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/catalog"
)

// WarehouseHandler bodegas y sus pantallas de inventario (protegido).
type WarehouseHandler struct {
	uc    *usecase.WarehouseUseCase
	items *inventory.ItemsUseCase
	txs   *inventory.TransactionsUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, items *inventory.ItemsUseCase, txs *inventory.TransactionsUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, items: items, txs: txs}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ficha de la bodega
// @Description  Actualización parcial: los campos omitidos conservan su valor.
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "ID de la bodega"
// @Param        body  body      dto.UpdateWarehouseRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Ítems de la bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseItemsResponse
// @Router       /api/warehouses/{id}/items [get]
func (h *WarehouseHandler) Items(c *fiber.Ctx) error {
	out, err := h.items.WarehouseItems(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Sugerencias de productos de la bodega
// @Description  Coincidencia por nombre sin distinguir mayúsculas ni tildes.
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id       path      string  true   "ID de la bodega"
// @Param        q        query     string  false  "Texto a buscar"
// @Param        exclude  query     string  false  "productIds ya elegidos, separados por coma"
// @Success      200      {array}   dto.InventoryItemResponse
// @Router       /api/warehouses/{id}/suggestions [get]
func (h *WarehouseHandler) Suggestions(c *fiber.Ctx) error {
	exclude := catalog.ParseIDSet(c.Query("exclude"))
	out, err := h.items.Suggestions(c.UserContext(), GetSession(c), c.Params("id"), c.Query("q"), exclude)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddToStore godoc
// @Summary      Dar de alta variantes en la bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID de la bodega"
// @Param        body  body      dto.AddToStoreRequest  true  "Productos y variantes"
// @Success      201   {object}  dto.AddToStoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/items [post]
func (h *WarehouseHandler) AddToStore(c *fiber.Ctx) error {
	var in dto.AddToStoreRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.items.AddToStore(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Monitoring godoc
// @Summary      Niveles de stock de la bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la bodega"
// @Success      200  {object}  dto.MonitoringResponse
// @Router       /api/warehouses/{id}/monitoring [get]
func (h *WarehouseHandler) Monitoring(c *fiber.Ctx) error {
	out, err := h.items.Monitoring(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Historial de transacciones
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true   "ID de la bodega"
// @Param        q    query     string  false  "Filtro por tipo, notas o id"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/warehouses/{id}/transactions [get]
func (h *WarehouseHandler) Transactions(c *fiber.Ctx) error {
	out, err := h.txs.List(c.UserContext(), GetSession(c), c.Params("id"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
