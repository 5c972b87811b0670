package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/inventory"
)

// StockHandler entradas, salidas y ajustes (protegido).
type StockHandler struct {
	in     *inventory.StockInUseCase
	out    *inventory.StockOutUseCase
	adjust *inventory.AdjustUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(in *inventory.StockInUseCase, out *inventory.StockOutUseCase, adjust *inventory.AdjustUseCase) *StockHandler {
	return &StockHandler{in: in, out: out, adjust: adjust}
}

// PreviewStockIn godoc
// @Summary      Vista previa del prorrateo
// @Description  Calcula el reparto de cargos sin registrar nada.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockInRequest  true  "Entrada"
// @Success      200   {object}  dto.StockInResponse
// @Router       /api/stock-in/preview [post]
func (h *StockHandler) PreviewStockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	return c.JSON(h.in.Preview(in))
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Description  El prorrateo se recalcula en el servidor; se ignoran las asignaciones enviadas.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockInRequest  true  "Entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.in.Submit(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CostSheet godoc
// @Summary      Hoja de costos en PDF
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body      dto.StockInRequest  true  "Entrada"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-in/cost-sheet [post]
func (h *StockHandler) CostSheet(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	doc, err := h.in.CostSheet(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	name := "hoja-costos.pdf"
	if in.BatchNumber != "" {
		name = fmt.Sprintf("hoja-costos-%s.pdf", in.BatchNumber)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(doc)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Cada cantidad se limita a la existencia actual del ítem (mínimo 1).
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockOutRequest  true  "Salida"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.out.Submit(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Adjust godoc
// @Summary      Ajustar niveles de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AdjustmentRequest  true  "Niveles absolutos"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.adjust.Submit(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
