package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/catalog"
	"github.com/jhoicas/Inventario-console/internal/application/dto"
	domcatalog "github.com/jhoicas/Inventario-console/internal/domain/catalog"
)

// CategoryHandler editor del árbol de categorías (protegido).
type CategoryHandler struct {
	uc *catalog.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *catalog.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Tree godoc
// @Summary      Árbol de categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryTreeResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.GetTree(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Filas visibles del árbol
// @Description  Solo se listan los hijos de los nodos expandidos.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        expanded  query     string  false  "IDs expandidos separados por coma"
// @Param        selected  query     string  false  "IDs seleccionados separados por coma"
// @Success      200       {object}  dto.CategoryViewResponse
// @Router       /api/categories/view [get]
func (h *CategoryHandler) View(c *fiber.Ctx) error {
	expanded := domcatalog.ParseIDSet(c.Query("expanded"))
	selected := domcatalog.ParseIDSet(c.Query("selected"))
	out, err := h.uc.View(c.UserContext(), GetSession(c), expanded, selected)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Opciones de categoría padre
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryOptionResponse
// @Router       /api/categories/options [get]
func (h *CategoryHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.ParentOptions(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Nueva categoría"
// @Success      201   {object}  dto.CategoryTreeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Create(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Merge godoc
// @Summary      Combinar categorías
// @Description  Reemplaza dos o más categorías por una nueva.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.MergeCategoriesRequest  true  "Selección y nueva categoría"
// @Success      200   {object}  dto.MergeCategoriesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/merge [post]
func (h *CategoryHandler) Merge(c *fiber.Ctx) error {
	var in dto.MergeCategoriesRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Merge(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar categorías
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RenameCategoriesRequest  true  "Selección y nuevo nombre"
// @Success      200   {object}  dto.CategoryTreeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/rename [post]
func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameCategoriesRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Rename(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categorías
// @Description  Elimina cada id por separado y devuelve el resultado de cada uno.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        ids  query     string  true  "IDs separados por coma"
// @Success      200  {object}  dto.DeleteCategoriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ids := domcatalog.ParseIDSet(c.Query("ids"))
	out, err := h.uc.Delete(c.UserContext(), GetSession(c), ids.Slice())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
