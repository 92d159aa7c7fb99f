package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/pricing"
)

// PriceHandler maneja las peticiones HTTP de precios de producto.
type PriceHandler struct {
	uc *pricing.UseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *pricing.UseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// AddPrice godoc
// @Summary      Agregar precio a un producto (default o por rango de fechas)
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AddPriceRequest  true  "Precio a agregar"
// @Success      201   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/prices [post]
func (h *PriceHandler) AddPrice(c *fiber.Ctx) error {
	var in dto.AddPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddPrice(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPriceForToday godoc
// @Summary      Precio vigente hoy para un producto
// @Tags         prices
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.PriceForTodayResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price-today [get]
func (h *PriceHandler) GetPriceForToday(c *fiber.Ctx) error {
	out, err := h.uc.GetPriceForToday(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar precios de un producto
// @Tags         prices
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.PriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/prices [get]
func (h *PriceHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
