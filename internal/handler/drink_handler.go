package handler

import (
	"showcase/internal/dto"
	"showcase/internal/middleware"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Drink permissions carried in bearer tokens
const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

// DrinkHandler handles coffee shop menu HTTP requests
type DrinkHandler struct {
	service service.DrinkService
}

// NewDrinkHandler creates a new DrinkHandler instance
func NewDrinkHandler(service service.DrinkService) *DrinkHandler {
	return &DrinkHandler{service: service}
}

// ListDrinks godoc
// @Summary Public drink menu
// @Description Recipes omit ingredient names
// @Tags drinks
// @Produce json
// @Success 200 {object} dto.DrinksShortResponse
// @Router /drinks [get]
func (h *DrinkHandler) ListDrinks(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListDrinkDetails godoc
// @Summary Drink menu with full recipes
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /drinks-detail [get]
func (h *DrinkHandler) ListDrinkDetails(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinkDetails(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateDrink godoc
// @Summary Add a drink
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.DrinkRequest true "Drink"
// @Success 201 {object} dto.DrinksLongResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /drinks [post]
func (h *DrinkHandler) CreateDrink(c *fiber.Ctx) error {
	var req dto.DrinkRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateDrink(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateDrink godoc
// @Summary Patch a drink
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Drink ID"
// @Param request body dto.DrinkPatchRequest true "Changes"
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drinks/{id} [patch]
func (h *DrinkHandler) UpdateDrink(c *fiber.Ctx) error {
	var req dto.DrinkPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.UpdateDrink(c.UserContext(), middleware.ValidatedDrinkID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteDrink godoc
// @Summary Delete a drink
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Drink ID"
// @Success 200 {object} dto.DeleteDrinkResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drinks/{id} [delete]
func (h *DrinkHandler) DeleteDrink(c *fiber.Ctx) error {
	resp, err := h.service.DeleteDrink(c.UserContext(), middleware.ValidatedDrinkID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
