package handler

import (
	"showcase/internal/dto"
	"showcase/internal/middleware"
	"showcase/internal/service"
	"showcase/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles venue, artist and show HTTP requests
type BookingHandler struct {
	service   service.BookingService
	validator *validation.Validator
}

// NewBookingHandler creates a new BookingHandler instance
func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service, validator: validation.NewValidator()}
}

// ListVenues godoc
// @Summary List venues grouped by city and state
// @Tags booking
// @Produce json
// @Success 200 {array} dto.AreaResponse
// @Router /venues [get]
func (h *BookingHandler) ListVenues(c *fiber.Ctx) error {
	areas, err := h.service.ListVenueAreas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(areas)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchResponse
// @Router /venues/search [post]
func (h *BookingHandler) SearchVenues(c *fiber.Ctx) error {
	term, err := h.searchTerm(c)
	if err != nil {
		return err
	}
	resp, err := h.service.SearchVenues(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetVenue godoc
// @Summary Get a venue with its past and upcoming shows
// @Tags booking
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.VenueResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /venues/{id} [get]
func (h *BookingHandler) GetVenue(c *fiber.Ctx) error {
	resp, err := h.service.GetVenue(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.VenueRequest true "Venue"
// @Success 201 {object} dto.VenueResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /venues [post]
func (h *BookingHandler) CreateVenue(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateVenue(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateVenue godoc
// @Summary Patch a venue
// @Tags booking
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body dto.VenuePatchRequest true "Changes"
// @Success 200 {object} dto.VenueResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /venues/{id} [patch]
func (h *BookingHandler) UpdateVenue(c *fiber.Ctx) error {
	var req dto.VenuePatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.UpdateVenue(c.UserContext(), middleware.ValidatedID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteVenue godoc
// @Summary Delete a venue and its shows
// @Tags booking
// @Param id path int true "Venue ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /venues/{id} [delete]
func (h *BookingHandler) DeleteVenue(c *fiber.Ctx) error {
	if err := h.service.DeleteVenue(c.UserContext(), middleware.ValidatedID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListArtists godoc
// @Summary List artists
// @Tags booking
// @Produce json
// @Success 200 {array} dto.SummaryResponse
// @Router /artists [get]
func (h *BookingHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(artists)
}

// SearchArtists godoc
// @Summary Search artists by name
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchResponse
// @Router /artists/search [post]
func (h *BookingHandler) SearchArtists(c *fiber.Ctx) error {
	term, err := h.searchTerm(c)
	if err != nil {
		return err
	}
	resp, err := h.service.SearchArtists(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetArtist godoc
// @Summary Get an artist with past and upcoming shows
// @Tags booking
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} dto.ArtistResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /artists/{id} [get]
func (h *BookingHandler) GetArtist(c *fiber.Ctx) error {
	resp, err := h.service.GetArtist(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.ArtistRequest true "Artist"
// @Success 201 {object} dto.ArtistResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /artists [post]
func (h *BookingHandler) CreateArtist(c *fiber.Ctx) error {
	var req dto.ArtistRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateArtist(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateArtist godoc
// @Summary Patch an artist
// @Tags booking
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body dto.ArtistPatchRequest true "Changes"
// @Success 200 {object} dto.ArtistResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /artists/{id} [patch]
func (h *BookingHandler) UpdateArtist(c *fiber.Ctx) error {
	var req dto.ArtistPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.UpdateArtist(c.UserContext(), middleware.ValidatedID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteArtist godoc
// @Summary Delete an artist and its shows
// @Tags booking
// @Param id path int true "Artist ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /artists/{id} [delete]
func (h *BookingHandler) DeleteArtist(c *fiber.Ctx) error {
	if err := h.service.DeleteArtist(c.UserContext(), middleware.ValidatedID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListShows godoc
// @Summary List upcoming shows
// @Tags booking
// @Produce json
// @Success 200 {array} dto.ShowResponse
// @Router /shows [get]
func (h *BookingHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListUpcomingShows(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(shows)
}

// CreateShow godoc
// @Summary Book a show
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.ShowRequest true "Show"
// @Success 201
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /shows [post]
func (h *BookingHandler) CreateShow(c *fiber.Ctx) error {
	var req dto.ShowRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.service.CreateShow(c.UserContext(), &req); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *BookingHandler) searchTerm(c *fiber.Ctx) (string, error) {
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return "", err
	}
	if errs := h.validator.ValidateSearchTerm("search_term", req.SearchTerm); len(errs) > 0 {
		return "", errs
	}
	return req.SearchTerm, nil
}
