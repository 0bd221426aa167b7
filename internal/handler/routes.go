package handler

import (
	"showcase/internal/middleware"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the API handlers mounted under /api
type Handlers struct {
	Trivia  *TriviaHandler
	Booking *BookingHandler
	Drinks  *DrinkHandler
}

// RegisterRoutes mounts every API route on router
func RegisterRoutes(router fiber.Router, h Handlers, authService service.AuthService) {
	v := middleware.NewValidationMiddleware()
	id := v.ValidateIDParam()

	router.Get("/categories", h.Trivia.GetCategories)
	router.Get("/categories/:id/questions", id, h.Trivia.GetCategoryQuestions)

	questions := router.Group("/questions")
	questions.Get("/", v.ValidatePageQuery(), h.Trivia.GetQuestions)
	questions.Post("/", h.Trivia.CreateQuestion)
	questions.Post("/search", h.Trivia.SearchQuestions)
	questions.Get("/filter", h.Trivia.FilterQuestions)
	questions.Get("/:id", id, h.Trivia.GetQuestion)
	questions.Patch("/:id", id, h.Trivia.UpdateQuestion)
	questions.Delete("/:id", id, h.Trivia.DeleteQuestion)

	router.Post("/quizzes", h.Trivia.PlayQuiz)

	venues := router.Group("/venues")
	venues.Get("/", h.Booking.ListVenues)
	venues.Post("/", h.Booking.CreateVenue)
	venues.Post("/search", h.Booking.SearchVenues)
	venues.Get("/:id", id, h.Booking.GetVenue)
	venues.Patch("/:id", id, h.Booking.UpdateVenue)
	venues.Delete("/:id", id, h.Booking.DeleteVenue)

	artists := router.Group("/artists")
	artists.Get("/", h.Booking.ListArtists)
	artists.Post("/", h.Booking.CreateArtist)
	artists.Post("/search", h.Booking.SearchArtists)
	artists.Get("/:id", id, h.Booking.GetArtist)
	artists.Patch("/:id", id, h.Booking.UpdateArtist)
	artists.Delete("/:id", id, h.Booking.DeleteArtist)

	router.Get("/shows", h.Booking.ListShows)
	router.Post("/shows", h.Booking.CreateShow)

	drinkID := v.ValidateDrinkIDParam()
	router.Get("/drinks", h.Drinks.ListDrinks)
	router.Get("/drinks-detail", middleware.RequiresPermission(authService, PermissionGetDrinksDetail), h.Drinks.ListDrinkDetails)
	router.Post("/drinks", middleware.RequiresPermission(authService, PermissionPostDrinks), h.Drinks.CreateDrink)
	router.Patch("/drinks/:id", middleware.RequiresPermission(authService, PermissionPatchDrinks), drinkID, h.Drinks.UpdateDrink)
	router.Delete("/drinks/:id", middleware.RequiresPermission(authService, PermissionDeleteDrinks), drinkID, h.Drinks.DeleteDrink)
}
