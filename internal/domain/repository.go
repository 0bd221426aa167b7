package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate is returned by repositories when a unique constraint is violated.
var ErrDuplicate = errors.New("duplicate record")

// QuestionRepository defines the interface for question persistence.
// Lookups of a single question return nil, nil when it does not exist.
type QuestionRepository interface {
	// ListQuestions returns every question ordered by id
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	// SearchQuestions returns questions whose text contains term, ignoring case
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	// CreateQuestion persists q and sets its storage-assigned id
	CreateQuestion(ctx context.Context, q *Question) error
	// UpdateQuestion applies patch in a single statement. It reports false when no
	// question has the id.
	UpdateQuestion(ctx context.Context, id int64, patch QuestionPatch) (bool, error)
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	SaveCategory(ctx context.Context, category *Category) error
}

// VenueRepository defines the interface for venue persistence.
// upcomingFrom is the instant from which a show counts as upcoming.
type VenueRepository interface {
	ListVenueSummaries(ctx context.Context, upcomingFrom time.Time) ([]VenueSummary, error)
	SearchVenues(ctx context.Context, term string, upcomingFrom time.Time) ([]VenueSummary, error)
	GetVenue(ctx context.Context, id int64) (*Venue, error)
	CreateVenue(ctx context.Context, venue *Venue) error
	UpdateVenue(ctx context.Context, id int64, patch VenuePatch) (bool, error)
	DeleteVenue(ctx context.Context, id int64) (bool, error)
}

// ArtistSummary is the short form of an artist used in listings and search results
type ArtistSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// ArtistRepository defines the interface for artist persistence
type ArtistRepository interface {
	ListArtists(ctx context.Context) ([]ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, upcomingFrom time.Time) ([]ArtistSummary, error)
	GetArtist(ctx context.Context, id int64) (*Artist, error)
	CreateArtist(ctx context.Context, artist *Artist) error
	UpdateArtist(ctx context.Context, id int64, patch ArtistPatch) (bool, error)
	DeleteArtist(ctx context.Context, id int64) (bool, error)
}

// ShowRepository defines the interface for show persistence
type ShowRepository interface {
	ListShowsByVenue(ctx context.Context, venueID int64) ([]ShowListing, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]ShowListing, error)
	ListUpcomingShows(ctx context.Context, upcomingFrom time.Time) ([]ShowListing, error)
	CreateShow(ctx context.Context, show *Show) error
	DeleteShowsByVenue(ctx context.Context, venueID int64) error
	DeleteShowsByArtist(ctx context.Context, artistID int64) error
}

// DrinkRepository defines the interface for drink persistence.
// CreateDrink and UpdateDrink return ErrDuplicate when the title is taken.
type DrinkRepository interface {
	ListDrinks(ctx context.Context) ([]Drink, error)
	GetDrink(ctx context.Context, id string) (*Drink, error)
	CreateDrink(ctx context.Context, drink *Drink) error
	UpdateDrink(ctx context.Context, id string, patch DrinkPatch) (*Drink, error)
	DeleteDrink(ctx context.Context, id string) (bool, error)
}

// TransactionManager runs fn inside a database transaction carried by ctx
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
