package service

import (
	"context"
	"os"
	"testing"
	"time"

	"showcase/internal/config"
	"showcase/internal/domain"
	"showcase/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) UpdateQuestion(ctx context.Context, id int64, patch domain.QuestionPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- MockVenueRepository ---
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) ListVenueSummaries(ctx context.Context, upcomingFrom time.Time) ([]domain.VenueSummary, error) {
	args := m.Called(ctx, upcomingFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueSummary), args.Error(1)
}

func (m *MockVenueRepository) SearchVenues(ctx context.Context, term string, upcomingFrom time.Time) ([]domain.VenueSummary, error) {
	args := m.Called(ctx, term, upcomingFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueSummary), args.Error(1)
}

func (m *MockVenueRepository) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) UpdateVenue(ctx context.Context, id int64, patch domain.VenuePatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockVenueRepository) DeleteVenue(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockArtistRepository ---
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) ListArtists(ctx context.Context) ([]domain.ArtistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtistSummary), args.Error(1)
}

func (m *MockArtistRepository) SearchArtists(ctx context.Context, term string, upcomingFrom time.Time) ([]domain.ArtistSummary, error) {
	args := m.Called(ctx, term, upcomingFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtistSummary), args.Error(1)
}

func (m *MockArtistRepository) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) UpdateArtist(ctx context.Context, id int64, patch domain.ArtistPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) DeleteArtist(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockShowRepository ---
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) ListShowsByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowListing), args.Error(1)
}

func (m *MockShowRepository) ListShowsByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowListing), args.Error(1)
}

func (m *MockShowRepository) ListUpcomingShows(ctx context.Context, upcomingFrom time.Time) ([]domain.ShowListing, error) {
	args := m.Called(ctx, upcomingFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowListing), args.Error(1)
}

func (m *MockShowRepository) CreateShow(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepository) DeleteShowsByVenue(ctx context.Context, venueID int64) error {
	args := m.Called(ctx, venueID)
	return args.Error(0)
}

func (m *MockShowRepository) DeleteShowsByArtist(ctx context.Context, artistID int64) error {
	args := m.Called(ctx, artistID)
	return args.Error(0)
}

// --- MockDrinkRepository ---
type MockDrinkRepository struct {
	mock.Mock
}

func (m *MockDrinkRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) GetDrink(ctx context.Context, id string) (*domain.Drink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	args := m.Called(ctx, drink)
	return args.Error(0)
}

func (m *MockDrinkRepository) UpdateDrink(ctx context.Context, id string, patch domain.DrinkPatch) (*domain.Drink, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) DeleteDrink(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockTransactionManager runs fn inline ---
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// --- MockEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e domain.Event) bool { return e.Type == eventType })
}
