package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"showcase/internal/domain"
	"showcase/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingMocks struct {
	venues    *MockVenueRepository
	artists   *MockArtistRepository
	shows     *MockShowRepository
	tx        *MockTransactionManager
	publisher *MockEventPublisher
}

var fixedNow = time.Date(2026, 5, 21, 15, 0, 0, 0, time.UTC)

func newBookingServiceForTest() (BookingService, bookingMocks) {
	m := bookingMocks{
		venues:    new(MockVenueRepository),
		artists:   new(MockArtistRepository),
		shows:     new(MockShowRepository),
		tx:        new(MockTransactionManager),
		publisher: new(MockEventPublisher),
	}
	svc := NewBookingService(m.venues, m.artists, m.shows, m.tx, m.publisher,
		WithClock(func() time.Time { return fixedNow }))
	return svc, m
}

func TestBookingService_ListVenueAreas(t *testing.T) {
	svc, m := newBookingServiceForTest()
	ctx := context.Background()

	m.venues.On("ListVenueSummaries", ctx, domain.StartOfDay(fixedNow)).Return([]domain.VenueSummary{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumUpcomingShows: 0},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square Live", City: "San Francisco", State: "CA", NumUpcomingShows: 2},
	}, nil)

	areas, err := svc.ListVenueAreas(ctx)

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "CA", areas[0].State)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, 2, areas[0].Venues[1].NumUpcomingShows)
	assert.Equal(t, "New York", areas[1].City)
}

func TestBookingService_GetVenue_SplitsShows(t *testing.T) {
	svc, m := newBookingServiceForTest()
	ctx := context.Background()

	m.venues.On("GetVenue", mock.Anything, int64(1)).Return(&domain.Venue{ID: 1, Name: "The Musical Hop", Genres: []string{"Jazz"}}, nil)
	m.shows.On("ListShowsByVenue", mock.Anything, int64(1)).Return([]domain.ShowListing{
		{VenueID: 1, ArtistID: 4, ArtistName: "Guns N Petals", StartTime: fixedNow.AddDate(0, -1, 0)},
		{VenueID: 1, ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: fixedNow.Add(-10 * time.Hour)},
		{VenueID: 1, ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: fixedNow.AddDate(0, 1, 0)},
	}, nil)

	resp, err := svc.GetVenue(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.PastShowsCount)
	assert.Equal(t, 2, resp.UpcomingShowsCount)
	assert.Equal(t, int64(4), resp.PastShows[0].ArtistID)
	assert.Equal(t, int64(5), resp.UpcomingShows[0].ArtistID, "earlier today is still upcoming")
}

func TestBookingService_GetVenue_NotFound(t *testing.T) {
	svc, m := newBookingServiceForTest()

	m.venues.On("GetVenue", mock.Anything, int64(9)).Return(nil, nil)
	m.shows.On("ListShowsByVenue", mock.Anything, int64(9)).Return([]domain.ShowListing{}, nil)

	resp, err := svc.GetVenue(context.Background(), 9)

	assert.Nil(t, resp)
	assertDomainCode(t, err, domain.CodeNotFound)
}

func TestBookingService_GetArtist_RepoError(t *testing.T) {
	svc, m := newBookingServiceForTest()

	m.artists.On("GetArtist", mock.Anything, int64(4)).Return(nil, errors.New("connection reset"))
	m.shows.On("ListShowsByArtist", mock.Anything, int64(4)).Return([]domain.ShowListing{}, nil)

	_, err := svc.GetArtist(context.Background(), 4)

	assertDomainCode(t, err, domain.CodeInternal)
}

func TestBookingService_CreateVenue_Invalid(t *testing.T) {
	svc, m := newBookingServiceForTest()

	_, err := svc.CreateVenue(context.Background(), &dto.VenueRequest{Name: "  ", City: "Austin", State: "TX"})

	var validationErrs domain.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 2)
	m.venues.AssertNotCalled(t, "CreateVenue", mock.Anything, mock.Anything)
}

func TestBookingService_DeleteVenue(t *testing.T) {
	svc, m := newBookingServiceForTest()
	ctx := context.Background()

	m.tx.On("WithTransaction", ctx).Return(nil)
	m.shows.On("DeleteShowsByVenue", ctx, int64(1)).Return(nil)
	m.venues.On("DeleteVenue", ctx, int64(1)).Return(true, nil)
	m.publisher.On("Publish", ctx, eventOfType(domain.EventVenueDeleted)).Return(nil)

	require.NoError(t, svc.DeleteVenue(ctx, 1))
	m.tx.AssertExpectations(t)
	m.shows.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestBookingService_DeleteArtist_NotFound(t *testing.T) {
	svc, m := newBookingServiceForTest()
	ctx := context.Background()

	m.tx.On("WithTransaction", ctx).Return(nil)
	m.shows.On("DeleteShowsByArtist", ctx, int64(8)).Return(nil)
	m.artists.On("DeleteArtist", ctx, int64(8)).Return(false, nil)

	err := svc.DeleteArtist(ctx, 8)

	assertDomainCode(t, err, domain.CodeNotFound)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookingService_CreateShow(t *testing.T) {
	start := fixedNow.AddDate(0, 0, 7)
	ctx := context.Background()

	t.Run("missing venue and artist", func(t *testing.T) {
		svc, m := newBookingServiceForTest()
		m.venues.On("GetVenue", ctx, int64(1)).Return(nil, nil)
		m.artists.On("GetArtist", ctx, int64(2)).Return(nil, nil)

		err := svc.CreateShow(ctx, &dto.ShowRequest{VenueID: 1, ArtistID: 2, StartTime: start})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Len(t, validationErrs, 2)
		m.shows.AssertNotCalled(t, "CreateShow", mock.Anything, mock.Anything)
	})

	t.Run("already booked", func(t *testing.T) {
		svc, m := newBookingServiceForTest()
		m.venues.On("GetVenue", ctx, int64(1)).Return(&domain.Venue{ID: 1}, nil)
		m.artists.On("GetArtist", ctx, int64(2)).Return(&domain.Artist{ID: 2}, nil)
		m.shows.On("CreateShow", ctx, mock.AnythingOfType("*domain.Show")).Return(domain.ErrDuplicate)

		err := svc.CreateShow(ctx, &dto.ShowRequest{VenueID: 1, ArtistID: 2, StartTime: start})

		assertDomainCode(t, err, domain.CodeConflict)
	})

	t.Run("booked", func(t *testing.T) {
		svc, m := newBookingServiceForTest()
		m.venues.On("GetVenue", ctx, int64(1)).Return(&domain.Venue{ID: 1, Name: "The Musical Hop"}, nil)
		m.artists.On("GetArtist", ctx, int64(2)).Return(&domain.Artist{ID: 2, Name: "Guns N Petals"}, nil)
		m.shows.On("CreateShow", ctx, &domain.Show{VenueID: 1, ArtistID: 2, StartTime: start}).Return(nil)
		m.publisher.On("Publish", ctx, eventOfType(domain.EventShowCreated)).Return(nil)

		require.NoError(t, svc.CreateShow(ctx, &dto.ShowRequest{VenueID: 1, ArtistID: 2, StartTime: start}))
		m.shows.AssertExpectations(t)
		m.publisher.AssertExpectations(t)
	})

	t.Run("missing start time", func(t *testing.T) {
		svc, m := newBookingServiceForTest()

		err := svc.CreateShow(ctx, &dto.ShowRequest{VenueID: 1, ArtistID: 2})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "start_time", validationErrs[0].Field)
		m.venues.AssertNotCalled(t, "GetVenue", mock.Anything, mock.Anything)
	})
}

func TestBookingService_SearchArtists(t *testing.T) {
	svc, m := newBookingServiceForTest()
	ctx := context.Background()

	m.artists.On("SearchArtists", ctx, "A", domain.StartOfDay(fixedNow)).Return([]domain.ArtistSummary{
		{ID: 4, Name: "Guns N Petals", NumUpcomingShows: 1},
		{ID: 5, Name: "Matt Quevedo"},
	}, nil)

	resp, err := svc.SearchArtists(ctx, "A")

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Guns N Petals", resp.Data[0].Name)
}
