package service

import (
	"context"
	"errors"
	"time"

	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BookingService defines venue, artist and show operations
type BookingService interface {
	ListVenueAreas(ctx context.Context) ([]dto.AreaResponse, error)
	SearchVenues(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetVenue(ctx context.Context, id int64) (*dto.VenueResponse, error)
	CreateVenue(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error)
	UpdateVenue(ctx context.Context, id int64, req *dto.VenuePatchRequest) (*dto.VenueResponse, error)
	// DeleteVenue removes the venue together with its shows
	DeleteVenue(ctx context.Context, id int64) error

	ListArtists(ctx context.Context) ([]dto.SummaryResponse, error)
	SearchArtists(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetArtist(ctx context.Context, id int64) (*dto.ArtistResponse, error)
	CreateArtist(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error)
	UpdateArtist(ctx context.Context, id int64, req *dto.ArtistPatchRequest) (*dto.ArtistResponse, error)
	DeleteArtist(ctx context.Context, id int64) error

	ListUpcomingShows(ctx context.Context) ([]dto.ShowResponse, error)
	CreateShow(ctx context.Context, req *dto.ShowRequest) error
}

type bookingService struct {
	venues    domain.VenueRepository
	artists   domain.ArtistRepository
	shows     domain.ShowRepository
	txManager domain.TransactionManager
	publisher domain.EventPublisher
	now       func() time.Time
}

// BookingOption customizes a booking service
type BookingOption func(*bookingService)

// WithClock replaces time.Now as the reference for upcoming/past splits
func WithClock(now func() time.Time) BookingOption {
	return func(s *bookingService) { s.now = now }
}

// NewBookingService creates a new booking service
func NewBookingService(
	venues domain.VenueRepository,
	artists domain.ArtistRepository,
	shows domain.ShowRepository,
	txManager domain.TransactionManager,
	publisher domain.EventPublisher,
	opts ...BookingOption,
) BookingService {
	s := &bookingService{
		venues:    venues,
		artists:   artists,
		shows:     shows,
		txManager: txManager,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) upcomingFrom() time.Time {
	return domain.StartOfDay(s.now())
}

func (s *bookingService) ListVenueAreas(ctx context.Context) ([]dto.AreaResponse, error) {
	summaries, err := s.venues.ListVenueSummaries(ctx, s.upcomingFrom())
	if err != nil {
		return nil, domain.NewInternalError("Failed to list venues", err)
	}
	return dto.ToAreaResponses(domain.GroupVenuesByArea(summaries)), nil
}

func (s *bookingService) SearchVenues(ctx context.Context, term string) (*dto.SearchResponse, error) {
	summaries, err := s.venues.SearchVenues(ctx, term, s.upcomingFrom())
	if err != nil {
		return nil, domain.NewInternalError("Failed to search venues", err)
	}
	return &dto.SearchResponse{Count: len(summaries), Data: dto.ToSummaryResponses(summaries)}, nil
}

// GetVenue loads the venue and its shows concurrently
func (s *bookingService) GetVenue(ctx context.Context, id int64) (*dto.VenueResponse, error) {
	var (
		venue *domain.Venue
		shows []domain.ShowListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venue, err = s.venues.GetVenue(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shows, err = s.shows.ListShowsByVenue(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load venue", err)
	}
	if venue == nil {
		return nil, domain.NewNotFoundError("venue does not exist").WithContext("venue_id", id)
	}

	resp := dto.ToVenueResponse(*venue, domain.PartitionShows(shows, s.now()))
	return &resp, nil
}

func (s *bookingService) CreateVenue(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error) {
	venue := req.Venue()
	if err := venue.Validate(); err != nil {
		return nil, err
	}
	if err := s.venues.CreateVenue(ctx, &venue); err != nil {
		return nil, domain.NewInternalError("Failed to create venue", err)
	}
	logger.Get().Info("Venue created", zap.Int64("venue_id", venue.ID), zap.String("name", venue.Name))

	resp := dto.ToVenueResponse(venue, domain.PartitionShows(nil, s.now()))
	return &resp, nil
}

func (s *bookingService) UpdateVenue(ctx context.Context, id int64, req *dto.VenuePatchRequest) (*dto.VenueResponse, error) {
	patch, err := req.Patch()
	if err != nil {
		return nil, err
	}
	updated, err := s.venues.UpdateVenue(ctx, id, patch)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update venue", err)
	}
	if !updated {
		return nil, domain.NewNotFoundError("venue does not exist").WithContext("venue_id", id)
	}
	return s.GetVenue(ctx, id)
}

func (s *bookingService) DeleteVenue(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.shows.DeleteShowsByVenue(txCtx, id); err != nil {
			return err
		}
		deleted, err := s.venues.DeleteVenue(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError("venue does not exist").WithContext("venue_id", id)
		}
		return nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return domainErr
		}
		return domain.NewInternalError("Failed to delete venue", err)
	}

	logger.Get().Info("Venue deleted", zap.Int64("venue_id", id))
	publishEvent(ctx, s.publisher, domain.EventVenueDeleted, map[string]int64{"id": id})
	return nil
}

func (s *bookingService) ListArtists(ctx context.Context) ([]dto.SummaryResponse, error) {
	artists, err := s.artists.ListArtists(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list artists", err)
	}
	return dto.ToArtistSummaryResponses(artists), nil
}

func (s *bookingService) SearchArtists(ctx context.Context, term string) (*dto.SearchResponse, error) {
	artists, err := s.artists.SearchArtists(ctx, term, s.upcomingFrom())
	if err != nil {
		return nil, domain.NewInternalError("Failed to search artists", err)
	}
	return &dto.SearchResponse{Count: len(artists), Data: dto.ToArtistSummaryResponses(artists)}, nil
}

// GetArtist loads the artist and its shows concurrently
func (s *bookingService) GetArtist(ctx context.Context, id int64) (*dto.ArtistResponse, error) {
	var (
		artist *domain.Artist
		shows  []domain.ShowListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artist, err = s.artists.GetArtist(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shows, err = s.shows.ListShowsByArtist(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load artist", err)
	}
	if artist == nil {
		return nil, domain.NewNotFoundError("artist does not exist").WithContext("artist_id", id)
	}

	resp := dto.ToArtistResponse(*artist, domain.PartitionShows(shows, s.now()))
	return &resp, nil
}

func (s *bookingService) CreateArtist(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error) {
	artist := req.Artist()
	if err := artist.Validate(); err != nil {
		return nil, err
	}
	if err := s.artists.CreateArtist(ctx, &artist); err != nil {
		return nil, domain.NewInternalError("Failed to create artist", err)
	}
	logger.Get().Info("Artist created", zap.Int64("artist_id", artist.ID), zap.String("name", artist.Name))

	resp := dto.ToArtistResponse(artist, domain.PartitionShows(nil, s.now()))
	return &resp, nil
}

func (s *bookingService) UpdateArtist(ctx context.Context, id int64, req *dto.ArtistPatchRequest) (*dto.ArtistResponse, error) {
	patch, err := req.Patch()
	if err != nil {
		return nil, err
	}
	updated, err := s.artists.UpdateArtist(ctx, id, patch)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update artist", err)
	}
	if !updated {
		return nil, domain.NewNotFoundError("artist does not exist").WithContext("artist_id", id)
	}
	return s.GetArtist(ctx, id)
}

func (s *bookingService) DeleteArtist(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.shows.DeleteShowsByArtist(txCtx, id); err != nil {
			return err
		}
		deleted, err := s.artists.DeleteArtist(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError("artist does not exist").WithContext("artist_id", id)
		}
		return nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return domainErr
		}
		return domain.NewInternalError("Failed to delete artist", err)
	}

	logger.Get().Info("Artist deleted", zap.Int64("artist_id", id))
	publishEvent(ctx, s.publisher, domain.EventArtistDeleted, map[string]int64{"id": id})
	return nil
}

func (s *bookingService) ListUpcomingShows(ctx context.Context) ([]dto.ShowResponse, error) {
	shows, err := s.shows.ListUpcomingShows(ctx, s.upcomingFrom())
	if err != nil {
		return nil, domain.NewInternalError("Failed to list shows", err)
	}
	return dto.ToShowResponses(shows), nil
}

// CreateShow books a show; the venue and artist must both exist
func (s *bookingService) CreateShow(ctx context.Context, req *dto.ShowRequest) error {
	show := domain.Show{VenueID: req.VenueID, ArtistID: req.ArtistID, StartTime: req.StartTime}
	if err := show.Validate(); err != nil {
		return err
	}

	venue, err := s.venues.GetVenue(ctx, show.VenueID)
	if err != nil {
		return domain.NewInternalError("Failed to load venue", err)
	}
	artist, err := s.artists.GetArtist(ctx, show.ArtistID)
	if err != nil {
		return domain.NewInternalError("Failed to load artist", err)
	}

	var errs domain.ValidationErrors
	if venue == nil {
		errs = append(errs, domain.NewValidationError("venue_id", "venue does not exist"))
	}
	if artist == nil {
		errs = append(errs, domain.NewValidationError("artist_id", "artist does not exist"))
	}
	if len(errs) > 0 {
		return errs
	}

	if err := s.shows.CreateShow(ctx, &show); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.NewConflictError("show is already booked").
				WithContext("venue_id", show.VenueID).
				WithContext("artist_id", show.ArtistID)
		}
		return domain.NewInternalError("Failed to create show", err)
	}

	logger.Get().Info("Show created",
		zap.Int64("venue_id", show.VenueID),
		zap.Int64("artist_id", show.ArtistID),
		zap.Time("start_time", show.StartTime),
	)
	publishEvent(ctx, s.publisher, domain.EventShowCreated, dto.ShowResponse{
		VenueID:    venue.ID,
		VenueName:  venue.Name,
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		StartTime:  dto.FormatTime(show.StartTime),
	})
	return nil
}
