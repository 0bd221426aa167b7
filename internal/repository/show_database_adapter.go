package repository

import (
	"context"
	"fmt"
	"time"

	"showcase/internal/domain"
	"showcase/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const showListingSelect = `SELECT s.venue_id, v.name AS venue_name, v.image_link AS venue_image_link,
	s.artist_id, a.name AS artist_name, a.image_link AS artist_image_link, s.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowDatabaseAdapter implements domain.ShowRepository on Oracle
type ShowDatabaseAdapter struct {
	db *sqlx.DB
}

// NewShowDatabaseAdapter creates a new show repository
func NewShowDatabaseAdapter(db *sqlx.DB) domain.ShowRepository {
	return &ShowDatabaseAdapter{db: db}
}

func (r *ShowDatabaseAdapter) ListShowsByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	return r.selectListings(ctx, showListingSelect+" WHERE s.venue_id = :1 ORDER BY s.start_time", venueID)
}

func (r *ShowDatabaseAdapter) ListShowsByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	return r.selectListings(ctx, showListingSelect+" WHERE s.artist_id = :1 ORDER BY s.start_time", artistID)
}

// ListUpcomingShows returns shows starting at or after upcomingFrom, soonest first
func (r *ShowDatabaseAdapter) ListUpcomingShows(ctx context.Context, upcomingFrom time.Time) ([]domain.ShowListing, error) {
	return r.selectListings(ctx, showListingSelect+" WHERE s.start_time >= :1 ORDER BY s.start_time", upcomingFrom)
}

func (r *ShowDatabaseAdapter) selectListings(ctx context.Context, query string, args ...interface{}) ([]domain.ShowListing, error) {
	var rows []models.ShowListing
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shows: %w", err)
	}

	listings := make([]domain.ShowListing, len(rows))
	for i, row := range rows {
		listings[i] = domain.ShowListing{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			VenueImageLink:  row.VenueImageLink.String,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink.String,
			StartTime:       row.StartTime,
		}
	}
	return listings, nil
}

// CreateShow books a show. Booking the same artist at the same venue and time twice
// returns domain.ErrDuplicate.
func (r *ShowDatabaseAdapter) CreateShow(ctx context.Context, show *domain.Show) error {
	query := "INSERT INTO shows (venue_id, artist_id, start_time) VALUES (:1, :2, :3)"
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to insert show: %w", err)
	}
	return nil
}

func (r *ShowDatabaseAdapter) DeleteShowsByVenue(ctx context.Context, venueID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM shows WHERE venue_id = :1", venueID); err != nil {
		return fmt.Errorf("failed to delete shows of venue %d: %w", venueID, err)
	}
	return nil
}

func (r *ShowDatabaseAdapter) DeleteShowsByArtist(ctx context.Context, artistID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM shows WHERE artist_id = :1", artistID); err != nil {
		return fmt.Errorf("failed to delete shows of artist %d: %w", artistID, err)
	}
	return nil
}
