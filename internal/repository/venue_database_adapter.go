package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"showcase/internal/domain"
	"showcase/internal/repository/models"
	"showcase/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	venueColumns = "id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description"

	venueSummarySelect = `SELECT v.id, v.name, v.city, v.state,
		(SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time >= :1) AS num_upcoming_shows
		FROM venues v`
)

// VenueDatabaseAdapter implements domain.VenueRepository on Oracle
type VenueDatabaseAdapter struct {
	db *sqlx.DB
}

// NewVenueDatabaseAdapter creates a new venue repository
func NewVenueDatabaseAdapter(db *sqlx.DB) domain.VenueRepository {
	return &VenueDatabaseAdapter{db: db}
}

// ListVenueSummaries returns every venue ordered by state, city and id, counting shows
// that start at or after upcomingFrom.
func (r *VenueDatabaseAdapter) ListVenueSummaries(ctx context.Context, upcomingFrom time.Time) ([]domain.VenueSummary, error) {
	query := venueSummarySelect + " ORDER BY v.state, v.city, v.id"
	return r.selectSummaries(ctx, query, upcomingFrom)
}

func (r *VenueDatabaseAdapter) SearchVenues(ctx context.Context, term string, upcomingFrom time.Time) ([]domain.VenueSummary, error) {
	query := venueSummarySelect + ` WHERE LOWER(v.name) LIKE :2 ESCAPE '\' ORDER BY v.id`
	return r.selectSummaries(ctx, query, upcomingFrom, likePattern(term))
}

func (r *VenueDatabaseAdapter) selectSummaries(ctx context.Context, query string, args ...interface{}) ([]domain.VenueSummary, error) {
	var rows []models.Summary
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select venues: %w", err)
	}

	summaries := make([]domain.VenueSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.VenueSummary{
			ID:               row.ID,
			Name:             row.Name,
			City:             row.City,
			State:            row.State,
			NumUpcomingShows: row.NumUpcomingShows,
		}
	}
	return summaries, nil
}

func (r *VenueDatabaseAdapter) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	var row models.Venue
	query := "SELECT " + venueColumns + " FROM venues WHERE id = :1"
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	return toDomainVenue(row), nil
}

func (r *VenueDatabaseAdapter) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	exec := GetExecutor(ctx, r.db)

	var id int64
	if err := exec.GetContext(ctx, &id, "SELECT venues_seq.NEXTVAL FROM dual"); err != nil {
		return fmt.Errorf("failed to allocate venue id: %w", err)
	}

	query := `INSERT INTO venues (` + venueColumns + `)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12)`
	_, err := exec.ExecContext(ctx, query,
		id,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		util.StringToNullString(venue.Phone),
		models.StringSlice(venue.Genres),
		util.StringToNullString(venue.ImageLink),
		util.StringToNullString(venue.FacebookLink),
		util.StringToNullString(venue.Website),
		util.BoolToInt(venue.SeekingTalent),
		util.StringToNullString(venue.SeekingDescription),
	)
	if err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}
	venue.ID = id
	return nil
}

// UpdateVenue patches a venue. Optional text columns carry a presence flag so an
// empty value clears them; required ones keep their stored value when NULL.
func (r *VenueDatabaseAdapter) UpdateVenue(ctx context.Context, id int64, patch domain.VenuePatch) (bool, error) {
	query := `UPDATE venues SET
		name = COALESCE(:1, name),
		city = COALESCE(:2, city),
		state = COALESCE(:3, state),
		address = COALESCE(:4, address),
		phone = DECODE(:5, 1, :6, phone),
		genres = NVL(:7, genres),
		image_link = DECODE(:8, 1, :9, image_link),
		facebook_link = DECODE(:10, 1, :11, facebook_link),
		website = DECODE(:12, 1, :13, website),
		seeking_talent = COALESCE(:14, seeking_talent),
		seeking_description = DECODE(:15, 1, :16, seeking_description)
		WHERE id = :17`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		util.StringPtrToNullString(patch.Name),
		util.StringPtrToNullString(patch.City),
		util.StringPtrToNullString(patch.State),
		util.StringPtrToNullString(patch.Address),
		util.IsSet(patch.Phone), util.StringPtrToNullString(patch.Phone),
		genresArg(patch.Genres),
		util.IsSet(patch.ImageLink), util.StringPtrToNullString(patch.ImageLink),
		util.IsSet(patch.FacebookLink), util.StringPtrToNullString(patch.FacebookLink),
		util.IsSet(patch.Website), util.StringPtrToNullString(patch.Website),
		util.BoolPtrToNullInt64(patch.SeekingTalent),
		util.IsSet(patch.SeekingDescription), util.StringPtrToNullString(patch.SeekingDescription),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update venue %d: %w", id, err)
	}
	return affected(result)
}

func (r *VenueDatabaseAdapter) DeleteVenue(ctx context.Context, id int64) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM venues WHERE id = :1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete venue %d: %w", id, err)
	}
	return affected(result)
}

// genresArg binds a genre patch; a nil slice binds NULL so the stored value is kept.
func genresArg(genres []string) interface{} {
	if genres == nil {
		return nil
	}
	return models.StringSlice(genres)
}

func toDomainVenue(m models.Venue) *domain.Venue {
	return &domain.Venue{
		ID:                 m.ID,
		Name:               m.Name,
		City:               m.City,
		State:              m.State,
		Address:            m.Address,
		Phone:              m.Phone.String,
		Genres:             []string(m.Genres),
		ImageLink:          m.ImageLink.String,
		FacebookLink:       m.FacebookLink.String,
		Website:            m.Website.String,
		SeekingTalent:      m.SeekingTalent == 1,
		SeekingDescription: m.SeekingDescription.String,
	}
}
