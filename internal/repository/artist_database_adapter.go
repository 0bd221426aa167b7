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

const artistColumns = "id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description"

// ArtistDatabaseAdapter implements domain.ArtistRepository on Oracle
type ArtistDatabaseAdapter struct {
	db *sqlx.DB
}

// NewArtistDatabaseAdapter creates a new artist repository
func NewArtistDatabaseAdapter(db *sqlx.DB) domain.ArtistRepository {
	return &ArtistDatabaseAdapter{db: db}
}

// ListArtists returns id and name of every artist; upcoming counts are not computed.
func (r *ArtistDatabaseAdapter) ListArtists(ctx context.Context) ([]domain.ArtistSummary, error) {
	var rows []models.Summary
	query := "SELECT id, name, city, state, 0 AS num_upcoming_shows FROM artists ORDER BY id"
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select artists: %w", err)
	}
	return toArtistSummaries(rows), nil
}

func (r *ArtistDatabaseAdapter) SearchArtists(ctx context.Context, term string, upcomingFrom time.Time) ([]domain.ArtistSummary, error) {
	var rows []models.Summary
	query := `SELECT a.id, a.name, a.city, a.state,
		(SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time >= :1) AS num_upcoming_shows
		FROM artists a WHERE LOWER(a.name) LIKE :2 ESCAPE '\' ORDER BY a.id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, upcomingFrom, likePattern(term)); err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return toArtistSummaries(rows), nil
}

func (r *ArtistDatabaseAdapter) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	var row models.Artist
	query := "SELECT " + artistColumns + " FROM artists WHERE id = :1"
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return toDomainArtist(row), nil
}

func (r *ArtistDatabaseAdapter) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	exec := GetExecutor(ctx, r.db)

	var id int64
	if err := exec.GetContext(ctx, &id, "SELECT artists_seq.NEXTVAL FROM dual"); err != nil {
		return fmt.Errorf("failed to allocate artist id: %w", err)
	}

	query := `INSERT INTO artists (` + artistColumns + `)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`
	_, err := exec.ExecContext(ctx, query,
		id,
		artist.Name,
		artist.City,
		artist.State,
		util.StringToNullString(artist.Phone),
		models.StringSlice(artist.Genres),
		util.StringToNullString(artist.ImageLink),
		util.StringToNullString(artist.FacebookLink),
		util.StringToNullString(artist.Website),
		util.BoolToInt(artist.SeekingVenue),
		util.StringToNullString(artist.SeekingDescription),
	)
	if err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}
	artist.ID = id
	return nil
}

func (r *ArtistDatabaseAdapter) UpdateArtist(ctx context.Context, id int64, patch domain.ArtistPatch) (bool, error) {
	query := `UPDATE artists SET
		name = COALESCE(:1, name),
		city = COALESCE(:2, city),
		state = COALESCE(:3, state),
		phone = DECODE(:4, 1, :5, phone),
		genres = NVL(:6, genres),
		image_link = DECODE(:7, 1, :8, image_link),
		facebook_link = DECODE(:9, 1, :10, facebook_link),
		website = DECODE(:11, 1, :12, website),
		seeking_venue = COALESCE(:13, seeking_venue),
		seeking_description = DECODE(:14, 1, :15, seeking_description)
		WHERE id = :16`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		util.StringPtrToNullString(patch.Name),
		util.StringPtrToNullString(patch.City),
		util.StringPtrToNullString(patch.State),
		util.IsSet(patch.Phone), util.StringPtrToNullString(patch.Phone),
		genresArg(patch.Genres),
		util.IsSet(patch.ImageLink), util.StringPtrToNullString(patch.ImageLink),
		util.IsSet(patch.FacebookLink), util.StringPtrToNullString(patch.FacebookLink),
		util.IsSet(patch.Website), util.StringPtrToNullString(patch.Website),
		util.BoolPtrToNullInt64(patch.SeekingVenue),
		util.IsSet(patch.SeekingDescription), util.StringPtrToNullString(patch.SeekingDescription),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update artist %d: %w", id, err)
	}
	return affected(result)
}

func (r *ArtistDatabaseAdapter) DeleteArtist(ctx context.Context, id int64) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM artists WHERE id = :1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete artist %d: %w", id, err)
	}
	return affected(result)
}

func toArtistSummaries(rows []models.Summary) []domain.ArtistSummary {
	summaries := make([]domain.ArtistSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.ArtistSummary{ID: row.ID, Name: row.Name, NumUpcomingShows: row.NumUpcomingShows}
	}
	return summaries
}

func toDomainArtist(m models.Artist) *domain.Artist {
	return &domain.Artist{
		ID:                 m.ID,
		Name:               m.Name,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone.String,
		Genres:             []string(m.Genres),
		ImageLink:          m.ImageLink.String,
		FacebookLink:       m.FacebookLink.String,
		Website:            m.Website.String,
		SeekingVenue:       m.SeekingVenue == 1,
		SeekingDescription: m.SeekingDescription.String,
	}
}
