package models

import (
	"database/sql"
	"time"
)

// Venue maps a row of the venues table. Boolean flags are stored as NUMBER(1).
type Venue struct {
	ID                 int64          `db:"ID"`
	Name               string         `db:"NAME"`
	City               string         `db:"CITY"`
	State              string         `db:"STATE"`
	Address            string         `db:"ADDRESS"`
	Phone              sql.NullString `db:"PHONE"`
	Genres             StringSlice    `db:"GENRES"`
	ImageLink          sql.NullString `db:"IMAGE_LINK"`
	FacebookLink       sql.NullString `db:"FACEBOOK_LINK"`
	Website            sql.NullString `db:"WEBSITE"`
	SeekingTalent      int            `db:"SEEKING_TALENT"`
	SeekingDescription sql.NullString `db:"SEEKING_DESCRIPTION"`
}

// Artist maps a row of the artists table
type Artist struct {
	ID                 int64          `db:"ID"`
	Name               string         `db:"NAME"`
	City               string         `db:"CITY"`
	State              string         `db:"STATE"`
	Phone              sql.NullString `db:"PHONE"`
	Genres             StringSlice    `db:"GENRES"`
	ImageLink          sql.NullString `db:"IMAGE_LINK"`
	FacebookLink       sql.NullString `db:"FACEBOOK_LINK"`
	Website            sql.NullString `db:"WEBSITE"`
	SeekingVenue       int            `db:"SEEKING_VENUE"`
	SeekingDescription sql.NullString `db:"SEEKING_DESCRIPTION"`
}

// Summary is a venue or artist listing row with its upcoming show count
type Summary struct {
	ID               int64  `db:"ID"`
	Name             string `db:"NAME"`
	City             string `db:"CITY"`
	State            string `db:"STATE"`
	NumUpcomingShows int    `db:"NUM_UPCOMING_SHOWS"`
}

// ShowListing is a show joined with its venue and artist
type ShowListing struct {
	VenueID         int64          `db:"VENUE_ID"`
	VenueName       string         `db:"VENUE_NAME"`
	VenueImageLink  sql.NullString `db:"VENUE_IMAGE_LINK"`
	ArtistID        int64          `db:"ARTIST_ID"`
	ArtistName      string         `db:"ARTIST_NAME"`
	ArtistImageLink sql.NullString `db:"ARTIST_IMAGE_LINK"`
	StartTime       time.Time      `db:"START_TIME"`
}
