package dto

import (
	"time"

	"showcase/internal/domain"
)

// TimeLayout is the wire format of show start times
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in TimeLayout, in UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// SummaryResponse is a venue or artist in listings and search results
type SummaryResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaResponse groups venues of one city
// @Description Venues of one city and state
type AreaResponse struct {
	City   string            `json:"city"`
	State  string            `json:"state"`
	Venues []SummaryResponse `json:"venues"`
}

// SearchRequest is the body of a venue or artist search
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// SearchResponse lists search matches
type SearchResponse struct {
	Count int               `json:"count"`
	Data  []SummaryResponse `json:"data"`
}

// VenueShowResponse is a show as seen from a venue
type VenueShowResponse struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowResponse is a show as seen from an artist
type ArtistShowResponse struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowResponse is an entry of the show listing
type ShowResponse struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueResponse is a venue with its shows split into past and upcoming
// @Description Venue details
type VenueResponse struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []VenueShowResponse `json:"past_shows"`
	UpcomingShows      []VenueShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ArtistResponse is an artist with its shows split into past and upcoming
// @Description Artist details
type ArtistResponse struct {
	ID                 int64                `json:"id"`
	Name               string               `json:"name"`
	Genres             []string             `json:"genres"`
	City               string               `json:"city"`
	State              string               `json:"state"`
	Phone              string               `json:"phone"`
	Website            string               `json:"website"`
	FacebookLink       string               `json:"facebook_link"`
	SeekingVenue       bool                 `json:"seeking_venue"`
	SeekingDescription string               `json:"seeking_description"`
	ImageLink          string               `json:"image_link"`
	PastShows          []ArtistShowResponse `json:"past_shows"`
	UpcomingShows      []ArtistShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

// VenueRequest creates a venue
type VenueRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// Venue converts the request into a venue
func (r VenueRequest) Venue() domain.Venue {
	return domain.Venue{
		Name:               trim(r.Name),
		City:               trim(r.City),
		State:              trim(r.State),
		Address:            trim(r.Address),
		Phone:              trim(r.Phone),
		Genres:             r.Genres,
		ImageLink:          trim(r.ImageLink),
		FacebookLink:       trim(r.FacebookLink),
		Website:            trim(r.Website),
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: trim(r.SeekingDescription),
	}
}

// VenuePatchRequest patches a venue; absent fields are kept
type VenuePatchRequest struct {
	Name               *string  `json:"name"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	Address            *string  `json:"address"`
	Phone              *string  `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          *string  `json:"image_link"`
	FacebookLink       *string  `json:"facebook_link"`
	Website            *string  `json:"website"`
	SeekingTalent      *bool    `json:"seeking_talent"`
	SeekingDescription *string  `json:"seeking_description"`
}

// Patch converts the request into a validated domain patch. Required fields may not be
// blanked.
func (r VenuePatchRequest) Patch() (domain.VenuePatch, error) {
	errs := requiredIfPresent(map[string]*string{
		"name": r.Name, "city": r.City, "state": r.State, "address": r.Address,
	}, "name", "city", "state", "address")
	if len(errs) > 0 {
		return domain.VenuePatch{}, errs
	}
	return domain.VenuePatch{
		Name:               trimPtr(r.Name),
		City:               trimPtr(r.City),
		State:              trimPtr(r.State),
		Address:            trimPtr(r.Address),
		Phone:              trimPtr(r.Phone),
		Genres:             r.Genres,
		ImageLink:          trimPtr(r.ImageLink),
		FacebookLink:       trimPtr(r.FacebookLink),
		Website:            trimPtr(r.Website),
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: trimPtr(r.SeekingDescription),
	}, nil
}

// ArtistRequest creates an artist
type ArtistRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// Artist converts the request into an artist
func (r ArtistRequest) Artist() domain.Artist {
	return domain.Artist{
		Name:               trim(r.Name),
		City:               trim(r.City),
		State:              trim(r.State),
		Phone:              trim(r.Phone),
		Genres:             r.Genres,
		ImageLink:          trim(r.ImageLink),
		FacebookLink:       trim(r.FacebookLink),
		Website:            trim(r.Website),
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: trim(r.SeekingDescription),
	}
}

// ArtistPatchRequest patches an artist; absent fields are kept
type ArtistPatchRequest struct {
	Name               *string  `json:"name"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	Phone              *string  `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          *string  `json:"image_link"`
	FacebookLink       *string  `json:"facebook_link"`
	Website            *string  `json:"website"`
	SeekingVenue       *bool    `json:"seeking_venue"`
	SeekingDescription *string  `json:"seeking_description"`
}

// Patch converts the request into a validated domain patch
func (r ArtistPatchRequest) Patch() (domain.ArtistPatch, error) {
	errs := requiredIfPresent(map[string]*string{
		"name": r.Name, "city": r.City, "state": r.State,
	}, "name", "city", "state")
	if len(errs) > 0 {
		return domain.ArtistPatch{}, errs
	}
	return domain.ArtistPatch{
		Name:               trimPtr(r.Name),
		City:               trimPtr(r.City),
		State:              trimPtr(r.State),
		Phone:              trimPtr(r.Phone),
		Genres:             r.Genres,
		ImageLink:          trimPtr(r.ImageLink),
		FacebookLink:       trimPtr(r.FacebookLink),
		Website:            trimPtr(r.Website),
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: trimPtr(r.SeekingDescription),
	}, nil
}

// ShowRequest books a show
// @Description Request body for creating a show
type ShowRequest struct {
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

func ToSummaryResponses(venues []domain.VenueSummary) []SummaryResponse {
	out := make([]SummaryResponse, len(venues))
	for i, v := range venues {
		out[i] = SummaryResponse{ID: v.ID, Name: v.Name, NumUpcomingShows: v.NumUpcomingShows}
	}
	return out
}

func ToArtistSummaryResponses(artists []domain.ArtistSummary) []SummaryResponse {
	out := make([]SummaryResponse, len(artists))
	for i, a := range artists {
		out[i] = SummaryResponse{ID: a.ID, Name: a.Name, NumUpcomingShows: a.NumUpcomingShows}
	}
	return out
}

func ToAreaResponses(areas []domain.Area) []AreaResponse {
	out := make([]AreaResponse, len(areas))
	for i, a := range areas {
		out[i] = AreaResponse{City: a.City, State: a.State, Venues: ToSummaryResponses(a.Venues)}
	}
	return out
}

// ToVenueResponse combines a venue with its partitioned shows
func ToVenueResponse(v domain.Venue, schedule domain.ShowSchedule) VenueResponse {
	return VenueResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             nonNilStrings(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          toVenueShows(schedule.Past),
		UpcomingShows:      toVenueShows(schedule.Upcoming),
		PastShowsCount:     schedule.PastCount(),
		UpcomingShowsCount: schedule.UpcomingCount(),
	}
}

// ToArtistResponse combines an artist with its partitioned shows
func ToArtistResponse(a domain.Artist, schedule domain.ShowSchedule) ArtistResponse {
	return ArtistResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             nonNilStrings(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          toArtistShows(schedule.Past),
		UpcomingShows:      toArtistShows(schedule.Upcoming),
		PastShowsCount:     schedule.PastCount(),
		UpcomingShowsCount: schedule.UpcomingCount(),
	}
}

func ToShowResponses(shows []domain.ShowListing) []ShowResponse {
	out := make([]ShowResponse, len(shows))
	for i, s := range shows {
		out[i] = ShowResponse{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatTime(s.StartTime),
		}
	}
	return out
}

func toVenueShows(shows []domain.ShowListing) []VenueShowResponse {
	out := make([]VenueShowResponse, len(shows))
	for i, s := range shows {
		out[i] = VenueShowResponse{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatTime(s.StartTime),
		}
	}
	return out
}

func toArtistShows(shows []domain.ShowListing) []ArtistShowResponse {
	out := make([]ArtistShowResponse, len(shows))
	for i, s := range shows {
		out[i] = ArtistShowResponse{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      FormatTime(s.StartTime),
		}
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
