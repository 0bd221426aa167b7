package domain

import (
	"sort"
	"strings"
	"time"
)

// Venue is a place that hosts shows
type Venue struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

// Validate validates the venue
func (v *Venue) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(v.Name) == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if strings.TrimSpace(v.City) == "" {
		errs = append(errs, NewMissingFieldError("city"))
	}
	if strings.TrimSpace(v.State) == "" {
		errs = append(errs, NewMissingFieldError("state"))
	}
	if strings.TrimSpace(v.Address) == "" {
		errs = append(errs, NewMissingFieldError("address"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Artist performs at shows
type Artist struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// Validate validates the artist
func (a *Artist) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if strings.TrimSpace(a.City) == "" {
		errs = append(errs, NewMissingFieldError("city"))
	}
	if strings.TrimSpace(a.State) == "" {
		errs = append(errs, NewMissingFieldError("state"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Show is an artist performing at a venue at a given time
type Show struct {
	VenueID   int64
	ArtistID  int64
	StartTime time.Time
}

// Validate validates the show
func (s *Show) Validate() error {
	var errs ValidationErrors
	if s.VenueID <= 0 {
		errs = append(errs, NewMissingFieldError("venue_id"))
	}
	if s.ArtistID <= 0 {
		errs = append(errs, NewMissingFieldError("artist_id"))
	}
	if s.StartTime.IsZero() {
		errs = append(errs, NewMissingFieldError("start_time"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShowListing is a show joined with the display fields of both sides.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowSchedule is a list of shows split around the start of the current day.
type ShowSchedule struct {
	Upcoming []ShowListing
	Past     []ShowListing
}

func (s ShowSchedule) UpcomingCount() int { return len(s.Upcoming) }

func (s ShowSchedule) PastCount() int { return len(s.Past) }

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsUpcoming reports whether a show starting at start is upcoming as of now. Shows
// earlier today still count as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(StartOfDay(now))
}

// PartitionShows splits shows into upcoming and past relative to now, preserving order.
// Both partitions are non-nil.
func PartitionShows(shows []ShowListing, now time.Time) ShowSchedule {
	schedule := ShowSchedule{
		Upcoming: make([]ShowListing, 0, len(shows)),
		Past:     make([]ShowListing, 0),
	}
	for _, show := range shows {
		if IsUpcoming(show.StartTime, now) {
			schedule.Upcoming = append(schedule.Upcoming, show)
		} else {
			schedule.Past = append(schedule.Past, show)
		}
	}
	return schedule
}

// VenueSummary is the short form of a venue used in listings and search results
type VenueSummary struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// Area groups venues located in the same city and state
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

// GroupVenuesByArea groups venues by (city, state). Areas are ordered by state then city,
// and venues keep their input order within an area.
func GroupVenuesByArea(venues []VenueSummary) []Area {
	type areaKey struct{ city, state string }
	index := make(map[areaKey]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v)
	}
	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})
	return areas
}

// VenuePatch is an immutable set of venue changes; nil fields are left untouched.
type VenuePatch struct {
	Name               *string
	City               *string
	State              *string
	Address            *string
	Phone              *string
	Genres             []string
	ImageLink          *string
	FacebookLink       *string
	Website            *string
	SeekingTalent      *bool
	SeekingDescription *string
}

// ArtistPatch is an immutable set of artist changes; nil fields are left untouched.
type ArtistPatch struct {
	Name               *string
	City               *string
	State              *string
	Phone              *string
	Genres             []string
	ImageLink          *string
	FacebookLink       *string
	Website            *string
	SeekingVenue       *bool
	SeekingDescription *string
}
