package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"showcase/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLifecycle(t *testing.T) {
	resp, raw := request(t, http.MethodPost, "/api/venues", dto.VenueRequest{
		Name:    "The Integration Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Folk"},
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	venue := decode[dto.VenueResponse](t, raw)

	resp, raw = request(t, http.MethodPost, "/api/artists", dto.ArtistRequest{
		Name:   "The Integration Band",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Jazz"},
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	artist := decode[dto.ArtistResponse](t, raw)

	past := time.Now().AddDate(-1, 0, 0).UTC().Truncate(time.Second)
	upcoming := time.Now().AddDate(0, 1, 0).UTC().Truncate(time.Second)
	for _, start := range []time.Time{past, upcoming} {
		resp, raw = request(t, http.MethodPost, "/api/shows", dto.ShowRequest{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	}

	t.Run("booking the same slot twice conflicts", func(t *testing.T) {
		resp, _ := request(t, http.MethodPost, "/api/shows", dto.ShowRequest{VenueID: venue.ID, ArtistID: artist.ID, StartTime: upcoming}, "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("venue detail splits shows", func(t *testing.T) {
		resp, raw := request(t, http.MethodGet, fmt.Sprintf("/api/venues/%d", venue.ID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		detail := decode[dto.VenueResponse](t, raw)
		assert.Equal(t, 1, detail.PastShowsCount)
		assert.Equal(t, 1, detail.UpcomingShowsCount)
		assert.Equal(t, "The Integration Band", detail.UpcomingShows[0].ArtistName)
	})

	t.Run("venues are grouped by area", func(t *testing.T) {
		resp, raw := request(t, http.MethodGet, "/api/venues", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		areas := decode[[]dto.AreaResponse](t, raw)
		require.NotEmpty(t, areas)
		found := false
		for _, area := range areas {
			for _, v := range area.Venues {
				if v.ID == venue.ID {
					found = true
					assert.Equal(t, "San Francisco", area.City)
					assert.Equal(t, 1, v.NumUpcomingShows)
				}
			}
		}
		assert.True(t, found)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		resp, raw := request(t, http.MethodPost, "/api/artists/search", dto.SearchRequest{SearchTerm: "integration band"}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		result := decode[dto.SearchResponse](t, raw)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("deleting the venue removes its shows", func(t *testing.T) {
		resp, _ := request(t, http.MethodDelete, fmt.Sprintf("/api/venues/%d", venue.ID), nil, "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, raw := request(t, http.MethodGet, fmt.Sprintf("/api/artists/%d", artist.ID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		detail := decode[dto.ArtistResponse](t, raw)
		assert.Zero(t, detail.PastShowsCount+detail.UpcomingShowsCount)
	})
}
