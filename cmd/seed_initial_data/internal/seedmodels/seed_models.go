package seedmodels

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"showcase/internal/domain"
)

// SeedCategory defines a trivia category in the JSON seed file.
type SeedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SeedQuestion defines a trivia question in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// SeedVenue defines a venue in the JSON seed file.
type SeedVenue struct {
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

// SeedArtist defines an artist in the JSON seed file.
type SeedArtist struct {
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

// SeedShow links a venue and an artist by name.
type SeedShow struct {
	Venue     string    `json:"venue"`
	Artist    string    `json:"artist"`
	StartTime time.Time `json:"start_time"`
}

// SeedIngredient defines one recipe layer in the JSON seed file.
type SeedIngredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// SeedDrink defines a coffee shop drink in the JSON seed file.
type SeedDrink struct {
	Title  string           `json:"title"`
	Recipe []SeedIngredient `json:"recipe"`
}

// SeedData is the root of the seed file.
type SeedData struct {
	Categories []SeedCategory `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
	Venues     []SeedVenue    `json:"venues"`
	Artists    []SeedArtist   `json:"artists"`
	Shows      []SeedShow     `json:"shows"`
	Drinks     []SeedDrink    `json:"drinks"`
}

// Load reads and decodes the seed file at path.
func Load(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file %s: %w", path, err)
	}
	return &data, nil
}

func (c SeedCategory) ToDomain() *domain.Category {
	return &domain.Category{ID: c.ID, Type: c.Type}
}

func (q SeedQuestion) ToDomain() *domain.Question {
	return domain.NewQuestion(q.Question, q.Answer, q.Difficulty, q.Category)
}

func (v SeedVenue) ToDomain() *domain.Venue {
	return &domain.Venue{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (a SeedArtist) ToDomain() *domain.Artist {
	return &domain.Artist{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func (d SeedDrink) ToDomain() *domain.Drink {
	recipe := make([]domain.Ingredient, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &domain.Drink{Title: d.Title, Recipe: recipe}
}

// ResolveShows maps the venue and artist names of every show to stored ids. Unknown
// names are reported together.
func (d *SeedData) ResolveShows(venueIDs, artistIDs map[string]int64) ([]domain.Show, error) {
	shows := make([]domain.Show, 0, len(d.Shows))
	var missing []string
	for _, s := range d.Shows {
		venueID, okVenue := venueIDs[s.Venue]
		artistID, okArtist := artistIDs[s.Artist]
		if !okVenue {
			missing = append(missing, "venue "+s.Venue)
		}
		if !okArtist {
			missing = append(missing, "artist "+s.Artist)
		}
		if okVenue && okArtist {
			shows = append(shows, domain.Show{VenueID: venueID, ArtistID: artistID, StartTime: s.StartTime})
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("shows reference unknown records: %v", missing)
	}
	return shows, nil
}
