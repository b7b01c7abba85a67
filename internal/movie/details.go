package movie

import "strings"

// Placeholder text for fields the backend left out.
const (
	NoReview = "No review available"
	NoTaste  = "No vibe match information available."
)

// Details is everything the movie page renders.
type Details struct {
	Name        string
	Director    string
	Year        string
	Genres      []string
	BackdropURL string
	Synopsis    string
	Review      string
	Aspects     []Aspect
	FilmURL     string
}

// Normalize fills defaults for missing fields and trims whitespace.
func (d Details) Normalize() Details {
	d.Name = strings.TrimSpace(d.Name)
	d.Director = strings.TrimSpace(d.Director)
	d.Year = strings.TrimSpace(d.Year)
	d.BackdropURL = strings.TrimSpace(d.BackdropURL)
	d.Synopsis = strings.TrimSpace(d.Synopsis)
	d.Review = strings.TrimSpace(d.Review)
	if d.Review == "" {
		d.Review = NoReview
	}
	if d.Genres == nil {
		d.Genres = []string{}
	}
	return d
}

// GenreLine joins the genres for display.
func (d Details) GenreLine() string {
	return strings.Join(d.Genres, ", ")
}

// Title is "Name (Year)", or just the name when the year is unknown.
func (d Details) Title() string {
	if d.Year == "" {
		return d.Name
	}
	return d.Name + " (" + d.Year + ")"
}
