// Package movie holds the display-side model of a film: its details, its
// genre list and the aspect sentiment chart.
package movie

import "strings"

// MaxGenres caps how many genres are shown.
const MaxGenres = 5

// ParseGenres splits a comma separated genre string, trims each entry, drops
// empty entries and keeps the first MaxGenres.
func ParseGenres(raw string) []string {
	return CleanGenres(strings.Split(raw, ","))
}

// CleanGenres applies the ParseGenres rules to an already split list.
func CleanGenres(parts []string) []string {
	genres := make([]string, 0, MaxGenres)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		genres = append(genres, p)
		if len(genres) == MaxGenres {
			break
		}
	}
	return genres
}
