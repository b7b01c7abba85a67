package movie

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidQuery is returned for search input that names no film or user.
var ErrInvalidQuery = errors.New("invalid search query")

const letterboxdHost = "letterboxd.com"

var (
	slugPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// FilmURL canonicalizes film input to https://letterboxd.com/film/<slug>/.
// Accepted forms: a full film URL (with or without scheme, www, or trailing
// slash), "film/<slug>", or a bare slug.
func FilmURL(input string) (string, error) {
	q := strings.TrimSpace(input)
	if q == "" {
		return "", fmt.Errorf("%w: empty film", ErrInvalidQuery)
	}

	path := q
	hosted := strings.Contains(q, letterboxdHost)
	if hosted {
		u, err := parseLoose(q)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		path = u.Path
	}

	segments := splitPath(path)
	var slug string
	switch {
	case len(segments) >= 2 && segments[0] == "film":
		slug = segments[1]
	case !hosted && len(segments) == 1 && segments[0] != "film":
		slug = segments[0]
	default:
		return "", fmt.Errorf("%w: %q is not a film", ErrInvalidQuery, q)
	}
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: bad film slug %q", ErrInvalidQuery, slug)
	}
	return "https://" + letterboxdHost + "/film/" + strings.ToLower(slug) + "/", nil
}

// Username reduces user input to a Letterboxd username. Accepted forms: a
// bare name, "@name", or a profile URL.
func Username(input string) (string, error) {
	q := strings.TrimSpace(input)
	q = strings.TrimPrefix(q, "@")
	if q == "" {
		return "", fmt.Errorf("%w: empty username", ErrInvalidQuery)
	}

	if strings.Contains(q, letterboxdHost) {
		u, err := parseLoose(q)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		segments := splitPath(u.Path)
		if len(segments) == 0 || segments[0] == "film" {
			return "", fmt.Errorf("%w: %q is not a profile", ErrInvalidQuery, q)
		}
		q = segments[0]
	}

	if !usernamePattern.MatchString(q) {
		return "", fmt.Errorf("%w: bad username %q", ErrInvalidQuery, q)
	}
	return q, nil
}

// LooksLikeFilm reports whether input reads as film input rather than a
// username. Used to pick a sensible default action on the landing page.
func LooksLikeFilm(input string) bool {
	q := strings.TrimSpace(input)
	return strings.Contains(q, "/film/") || strings.HasPrefix(q, "film/")
}

func parseLoose(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != letterboxdHost {
		return nil, fmt.Errorf("unexpected host %q", u.Hostname())
	}
	return u, nil
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
