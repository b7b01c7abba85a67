package api

import (
	"fmt"
	"strings"

	"isitcinema/internal/movie"

	"github.com/tidwall/gjson"
)

// decodeDetails reads a movie_details response. Missing fields are
// defaulted rather than rejected; only a body that is not a JSON object is
// an error.
func decodeDetails(body []byte) (movie.Details, error) {
	root, err := parseObject(body)
	if err != nil {
		return movie.Details{}, err
	}

	md := root.Get("movie_details")
	d := movie.Details{
		Name:        md.Get("movie_name").String(),
		Director:    md.Get("director").String(),
		Year:        md.Get("year").String(),
		Genres:      decodeGenres(md.Get("genres")),
		BackdropURL: md.Get("backdrop_image_url").String(),
		Synopsis:    md.Get("synopsis").String(),
		Review:      root.Get("summary").String(),
		Aspects:     decodeAspects(root.Get("aspects")),
	}
	return d.Normalize(), nil
}

// decodeGenres accepts either "A, B, C" or ["A", "B", "C"].
func decodeGenres(v gjson.Result) []string {
	if v.IsArray() {
		var parts []string
		for _, g := range v.Array() {
			parts = append(parts, g.String())
		}
		return movie.CleanGenres(parts)
	}
	return movie.ParseGenres(v.String())
}

// decodeAspects reads [[label, positive, negative], ...]. Malformed rows are
// skipped.
func decodeAspects(v gjson.Result) []movie.Aspect {
	if !v.IsArray() {
		return nil
	}
	var out []movie.Aspect
	v.ForEach(func(_, row gjson.Result) bool {
		cols := row.Array()
		if len(cols) < 3 {
			return true
		}
		label := strings.TrimSpace(cols[0].String())
		if label == "" {
			return true
		}
		out = append(out, movie.Aspect{
			Label:    label,
			Positive: cols[1].Float(),
			Negative: cols[2].Float(),
		})
		return true
	})
	return movie.SortAspects(out)
}

func decodeRoast(body []byte) (string, error) {
	root, err := parseObject(body)
	if err != nil {
		return "", err
	}
	roast := root.Get("roast")
	if !roast.Exists() || strings.TrimSpace(roast.String()) == "" {
		return "", fmt.Errorf("%w: no roast in response", ErrMalformedResponse)
	}
	return roast.String(), nil
}

func decodeTaste(body []byte) (string, error) {
	root, err := parseObject(body)
	if err != nil {
		return "", err
	}
	taste := strings.TrimSpace(root.Get("taste").String())
	if taste == "" {
		return movie.NoTaste, nil
	}
	return taste, nil
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected JSON object, got %s", ErrMalformedResponse, root.Type)
	}
	return root, nil
}
