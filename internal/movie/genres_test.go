package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"first five trimmed", "Action, Drama, Adventure, Comedy, Thriller, Horror", []string{"Action", "Drama", "Adventure", "Comedy", "Thriller"}},
		{"empty", "", []string{}},
		{"drops empties", " Sci-Fi ,, ,Action,", []string{"Sci-Fi", "Action"}},
		{"single", "Drama", []string{"Drama"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGenres(tt.in))
		})
	}
}

func TestCleanGenres_Array(t *testing.T) {
	got := CleanGenres([]string{"Action", " ", "Drama "})
	assert.Equal(t, []string{"Action", "Drama"}, got)
}
