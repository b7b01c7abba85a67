package ui

import (
	"strings"

	"isitcinema/internal/movie"
)

// UnknownUser is the roast header name when no username was given.
const UnknownUser = "UNKNOWN USER"

// RoastTitle is the upper-cased username shown in "THE ROAST OF ...".
// Profile URLs and @names are reduced to the bare username.
func RoastTitle(input string) string {
	if name, err := movie.Username(input); err == nil {
		return strings.ToUpper(name)
	}
	if s := strings.TrimSpace(input); s != "" {
		return strings.ToUpper(s)
	}
	return UnknownUser
}
