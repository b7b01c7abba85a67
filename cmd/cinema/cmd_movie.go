package main

import (
	"fmt"
	"io"
	"strings"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/movie"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// movieCmd prints a film's details, review summary and aspect table
var movieCmd = &cobra.Command{
	Use:   "movie [film]",
	Short: "Summarize what Letterboxd thinks of a film",
	Long: `Fetches the film's details, the summarized Letterboxd take and the
most discussed aspects.

The film may be a Letterboxd URL or a slug:
  cinema movie https://letterboxd.com/film/heat-1995/
  cinema movie heat-1995`,
	Args: cobra.ExactArgs(1),
	RunE: runMovie,
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger.Info("Fetching movie details", zap.String("film", args[0]))
	d, err := newClient(cfg).MovieDetails(ctx, args[0])
	if err != nil {
		logger.Error("Movie details failed", zap.Error(err))
		return fmt.Errorf("failed to fetch movie data: %w", err)
	}

	out := cmd.OutOrStdout()
	printMovie(out, d, movie.NewChart(cfg.GetAxisPolicy(), d.Aspects), isTerminal(out))
	return nil
}

// printMovie writes the movie page as plain text. Markdown in the review is
// rendered only for terminals.
func printMovie(w io.Writer, d movie.Details, chart movie.Chart, tty bool) {
	fmt.Fprintln(w, d.Title())
	if d.Director != "" {
		fmt.Fprintf(w, "Directed by %s\n", d.Director)
	}
	if line := d.GenreLine(); line != "" {
		fmt.Fprintln(w, line)
	}
	if d.BackdropURL != "" {
		fmt.Fprintf(w, "Backdrop: %s\n", d.BackdropURL)
	}

	fmt.Fprintln(w, "\nSynopsis")
	fmt.Fprintln(w, d.Synopsis)

	fmt.Fprintln(w, "\nLetterboxd Take")
	if tty {
		theme := ui.ThemeFor(cfg.UI.Theme)
		fmt.Fprintln(w, ui.NewMarkdown(1).Render(d.Review, ui.ContentWidth(0, cfg.UI.MaxWidth), theme.IsDark))
	} else {
		fmt.Fprintln(w, strings.TrimSpace(d.Review))
	}

	if !chart.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderAspectTable(chart))
	}
}
