package main

import (
	"fmt"
	"strings"

	"isitcinema/internal/movie"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tasteCmd runs a vibe check
var tasteCmd = &cobra.Command{
	Use:   "taste [film] [username]",
	Short: "Vibe check a film against a user's taste",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaste,
}

func runTaste(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger.Info("Vibe check", zap.String("film", args[0]), zap.String("username", args[1]))
	taste, err := newClient(cfg).Taste(ctx, args[0], args[1])
	if err != nil {
		logger.Error("Vibe check failed", zap.Error(err))
		return fmt.Errorf("failed to get vibe check: %w", err)
	}

	user := strings.TrimSpace(args[1])
	if name, err := movie.Username(user); err == nil {
		user = name
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Results for %s\n", user)
	fmt.Fprintln(out, taste)
	return nil
}
