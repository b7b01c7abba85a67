package main

import (
	"context"
	"fmt"
	"io"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/animation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// roastCmd roasts a Letterboxd user
var roastCmd = &cobra.Command{
	Use:   "roast [username]",
	Short: "Roast a Letterboxd user's taste",
	Long: `Fetches a roast of the user's Letterboxd profile. On a terminal the
roast is revealed with the typewriter animation; otherwise it is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoast,
}

func runRoast(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	logger.Info("Fetching roast", zap.String("username", args[0]))
	roast, err := newClient(cfg).Roast(ctx, args[0])
	if err != nil {
		logger.Error("Roast failed", zap.Error(err))
		return fmt.Errorf("failed to fetch roast: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "THE ROAST OF %s\n\n", ui.RoastTitle(args[0]))
	if !isTerminal(out) {
		fmt.Fprintln(out, roast)
		return nil
	}

	tw, err := cfg.NewTypewriter()
	if err != nil {
		return err
	}
	revealCtx, stop := interruptContext()
	defer stop()
	sched := animation.NewTimerScheduler()
	defer sched.Close()
	if err := revealRoast(revealCtx, out, tw, sched, roast); err != nil {
		fmt.Fprintln(out)
		return err
	}
	return nil
}

// revealRoast plays the typewriter on w until the roast is fully typed or
// ctx ends. Scripted phrases redraw in place; the roast itself is
// append-only.
func revealRoast(ctx context.Context, w io.Writer, tw *animation.Typewriter, sched animation.Scheduler, roast string) error {
	frames := make(chan animation.RoastState, 256)
	runner := animation.NewRunner[animation.RoastState](tw, sched, tw.Initial())
	runner.OnChange(func(s animation.RoastState) {
		select {
		case frames <- s:
		case <-ctx.Done():
		}
	})
	runner.Dispatch(animation.Data(roast))
	runner.Start()
	defer runner.Stop()

	var staticShown bool
	var written int
	for {
		var st animation.RoastState
		select {
		case <-ctx.Done():
			return ctx.Err()
		case st = <-frames:
		}

		if !st.RevealComplete {
			fmt.Fprintf(w, "\r\x1b[K%s", st.DisplayText)
			continue
		}
		if !staticShown {
			static, _ := tw.Lines(st)
			fmt.Fprintf(w, "\r\x1b[K%s\n\n", static)
			staticShown = true
		}
		text := []rune(st.DisplayText)
		if len(text) > written {
			fmt.Fprint(w, string(text[written:]))
			written = len(text)
		}
		if st.Done {
			fmt.Fprintln(w)
			return nil
		}
	}
}
