// Command calcudoku solves a puzzle file and prints every solution.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"svw.info/calcudoku/internal/parser"
	"svw.info/calcudoku/internal/progress"
	"svw.info/calcudoku/internal/render"
	"svw.info/calcudoku/internal/solver"
)

func main() {
	fs := flag.NewFlagSetWithEnvPrefix("calcudoku", "CALCUDOKU", flag.ExitOnError)
	size := fs.Int("size", parser.DefaultSize, "grid side length")
	showProgress := fs.Bool("progress", false, "show a progress report on stderr")
	ascii := fs.Bool("ascii", false, "use plain ASCII characters for the progress bar")
	width := fs.Int("width", progress.DefaultWidth, "width of the progress bar")
	interval := fs.Int("interval", progress.DefaultInterval, "visited nodes between progress updates")
	limit := fs.Int("limit", 0, "stop after this many solutions (0 = all)")
	countOnly := fs.Bool("count", false, "print only the number of solutions")
	levelStr := fs.String("log-level", "info", "debug|info|warn|error")
	_ = fs.Parse(os.Args[1:])

	level, err := zerolog.ParseLevel(*levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if fs.NArg() != 1 {
		log.Fatal().Msg("usage: calcudoku [flags] PUZZLE_FILE")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("open puzzle")
	}
	idx, err := parser.Parse(f, *size)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse puzzle")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bt := solver.NewBacktracker()
	if *showProgress {
		tr := progress.New(os.Stderr, idx.Digits, idx.Size*idx.Size)
		tr.Width = *width
		tr.Interval = *interval
		tr.Unicode = !*ascii
		bt.Progress = tr
	}

	if *countOnly {
		n, st, err := bt.CountSolutions(ctx, idx, *limit)
		if err != nil {
			log.Fatal().Err(err).Msg("search interrupted")
		}
		fmt.Println(n)
		log.Debug().Int("nodes", st.Nodes).Dur("duration", st.Duration).Msg("search finished")
		return
	}

	found := 0
	for b := range bt.Solutions(ctx, idx) {
		fmt.Println(render.Board(b))
		found++
		if *limit > 0 && found >= *limit {
			break
		}
	}
	if ctx.Err() != nil {
		log.Warn().Int("solutions", found).Msg("search interrupted")
		os.Exit(130)
	}
	log.Debug().Int("solutions", found).Msg("search finished")
}
