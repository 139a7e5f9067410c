package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/shady2k/sudoku-server/internal/sudoku"
)

var (
	log = logrus.New()

	difficulty int
	count      int
	seed       int64
	workers    int
	logPath    string
	verbose    bool
	solutions  bool
)

func init() {
	flag.IntVar(&difficulty, "difficulty", 50, "difficulty from 0 to 100")
	flag.IntVar(&count, "count", 1, "number of puzzles to generate")
	flag.Int64Var(&seed, "seed", 0, "base seed, 0 picks one from the clock")
	flag.IntVar(&workers, "workers", 4, "concurrent generation workers")
	flag.StringVar(&logPath, "log", "", "also write logs to this rotated file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&solutions, "solutions", false, "print the solution after each puzzle")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
}

func main() {
	flag.Parse()
	setupLogging()

	if count < 1 {
		log.Fatal("count must be positive")
	}
	if workers < 1 {
		log.Fatal("workers must be positive")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"count":      count,
		"seed":       seed,
		"workers":    workers,
	}).Info("generating puzzles")

	mainCtx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	start := time.Now()
	puzzles := make([]*sudoku.Puzzle, count)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.SetLimit(workers)
	for i := range count {
		g.Go(func() error {
			puzzleSeed := seed + int64(i)
			puzzle, err := sudoku.Generate(gCtx, sudoku.Params{
				Difficulty: float64(difficulty),
				Seed:       &puzzleSeed,
			})
			if err != nil {
				return fmt.Errorf("puzzle %d: %w", i, err)
			}
			log.WithFields(logrus.Fields{
				"index":  i,
				"id":     puzzle.ID,
				"givens": puzzle.GivenCount,
			}).Debug("generated")
			puzzles[i] = puzzle
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("generation failed: ", err)
	}

	for _, puzzle := range puzzles {
		fmt.Println(puzzle.Grid.Line())
		if solutions {
			fmt.Println(puzzle.Solution.Line())
		}
	}

	log.WithFields(logrus.Fields{
		"count":   count,
		"elapsed": time.Since(start).String(),
	}).Info("done")
}
