package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// gameEnv bundles everything a command needs to work on the saved game.
type gameEnv struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store
	leaders *leaderboard.Store
	session *t2048.Session
}

// exitf prints an error to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// fail closes the database, then exits like exitf.
func (e *gameEnv) fail(format string, args ...any) {
	e.store.Close()
	exitf(format, args...)
}

// Close closes the database.
func (e *gameEnv) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("could not close database", "error", err)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the config and applies command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg
}

// openGame loads config, opens the database and restores the saved session.
func openGame(opts ...t2048.Option) *gameEnv {
	cfg := loadConfig()
	logger := newLogger()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		exitf("opening game database: %v", err)
	}

	leaders := leaderboard.New(store,
		leaderboard.WithCapacity(cfg.Leaderboard.Capacity),
		leaderboard.WithDefaultName(cfg.Leaderboard.DefaultName),
		leaderboard.WithLogger(logger),
	)

	runtime := core.RuntimeConfig{Seed: flagSeed}
	base := []t2048.Option{
		t2048.WithLogger(logger),
		t2048.WithRand(rand.New(rand.NewSource(runtime.ResolveSeed()))),
	}
	session := t2048.NewSession(store, leaders, cfg.Game, append(base, opts...)...)
	session.Load()

	return &gameEnv{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		leaders: leaders,
		session: session,
	}
}

// printGame writes the board and score line to stdout.
func printGame(snap t2048.Snapshot) {
	screen := core.NewScreen(t2048.BoardWidth, t2048.BoardHeight)
	t2048.RenderBoard(screen, snap.Board, 0, 0)
	fmt.Println(screen.String())
	fmt.Println()
	fmt.Printf("Score: %d   Best: %d   Max tile: %d\n", snap.Score, snap.Best, snap.MaxTile)
	switch {
	case snap.GameOver && snap.Submitted:
		fmt.Println("Game over! Score saved. Run 't2048 new' to play again.")
	case snap.GameOver:
		fmt.Println("Game over! Run 't2048 submit <name>' to save your score or 't2048 new' to play again.")
	}
}
