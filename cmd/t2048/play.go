package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start the interactive game. The saved game is resumed if there is one.

Controls:
  Arrows/WASD - Move tiles
  U           - Undo the last move
  N           - New game
  L           - Leaderboard
  Enter       - Save your score after a game over
  Esc         - Close a dialog
  Q/Ctrl+C    - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	env := openGame()
	// Keep log output off the alternate screen
	if !flagVerbose {
		env.logger.SetOutput(io.Discard)
	}

	// Defaults until the first resize message
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	runErr := tui.Run(env.session, env.leaders, cfg, env.cfg.Leaderboard.DefaultName)
	if runErr != nil {
		env.fail("running game: %v", runErr)
	}
	env.Close()
}
