// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048 play               - Play in the terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 show               - Print the saved board
//	t2048 move <dir>...      - Shift the saved board (up, down, left, right)
//	t2048 undo               - Revert the last move
//	t2048 new                - Discard the saved game and start over
//	t2048 scores             - Show the leaderboard
//	t2048 submit [name]      - Save a finished game to the leaderboard
//	t2048 saves              - List SSH players' saved games
//	t2048 reset              - Delete a saved game
//
// Global flags:
//
//	--db <path>       - Set database path (default: ~/.arcade/t2048.db)
//	--seed <value>    - Set RNG seed for reproducible spawns
//	--config <path>   - Load configuration from a YAML file
//	--verbose         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is the sliding-tile puzzle: shift the board, merge equal tiles
and chase the highest score. Games are saved after every move, so you
can quit at any time and pick up where you left off.

Available commands:
  play     - Play interactively
  serve    - Start SSH server for remote play
  show     - Print the saved board
  move     - Shift the saved board
  undo     - Revert the last move
  new      - Start a new game
  scores   - View the leaderboard
  submit   - Save a finished game to the leaderboard
  saves    - List SSH players' saved games
  reset    - Delete a saved game

Examples:
  t2048 play
  t2048 move left up
  t2048 serve
  t2048 scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(resetCmd)
}
