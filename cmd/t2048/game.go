package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved board",
	Long: `Print the saved game. If there is no saved game yet, a new one is
started and saved.`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

var moveCmd = &cobra.Command{
	Use:   "move <dir>...",
	Short: "Shift the saved board",
	Long: `Shift the saved board in one or more directions, applied in order.
Directions: up, down, left, right (or u, d, l, r).

A move that changes nothing is skipped and does not spawn a tile.

Examples:
  t2048 move left
  t2048 move l u r d`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMove,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last move",
	Long: `Restore the board and score from before the last move. Only one move
can be undone, and not once the game is over.`,
	Args: cobra.NoArgs,
	Run:  runUndo,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Long:  `Discard the saved game and start a new one. The best score is kept.`,
	Args:  cobra.NoArgs,
	Run:   runNew,
}

func runShow(_ *cobra.Command, _ []string) {
	env := openGame()
	defer env.Close()

	printGame(env.session.Snapshot())
}

func runMove(_ *cobra.Command, args []string) {
	dirs := make([]t2048.Direction, 0, len(args))
	for _, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			exitf("%v", err)
		}
		dirs = append(dirs, dir)
	}

	finished := false
	env := openGame(t2048.WithGameOverHook(func(t2048.Snapshot) {
		finished = true
	}))
	defer env.Close()

	if env.session.GameOver() {
		fmt.Println("The game is over. Run 't2048 new' to start another.")
		fmt.Println()
	}

	for _, dir := range dirs {
		if env.session.GameOver() {
			break
		}
		if !env.session.ApplyMove(dir) {
			fmt.Printf("%s: nothing to move\n", dir)
		}
	}

	if finished {
		fmt.Println("No moves left!")
		fmt.Println()
	}
	printGame(env.session.Snapshot())
}

func runUndo(_ *cobra.Command, _ []string) {
	env := openGame()
	defer env.Close()

	if !env.session.Undo() {
		fmt.Println("Nothing to undo.")
		fmt.Println()
	}
	printGame(env.session.Snapshot())
}

func runNew(_ *cobra.Command, _ []string) {
	env := openGame()
	defer env.Close()

	env.session.StartNew()
	printGame(env.session.Snapshot())
}
