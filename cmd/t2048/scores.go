package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the saved leaderboard, highest score first.

Examples:
  t2048 scores
  t2048 scores --db ./t2048.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var submitCmd = &cobra.Command{
	Use:   "submit [name]",
	Short: "Save a finished game to the leaderboard",
	Long: `Record the score of the finished game on the leaderboard. A missing or
blank name is saved as the configured default name. Each game can be
submitted once.

Examples:
  t2048 submit Ann`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSubmit,
}

func runScores(_ *cobra.Command, _ []string) {
	env := openGame()
	defer env.Close()

	printLeaderboard(env.leaders.All(), nil)
}

func runSubmit(_ *cobra.Command, args []string) {
	env := openGame()
	defer env.Close()

	if !env.session.GameOver() {
		env.fail("the game is still in progress; only finished games can be submitted")
	}
	if env.session.Submitted() {
		env.fail("this game is already on the leaderboard; run 't2048 new' to play again")
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	entry, err := env.session.SubmitScore(name)
	if err != nil {
		env.fail("saving score: %v", err)
	}

	fmt.Printf("Saved %d for %s.\n", entry.Score, entry.Name)
	fmt.Println()
	printLeaderboard(env.leaders.All(), &entry)
}

// printLeaderboard prints the entries as a table, marking highlight.
func printLeaderboard(entries []leaderboard.Entry, highlight *leaderboard.Entry) {
	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game and run 't2048 submit <name>' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, e := range entries {
		marker := " "
		if highlight != nil && e.Name == highlight.Name && e.Score == highlight.Score && e.Date.Equal(highlight.Date) {
			marker = ">"
		}
		fmt.Printf("%s %-4d  %-16s  %-8d  %s\n", marker, i+1, e.Name, e.Score, e.Date.Local().Format(leaderboard.DateLayout))
	}
}
