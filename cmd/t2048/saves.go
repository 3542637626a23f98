package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagResetUser   string
	flagResetScores bool
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List the saved games of SSH players",
	Long: `List every SSH user with a saved game in the database, with the time
of their last move.

Examples:
  t2048 saves
  t2048 saves --db /srv/t2048.db`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a saved game",
	Long: `Delete the saved game so the next command starts fresh. Unlike 'new',
nothing is written until the game is played again.

Examples:
  t2048 reset                # Delete the local saved game
  t2048 reset --user alice   # Delete an SSH player's saved game
  t2048 reset --scores       # Also clear the leaderboard`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetUser, "user", "", "SSH user whose saved game is deleted")
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear the leaderboard")
}

// openStore opens the configured database without loading a game.
func openStore() *storage.Store {
	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		exitf("opening game database: %v", err)
	}
	return store
}

func runSaves(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	saves, err := store.UserSaves()
	if err != nil {
		store.Close()
		exitf("listing saved games: %v", err)
	}

	if len(saves) == 0 {
		fmt.Println("No SSH players have a saved game.")
		return
	}

	fmt.Printf("  %-24s  %s\n", "User", "Last played")
	fmt.Printf("  %-24s  %s\n", "----", "-----------")
	for _, save := range saves {
		fmt.Printf("  %-24s  %s\n", save.User, save.UpdatedAt.Local().Format(leaderboard.DateLayout))
	}
}

func runReset(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	key := storage.KeyState
	who := "local"
	if flagResetUser != "" {
		key = storage.UserPrefix(flagResetUser) + storage.KeyState
		who = flagResetUser
	}

	if err := store.Delete(key); err != nil {
		store.Close()
		exitf("deleting saved game: %v", err)
	}
	fmt.Printf("Deleted the %s saved game.\n", who)

	if flagResetScores {
		if err := store.Delete(storage.KeyLeaders); err != nil {
			store.Close()
			exitf("clearing leaderboard: %v", err)
		}
		fmt.Println("Cleared the leaderboard.")
	}
}
