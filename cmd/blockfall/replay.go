package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
)

var flagLimit int

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Inspect recorded runs",
	Long: `Every finished game is recorded as its seed plus the commands played.
Replaying those commands reproduces the game exactly.

Examples:
  blockfall replay list
  blockfall replay list --limit 5
  blockfall replay show 12
  blockfall replay verify 12
  blockfall replay delete 12`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	Run:   runReplayList,
}

var replayShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Replay a run and print its final board",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayShow,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Replay a run and check it reproduces the recorded result",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayVerify,
}

var replayDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayDelete,
}

func init() {
	replayListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")

	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayShowCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayDeleteCmd)
}

// openStore opens the replay database or exits.
func openStore() *replay.Store {
	store, err := replay.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadRun parses the id argument and fetches the run, or exits.
func loadRun(store *replay.Store, arg string) replay.Run {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", arg)
		os.Exit(1)
	}

	run, err := store.Run(id)
	if err != nil {
		store.Close()
		if errors.Is(err, replay.ErrRunNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	return run
}

func runReplayList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-12s  %-8s  %-5s  %-5s  %-8s  %s\n", "ID", "Player", "Score", "Lines", "Level", "Commands", "Date")
	fmt.Printf("  %-5s  %-12s  %-8s  %-5s  %-5s  %-8s  %s\n", "--", "------", "-----", "-----", "-----", "--------", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-12s  %-8d  %-5d  %-5d  %-8d  %s\n",
			r.ID, r.Player, r.Score, r.Lines, r.Level, len(r.Commands), dateStr)
	}
}

func runReplayShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	run := loadRun(store, args[0])
	snap := replay.Replay(run)

	fmt.Printf("Run #%d by %s (seed %d, start level %d)\n", run.ID, run.Player, run.Seed, run.StartLevel)
	fmt.Println()
	fmt.Print(snap.Stage.String())
	fmt.Println()
	fmt.Printf("Score: %d  Lines: %d  Level: %d  Phase: %s\n", snap.Score, snap.RowsCleared, snap.Level, snap.Phase)
}

func runReplayVerify(_ *cobra.Command, args []string) {
	store := openStore()
	run := loadRun(store, args[0])
	store.Close()

	if err := replay.Verify(run); err != nil {
		fmt.Fprintf(os.Stderr, "Run #%d: %v\n", run.ID, err)
		os.Exit(1)
	}
	fmt.Printf("Run #%d OK: score %d, %d lines, level %d\n", run.ID, run.Score, run.Lines, run.Level)
}

func runReplayDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		return
	}
	if err := store.DeleteRun(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Deleted run #%d\n", id)
}
