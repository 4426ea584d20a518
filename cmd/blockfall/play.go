package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fredjuma007/our-book-club-sub000/internal/config"
	"github.com/fredjuma007/our-book-club-sub000/internal/core"
	"github.com/fredjuma007/our-book-club-sub000/internal/games/blocks"
	"github.com/fredjuma007/our-book-club-sub000/internal/platform/tui"
	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game. Finished games are recorded for replay.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space            - Hard drop
  Up, X            - Rotate clockwise
  Z                - Rotate counter-clockwise
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Help
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Fail early on a broken config file rather than silently using defaults
	if flagConfig != "" {
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Open replay storage
	store, err := replay.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(blocks.New(), replay.NewRecorder(store, logger), cfg, localPlayer()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// localPlayer names local runs after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
