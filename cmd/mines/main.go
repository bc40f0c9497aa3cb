// mines is a terminal arcade game: steer a ball to collect tokens while
// mines keep appearing around it.
//
// Usage:
//
//	mines                 - Pick a speed and play
//	mines defaults        - Print the built-in configuration
//	mines backends        - List terminal backends
//	mines keys            - Show the configured key bindings
//
// Global flags:
//
//	--backend <name>  - Terminal backend (default: tcell)
//	--config <path>   - Custom config YAML
//	--seed <value>    - RNG seed for reproducible spawns
//	--log <path>      - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-mines/internal/platform/termcell"
	_ "github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	// Global flags
	flagBackend string
	flagConfig  string
	flagSeed    int64
	flagLog     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Mines - collect tokens, dodge mines",
	Long: `Mines is a terminal game. Pick a speed, then steer the ball into
the @ tokens while * mines keep appearing. Touching a mine ends the game.

Controls:
  j/k/h/l, arrows  - Push the ball down/up/left/right
  Enter            - Confirm (menus)
  x, Backspace     - Delete a digit (custom speed)
  q, Ctrl+C        - Quit

Examples:
  mines
  mines --backend tea
  mines --seed 42 --log mines.log
  mines --config ./my-mines.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "tcell", "Terminal backend (see 'mines backends')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(keysCmd)
}
