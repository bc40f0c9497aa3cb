package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in configuration",
	Long: `Prints the embedded default YAML. Save it as ~/.mines/config.yaml or
./configs/mines.yaml and edit the keys you want to change.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List terminal backends",
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	maxLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxLen {
			maxLen = len(b.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----------")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, b.Name, b.Description)
	}
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the configured key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.HelpView(cfg.Keys.KeyMap()))
		return nil
	},
}
